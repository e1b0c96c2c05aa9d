package kms

import (
	"context"
	"log/slog"

	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// LoadSigner fetches the secret phrase once and derives the signer from it.
// It returns nil, after logging a warning, when the phrase cannot be fetched or
// parsed. Callers treat a nil signer as "minting disabled".
func LoadSigner(ctx context.Context, source interfaces.MnemonicSource, log *slog.Logger) *MnemonicSigner {
	if source == nil {
		log.Warn("MNEMONIC not provided. NFT minting disabled until set in environment.")
		return nil
	}

	phrase, err := source.Fetch(ctx)
	if err != nil {
		log.Warn("Could not load issuer mnemonic. NFT minting disabled.", "source", source.Name(), "err", err)
		return nil
	}

	signer, err := NewMnemonicSigner(phrase)
	if err != nil {
		log.Warn("Invalid MNEMONIC format. NFT endpoints will fail until corrected.", "source", source.Name(), "err", err)
		return nil
	}

	log.Info("Issuer account set", "address", signer.Address(), "source", source.Name())
	return signer
}
