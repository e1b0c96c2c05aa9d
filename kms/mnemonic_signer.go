package kms

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/crypto"
	"github.com/algorand/go-algorand-sdk/v2/mnemonic"
	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/goldvault/transparent-gold-backend/ledger"
)

// ErrEmptyMnemonic is returned when no secret phrase was provided.
var ErrEmptyMnemonic = errors.New("mnemonic not provided")

// MnemonicSigner signs transactions with a key derived from a secret phrase.
type MnemonicSigner struct {
	privateKey ed25519.PrivateKey
	address    string
}

// NewMnemonicSigner derives the issuer key from a 25-word secret phrase.
func NewMnemonicSigner(phrase string) (*MnemonicSigner, error) {
	phrase = strings.Join(strings.Fields(phrase), " ")
	if phrase == "" {
		return nil, ErrEmptyMnemonic
	}

	privateKey, err := mnemonic.ToPrivateKey(phrase)
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}

	account, err := crypto.AccountFromPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer key: %w", err)
	}

	return &MnemonicSigner{privateKey: privateKey, address: account.Address.String()}, nil
}

// Address returns the issuer's ledger address.
func (s *MnemonicSigner) Address() string {
	if s == nil {
		return ""
	}
	return s.address
}

// Sign encodes and signs an asset-creation transaction.
func (s *MnemonicSigner) Sign(txn *interfaces.UnsignedTransaction) (*interfaces.SignedTransaction, error) {
	if s == nil || len(s.privateKey) == 0 {
		return nil, interfaces.ErrSignerUnavailable
	}

	tx, err := ledger.EncodeAssetCreate(txn)
	if err != nil {
		return nil, err
	}

	txID, blob, err := crypto.SignTransaction(s.privateKey, tx)
	if err != nil {
		return nil, fmt.Errorf("%w: sign: %v", interfaces.ErrMalformedTransaction, err)
	}

	return &interfaces.SignedTransaction{TxID: txID, Blob: blob}, nil
}
