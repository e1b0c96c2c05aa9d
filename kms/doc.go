// Package kms holds the issuer key used to sign asset-creation transactions.
//
// # MnemonicSigner
//
// MnemonicSigner implements interfaces.Signer. It is created once at startup from
// the issuer account's 25-word secret phrase and is read-only afterwards, so a
// single instance can be shared by any number of concurrent issuances.
//
// # Loading
//
// LoadSigner fetches the secret phrase from an interfaces.MnemonicSource and
// derives the signer from it. If the phrase is absent or malformed a warning is
// logged and nil is returned: the signer then stays unavailable for the lifetime
// of the process, and every issuance fails with interfaces.ErrSignerUnavailable
// before it touches the network. There is no reload.
//
// # Usage Example
//
//	source, _ := keystore.SourceFor("file:///run/secrets/issuer-mnemonic", logger)
//	signer := kms.LoadSigner(ctx, source, logger)
//	if signer == nil {
//	    // minting disabled until the operator fixes the configuration
//	}
package kms
