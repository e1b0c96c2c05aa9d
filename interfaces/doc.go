// Package interfaces defines core interfaces and types for the gold certificate
// backend, separating interface definitions from implementations.
//
// The package provides interfaces for the key components of the system:
//
// # Ledger Interfaces
//
// LedgerClient: The capability set used against a remote ledger node. It submits
// raw signed transactions, reports suggested network parameters, reports the
// pending status of a transaction, and exposes the node's round progress as a
// polling clock (CurrentRound, AwaitRound).
//
// # Issuance Interfaces
//
// Signer: Holds the server-side issuer key and turns an UnsignedTransaction into a
// SignedTransaction. The key material is read-only once loaded.
//
// Issuer: The public entry point for certificate issuance. It builds, signs,
// submits, and confirms one asset-creation transaction per request.
//
// # Secret Sources
//
// MnemonicSource: Provides the issuer's secret phrase from a location such as an
// environment variable, a local file, an S3 object or a Vault KV entry.
// SecretLocation parses and validates the location URIs.
//
// # Error Taxonomy
//
// Every failure the issuance workflow can report is one of the sentinel errors
// declared in errors.go. Failures observed after a transaction was accepted by
// the node are wrapped in a ConfirmationError carrying the transaction id, since
// the transaction may still confirm out-of-band.
package interfaces
