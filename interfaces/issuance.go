package interfaces

import "context"

// IssuanceRequest describes the certificate a caller wants minted.
type IssuanceRequest struct {
	// Name becomes the asset name. An empty name is passed through as-is.
	Name string

	// Description is attached to the transaction as its note.
	Description string

	// MetadataURL is the asset URL. When empty a unique placeholder is generated.
	MetadataURL string
}

// IssuanceResult is returned once per successful issuance.
type IssuanceResult struct {
	AssetID       uint64
	TransactionID string
	ExplorerURL   string
}

// Signer produces signed transactions with the server-held issuer key.
type Signer interface {
	// Address returns the issuer's ledger address.
	Address() string

	// Sign signs the transaction. Returns ErrSignerUnavailable when no key
	// material was loaded, and ErrMalformedTransaction when the transaction
	// cannot be encoded.
	Sign(txn *UnsignedTransaction) (*SignedTransaction, error)
}

// Issuer mints one certificate per call. Callers must be authenticated before
// reaching it; the Issuer performs no credential checks.
type Issuer interface {
	Issue(ctx context.Context, req *IssuanceRequest) (*IssuanceResult, error)
}
