package interfaces

import "context"

// NetworkParameters is a snapshot of the ledger's suggested parameters for a new
// transaction. It is fetched fresh for every issuance and never cached.
type NetworkParameters struct {
	// Fee is the suggested fee per byte, or the flat fee if FlatFee is set.
	Fee uint64

	// MinFee is the network's minimum transaction fee.
	MinFee uint64

	// FlatFee reports whether Fee is the total fee rather than a per-byte rate.
	FlatFee bool

	// FirstValidRound and LastValidRound bound the transaction's validity window.
	FirstValidRound uint64
	LastValidRound  uint64

	// GenesisID and GenesisHash identify the network.
	GenesisID   string
	GenesisHash []byte

	// ConsensusVersion is informational.
	ConsensusVersion string
}

// UnsignedTransaction fully describes an asset-creation intent. It is built once
// and never modified afterwards.
type UnsignedTransaction struct {
	Creator string

	Total         uint64
	Decimals      uint32
	DefaultFrozen bool

	UnitName  string
	AssetName string
	AssetURL  string

	// Manager, Reserve, Freeze and Clawback are the asset's control addresses.
	Manager  string
	Reserve  string
	Freeze   string
	Clawback string

	// Note is an optional free-form payload attached to the transaction.
	Note []byte

	Params NetworkParameters
}

// SignedTransaction is the encoded, signed transaction blob and its identifier.
// It is submitted exactly once.
type SignedTransaction struct {
	TxID string
	Blob []byte
}

// PendingTransactionStatus is one polled snapshot of a transaction's state on the
// node. Zero values mean the ledger did not report the field.
type PendingTransactionStatus struct {
	// ConfirmedRound is the round the transaction was included in, 0 while pending.
	ConfirmedRound uint64

	// PoolError is set when the node evicted the transaction from its pool.
	PoolError string

	// CreatedAssetID is the index of the asset created by the transaction.
	CreatedAssetID uint64
}

// Confirmed reports whether the status carries a confirmation round.
func (s *PendingTransactionStatus) Confirmed() bool {
	return s != nil && s.ConfirmedRound > 0
}

// LedgerClient is the capability set used against a remote ledger node.
// None of the methods retry internally.
type LedgerClient interface {
	// SuggestedParams fetches the current network parameters.
	// Returns ErrNetwork on connectivity or timeout issues.
	SuggestedParams(ctx context.Context) (*NetworkParameters, error)

	// SubmitRaw submits a signed transaction blob and returns its transaction id.
	// Returns ErrSubmission if the node rejects the transaction.
	SubmitRaw(ctx context.Context, signed []byte) (string, error)

	// PendingStatus fetches the current status of a submitted transaction.
	// A transaction that is not yet confirmed is not an error.
	PendingStatus(ctx context.Context, txID string) (*PendingTransactionStatus, error)

	// CurrentRound returns the last round the node has seen.
	CurrentRound(ctx context.Context) (uint64, error)

	// AwaitRound blocks until the node reports the given round or later, or the
	// context is cancelled.
	AwaitRound(ctx context.Context, round uint64) error
}
