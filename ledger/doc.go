// Package ledger provides the ledger client adapter used by the issuance
// workflow, backed by an algod node.
//
// AlgodClient implements interfaces.LedgerClient on top of the go-algorand-sdk
// algod v2 client. Every method is a single call to the node: nothing is retried
// and nothing is cached. Transport failures are reported as interfaces.ErrNetwork,
// a rejected submission as interfaces.ErrSubmission.
//
// EncodeAssetCreate converts an interfaces.UnsignedTransaction into the SDK's
// transaction type so it can be signed.
//
// MockLedgerClient is a testify mock of interfaces.LedgerClient.
package ledger
