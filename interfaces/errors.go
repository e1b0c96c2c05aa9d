package interfaces

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork is returned when a single call to the ledger node fails on
	// connectivity or timeout. It is never retried automatically.
	ErrNetwork = errors.New("ledger node unavailable")

	// ErrSubmission is returned when the node rejects a transaction outright.
	ErrSubmission = errors.New("transaction rejected by ledger node")

	// ErrSubmissionRejected is returned when a submitted transaction was evicted
	// from the node's pool before it was confirmed.
	ErrSubmissionRejected = errors.New("transaction rejected from pool")

	// ErrConfirmationTimeout is returned when confirmation was not observed within
	// the round budget. The transaction may still confirm later.
	ErrConfirmationTimeout = errors.New("transaction not confirmed after timeout")

	// ErrSignerUnavailable is returned when the issuer key was never loaded.
	ErrSignerUnavailable = errors.New("server mint account not configured")

	// ErrInconsistentLedgerResponse is returned when a confirmed transaction is
	// missing fields the ledger should have reported.
	ErrInconsistentLedgerResponse = errors.New("inconsistent ledger response")

	// ErrMalformedTransaction is returned when the built transaction cannot be
	// encoded, e.g. because an asset field exceeds the ledger's length limits.
	ErrMalformedTransaction = errors.New("malformed transaction")
)

// ConfirmationError wraps a failure observed after the transaction was signed
// and handed to the node, when it may have been accepted. TxID identifies the
// transaction so it can be looked up later.
type ConfirmationError struct {
	TxID string
	Err  error
}

func (e *ConfirmationError) Error() string {
	return fmt.Sprintf("transaction %s: %v", e.TxID, e.Err)
}

func (e *ConfirmationError) Unwrap() error {
	return e.Err
}

// TxIDFromError returns the transaction id carried by a ConfirmationError in
// err's chain, or an empty string.
func TxIDFromError(err error) string {
	var confirmationErr *ConfirmationError
	if errors.As(err, &confirmationErr) {
		return confirmationErr.TxID
	}
	return ""
}
