package issuance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/goldvault/transparent-gold-backend/metrics"
)

// DefaultMaxRounds bounds the confirmation wait.
const DefaultMaxRounds = 10

// Poller waits for a submitted transaction to be confirmed, using ledger
// rounds as its clock.
type Poller struct {
	ledger  interfaces.LedgerClient
	metrics *metrics.Issuance
	log     *slog.Logger
}

func NewPoller(ledger interfaces.LedgerClient, m *metrics.Issuance, log *slog.Logger) *Poller {
	return &Poller{ledger: ledger, metrics: m, log: log}
}

// Confirm returns the confirmed status of txID. Pending status is queried at
// most maxRounds times, with one wait for the next round between queries.
//
// Returns ErrSubmissionRejected as soon as the node reports a pool error,
// ErrConfirmationTimeout when maxRounds queries pass without confirmation, and
// ErrNetwork if any single node call fails. A cancelled ctx ends the wait with
// ctx.Err(). The transaction is never resubmitted.
func (p *Poller) Confirm(ctx context.Context, txID string, maxRounds int) (*interfaces.PendingTransactionStatus, error) {
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	round, err := p.ledger.CurrentRound(ctx)
	if err != nil {
		return nil, err
	}

	polls := 0
	defer func() { p.metrics.ObserveStatusPolls(polls) }()

	for polls < maxRounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, err := p.ledger.PendingStatus(ctx, txID)
		polls++
		if err != nil {
			return nil, err
		}
		if status == nil {
			return nil, fmt.Errorf("%w: empty pending status for %s", interfaces.ErrInconsistentLedgerResponse, txID)
		}
		if status.Confirmed() {
			p.log.Debug("transaction confirmed", "tx_id", txID, "round", status.ConfirmedRound, "polls", polls)
			return status, nil
		}
		if status.PoolError != "" {
			return nil, fmt.Errorf("%w: %s", interfaces.ErrSubmissionRejected, status.PoolError)
		}
		if polls == maxRounds {
			break
		}

		if err := p.ledger.AwaitRound(ctx, round+1); err != nil {
			return nil, err
		}
		round++
	}

	return nil, fmt.Errorf("%w: %d rounds", interfaces.ErrConfirmationTimeout, maxRounds)
}
