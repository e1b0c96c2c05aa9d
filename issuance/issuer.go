package issuance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/goldvault/transparent-gold-backend/metrics"
	"github.com/google/uuid"
)

// DefaultExplorerBaseURL is the asset explorer linked from issuance results.
const DefaultExplorerBaseURL = "https://testnet.algoexplorer.io"

// Config tunes an Issuer. Zero values select the defaults.
type Config struct {
	MaxRounds          int
	ExplorerBaseURL    string
	PlaceholderBaseURL string
}

// Issuer implements interfaces.Issuer on top of a ledger client and the
// process-wide signer.
type Issuer struct {
	ledger  interfaces.LedgerClient
	signer  interfaces.Signer
	builder *Builder
	poller  *Poller
	config  Config
	metrics *metrics.Issuance
	log     *slog.Logger
}

// NewIssuer creates an Issuer. signer may be nil when no issuer key was
// loaded; every Issue call then fails with ErrSignerUnavailable.
func NewIssuer(ledger interfaces.LedgerClient, signer interfaces.Signer, config Config, m *metrics.Issuance, log *slog.Logger) *Issuer {
	if config.MaxRounds <= 0 {
		config.MaxRounds = DefaultMaxRounds
	}
	if config.ExplorerBaseURL == "" {
		config.ExplorerBaseURL = DefaultExplorerBaseURL
	}
	config.ExplorerBaseURL = strings.TrimSuffix(config.ExplorerBaseURL, "/")

	return &Issuer{
		ledger:  ledger,
		signer:  signer,
		builder: NewBuilder(config.PlaceholderBaseURL),
		poller:  NewPoller(ledger, m, log),
		config:  config,
		metrics: m,
		log:     log,
	}
}

// Issue mints one certificate and waits for it to be confirmed.
func (i *Issuer) Issue(ctx context.Context, req *interfaces.IssuanceRequest) (*interfaces.IssuanceResult, error) {
	start := time.Now()
	log := i.log.With("issuance_id", uuid.NewString())

	result, err := i.issue(ctx, req, log)
	i.metrics.ObserveOutcome(outcomeLabel(err), time.Since(start))
	if err != nil {
		log.Error("issuance failed", "err", err, "tx_id", interfaces.TxIDFromError(err))
		return nil, err
	}

	log.Info("certificate issued", "asset_id", result.AssetID, "tx_id", result.TransactionID, "elapsed", time.Since(start))
	return result, nil
}

func (i *Issuer) issue(ctx context.Context, req *interfaces.IssuanceRequest, log *slog.Logger) (*interfaces.IssuanceResult, error) {
	if !i.signerAvailable() {
		return nil, interfaces.ErrSignerUnavailable
	}
	issuer := i.signer.Address()

	params, err := i.ledger.SuggestedParams(ctx)
	if err != nil {
		return nil, err
	}

	txn := i.builder.Build(req, params, issuer)
	signed, err := i.signer.Sign(txn)
	if err != nil {
		return nil, err
	}

	txID, err := i.ledger.SubmitRaw(ctx, signed.Blob)
	if err != nil {
		// The node may have accepted it before the connection failed.
		if errors.Is(err, interfaces.ErrNetwork) && signed.TxID != "" {
			return nil, &interfaces.ConfirmationError{TxID: signed.TxID, Err: err}
		}
		return nil, err
	}
	if txID == "" {
		txID = signed.TxID
	}
	log = log.With("tx_id", txID)
	log.Info("transaction submitted", "asset_name", txn.AssetName, "asset_url", txn.AssetURL)

	status, err := i.poller.Confirm(ctx, txID, i.config.MaxRounds)
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("confirmation wait abandoned, transaction stays submitted", "err", err)
		}
		return nil, &interfaces.ConfirmationError{TxID: txID, Err: err}
	}
	if status.CreatedAssetID == 0 {
		return nil, &interfaces.ConfirmationError{
			TxID: txID,
			Err:  fmt.Errorf("%w: confirmed in round %d without created asset id", interfaces.ErrInconsistentLedgerResponse, status.ConfirmedRound),
		}
	}

	return &interfaces.IssuanceResult{
		AssetID:       status.CreatedAssetID,
		TransactionID: txID,
		ExplorerURL:   fmt.Sprintf("%s/asset/%d", i.config.ExplorerBaseURL, status.CreatedAssetID),
	}, nil
}

// signerAvailable catches both a nil interface and a typed nil signer.
func (i *Issuer) signerAvailable() bool {
	return i.signer != nil && i.signer.Address() != ""
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, interfaces.ErrSignerUnavailable):
		return metrics.ResultSignerUnavailable
	case errors.Is(err, interfaces.ErrMalformedTransaction):
		return metrics.ResultMalformed
	case errors.Is(err, interfaces.ErrSubmission), errors.Is(err, interfaces.ErrSubmissionRejected):
		return metrics.ResultRejected
	case errors.Is(err, interfaces.ErrConfirmationTimeout):
		return metrics.ResultTimeout
	case errors.Is(err, interfaces.ErrInconsistentLedgerResponse):
		return metrics.ResultInconsistent
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.ResultAbandoned
	default:
		return metrics.ResultNetworkError
	}
}
