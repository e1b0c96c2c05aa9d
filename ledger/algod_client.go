package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/algod"
	"github.com/algorand/go-algorand-sdk/v2/types"
	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// DefaultAlgodServer is the public TestNet endpoint used when none is configured.
const DefaultAlgodServer = "https://testnet-api.algonode.cloud"

// AlgodClient implements interfaces.LedgerClient against an algod node.
type AlgodClient struct {
	client *algod.Client
	log    *slog.Logger
}

// NodeAddress joins a server URL and an optional port the way the algod
// environment variables are usually split.
func NodeAddress(server, port string) string {
	server = strings.TrimSuffix(server, "/")
	if port == "" {
		return server
	}
	return server + ":" + port
}

// NewAlgodClient creates a client for the algod node at address.
// The token may be empty for public endpoints.
func NewAlgodClient(address, token string, log *slog.Logger) (*AlgodClient, error) {
	client, err := algod.MakeClient(address, token)
	if err != nil {
		return nil, fmt.Errorf("could not create algod client: %w", err)
	}
	return &AlgodClient{client: client, log: log}, nil
}

// SuggestedParams fetches the node's suggested parameters for a new transaction.
func (c *AlgodClient) SuggestedParams(ctx context.Context) (*interfaces.NetworkParameters, error) {
	sp, err := c.client.SuggestedParams().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: suggested params: %v", interfaces.ErrNetwork, err)
	}

	return &interfaces.NetworkParameters{
		Fee:              uint64(sp.Fee),
		MinFee:           sp.MinFee,
		FlatFee:          sp.FlatFee,
		FirstValidRound:  uint64(sp.FirstRoundValid),
		LastValidRound:   uint64(sp.LastRoundValid),
		GenesisID:        sp.GenesisID,
		GenesisHash:      sp.GenesisHash,
		ConsensusVersion: sp.ConsensusVersion,
	}, nil
}

// SubmitRaw submits a signed transaction blob.
// Only a 4xx answer about the transaction itself is ErrSubmission. Transport
// failures, 5xx answers, rejected credentials and throttling are ErrNetwork.
func (c *AlgodClient) SubmitRaw(ctx context.Context, signed []byte) (string, error) {
	txID, err := c.client.SendRawTransaction(signed).Do(ctx)
	if err != nil {
		if isTransactionRejection(err) {
			return "", fmt.Errorf("%w: %v", interfaces.ErrSubmission, err)
		}
		return "", fmt.Errorf("%w: send raw transaction: %v", interfaces.ErrNetwork, err)
	}

	c.log.Debug("Transaction submitted", "tx_id", txID)
	return txID, nil
}

// PendingStatus fetches the pending status of a submitted transaction.
func (c *AlgodClient) PendingStatus(ctx context.Context, txID string) (*interfaces.PendingTransactionStatus, error) {
	info, _, err := c.client.PendingTransactionInformation(txID).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: pending transaction %s: %v", interfaces.ErrNetwork, txID, err)
	}

	return &interfaces.PendingTransactionStatus{
		ConfirmedRound: info.ConfirmedRound,
		PoolError:      info.PoolError,
		CreatedAssetID: info.AssetIndex,
	}, nil
}

// CurrentRound returns the last round seen by the node.
func (c *AlgodClient) CurrentRound(ctx context.Context) (uint64, error) {
	status, err := c.client.Status().Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: node status: %v", interfaces.ErrNetwork, err)
	}
	return status.LastRound, nil
}

// AwaitRound blocks on the node until the given round is reached.
// The node holds the request open, so no polling happens on this side.
func (c *AlgodClient) AwaitRound(ctx context.Context, round uint64) error {
	if _, err := c.client.StatusAfterBlock(round).Do(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: wait for round %d: %v", interfaces.ErrNetwork, round, err)
	}
	return nil
}

// sdkStatus matches the "HTTP <code>: <body>" text the SDK gives non-2xx
// answers. Its error types are all declared as plain `error` interfaces, so
// they cannot be told apart with a type switch.
var sdkStatus = regexp.MustCompile(`^HTTP (\d{3}):`)

// nodeStatus returns the HTTP status the node answered with, or 0 when err
// did not come from a node response.
func nodeStatus(err error) int {
	m := sdkStatus.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	code, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return code
}

// isTransactionRejection reports whether the node refused the transaction
// itself, as opposed to being unreachable, failing, or refusing the caller.
func isTransactionRejection(err error) bool {
	if isTransportError(err) {
		return false
	}
	switch code := nodeStatus(err); {
	case code == http.StatusUnauthorized, code == http.StatusForbidden, code == http.StatusTooManyRequests:
		return false
	default:
		return code >= 400 && code < 500
	}
}

// isTransportError reports whether err comes from the HTTP transport rather than
// from a response of the node.
func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// toSuggestedParams converts network parameters back into the SDK representation.
func toSuggestedParams(p interfaces.NetworkParameters) types.SuggestedParams {
	return types.SuggestedParams{
		Fee:              types.MicroAlgos(p.Fee),
		MinFee:           p.MinFee,
		FlatFee:          p.FlatFee,
		FirstRoundValid:  types.Round(p.FirstValidRound),
		LastRoundValid:   types.Round(p.LastValidRound),
		GenesisID:        p.GenesisID,
		GenesisHash:      p.GenesisHash,
		ConsensusVersion: p.ConsensusVersion,
	}
}
