package ledger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/algorand/go-algorand-sdk/v2/client/v2/common/models"
	"github.com/algorand/go-algorand-sdk/v2/encoding/msgpack"
	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGenesisHash = []byte("0123456789abcdef0123456789abcdef")

// fakeAlgod serves the subset of the algod v2 API the adapter uses.
func fakeAlgod(t *testing.T, pending map[string]models.PendingTransactionInfoResponse) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v2/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"last-round": 100})
	})

	mux.HandleFunc("GET /v2/status/wait-for-block-after/{round}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"last-round": 101})
	})

	mux.HandleFunc("GET /v2/transactions/params", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"consensus-version": "future",
			"fee":               0,
			"genesis-hash":      base64.StdEncoding.EncodeToString(testGenesisHash),
			"genesis-id":        "testnet-v1.0",
			"last-round":        100,
			"min-fee":           1000,
		})
	})

	mux.HandleFunc("POST /v2/transactions", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		switch string(body) {
		case "overspend":
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"message": "TransactionPool.Remember: overspend"})
			return
		case "unavailable":
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{"message": "upstream unavailable"})
			return
		case "crash":
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"message": "internal error"})
			return
		case "badtoken":
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"message": "Invalid API Token"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"txId": "SUBMITTEDTXID"})
	})

	mux.HandleFunc("GET /v2/transactions/pending/{txid}", func(w http.ResponseWriter, r *http.Request) {
		info, ok := pending[r.PathValue("txid")]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"message": "txn does not exist"})
			return
		}
		w.Header().Set("Content-Type", "application/msgpack")
		w.Write(msgpack.Encode(info))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, address string) *AlgodClient {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := NewAlgodClient(address, "", logger)
	require.NoError(t, err)
	return client
}

func TestNodeAddress(t *testing.T) {
	assert.Equal(t, "https://testnet-api.algonode.cloud", NodeAddress("https://testnet-api.algonode.cloud/", ""))
	assert.Equal(t, "http://localhost:4001", NodeAddress("http://localhost", "4001"))
}

func TestAlgodClient_SuggestedParams(t *testing.T) {
	srv := fakeAlgod(t, nil)
	client := newTestClient(t, srv.URL)

	params, err := client.SuggestedParams(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "testnet-v1.0", params.GenesisID)
	assert.Equal(t, testGenesisHash, params.GenesisHash)
	assert.Equal(t, uint64(100), params.FirstValidRound)
	assert.Greater(t, params.LastValidRound, params.FirstValidRound)
	assert.Equal(t, uint64(1000), params.MinFee)
}

func TestAlgodClient_Rounds(t *testing.T) {
	srv := fakeAlgod(t, nil)
	client := newTestClient(t, srv.URL)

	round, err := client.CurrentRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), round)

	require.NoError(t, client.AwaitRound(context.Background(), 101))
}

func TestAlgodClient_SubmitRaw(t *testing.T) {
	srv := fakeAlgod(t, nil)
	client := newTestClient(t, srv.URL)

	txID, err := client.SubmitRaw(context.Background(), []byte("signed"))
	require.NoError(t, err)
	assert.Equal(t, "SUBMITTEDTXID", txID)

	_, err = client.SubmitRaw(context.Background(), []byte("overspend"))
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrSubmission)
	assert.True(t, strings.Contains(err.Error(), "overspend"), err.Error())
}

func TestAlgodClient_SubmitRawNodeFailures(t *testing.T) {
	srv := fakeAlgod(t, nil)
	client := newTestClient(t, srv.URL)

	tests := []struct {
		name string
		blob string
	}{
		{"service unavailable", "unavailable"},
		{"internal error", "crash"},
		{"invalid token", "badtoken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.SubmitRaw(context.Background(), []byte(tt.blob))
			require.Error(t, err)
			assert.ErrorIs(t, err, interfaces.ErrNetwork)
			assert.NotErrorIs(t, err, interfaces.ErrSubmission)
		})
	}
}

func TestIsTransactionRejection(t *testing.T) {
	assert.True(t, isTransactionRejection(errors.New(`HTTP 400: {"message":"overspend"}`)))
	assert.False(t, isTransactionRejection(errors.New(`HTTP 503: {"message":"upstream unavailable"}`)))
	assert.False(t, isTransactionRejection(errors.New(`HTTP 401: {"message":"Invalid API Token"}`)))
	assert.False(t, isTransactionRejection(errors.New(`HTTP 429: slow down`)))
	assert.False(t, isTransactionRejection(errors.New("unexpected end of JSON input")))
	assert.False(t, isTransactionRejection(context.DeadlineExceeded))
}

func TestAlgodClient_PendingStatus(t *testing.T) {
	srv := fakeAlgod(t, map[string]models.PendingTransactionInfoResponse{
		"CONFIRMED": {ConfirmedRound: 105, AssetIndex: 4242001},
		"EVICTED":   {PoolError: "fee too low"},
		"WAITING":   {},
	})
	client := newTestClient(t, srv.URL)

	status, err := client.PendingStatus(context.Background(), "CONFIRMED")
	require.NoError(t, err)
	assert.True(t, status.Confirmed())
	assert.Equal(t, uint64(105), status.ConfirmedRound)
	assert.Equal(t, uint64(4242001), status.CreatedAssetID)

	status, err = client.PendingStatus(context.Background(), "EVICTED")
	require.NoError(t, err)
	assert.False(t, status.Confirmed())
	assert.Equal(t, "fee too low", status.PoolError)

	status, err = client.PendingStatus(context.Background(), "WAITING")
	require.NoError(t, err)
	assert.False(t, status.Confirmed())
	assert.Empty(t, status.PoolError)
}

func TestAlgodClient_NodeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	client := newTestClient(t, address)
	ctx := context.Background()

	_, err := client.SuggestedParams(ctx)
	assert.ErrorIs(t, err, interfaces.ErrNetwork)

	_, err = client.SubmitRaw(ctx, []byte("signed"))
	assert.ErrorIs(t, err, interfaces.ErrNetwork)
	assert.NotErrorIs(t, err, interfaces.ErrSubmission)

	_, err = client.PendingStatus(ctx, "TX")
	assert.ErrorIs(t, err, interfaces.ErrNetwork)

	_, err = client.CurrentRound(ctx)
	assert.ErrorIs(t, err, interfaces.ErrNetwork)

	err = client.AwaitRound(ctx, 5)
	assert.ErrorIs(t, err, interfaces.ErrNetwork)
}

func TestAlgodClient_AwaitRoundCancelled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	client := newTestClient(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.AwaitRound(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
