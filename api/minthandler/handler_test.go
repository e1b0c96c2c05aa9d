package minthandler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goldvault/transparent-gold-backend/api"
	"github.com/goldvault/transparent-gold-backend/auth"
	"github.com/goldvault/transparent-gold-backend/interfaces"
	"github.com/goldvault/transparent-gold-backend/issuance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router http.Handler
	issuer *issuance.MockIssuer
	token  string
}

func setupTestEnvironment(t *testing.T) *testEnv {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenIssuer("test-secret", 0)
	token, err := tokens.Issue("minter@example.com")
	require.NoError(t, err)

	issuer := new(issuance.MockIssuer)
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireBearer(tokens, log))
		NewHandler(issuer, 0, log).RegisterRoutes(r)
	})

	return &testEnv{router: r, issuer: issuer, token: token}
}

func (e *testEnv) mint(body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/mint-nft", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHandleMint_Success(t *testing.T) {
	env := setupTestEnvironment(t)
	env.issuer.On("Issue", mock.Anything, &interfaces.IssuanceRequest{Name: "Gold Cert #1"}).
		Return(&interfaces.IssuanceResult{
			AssetID:       4242001,
			TransactionID: "TXID4242",
			ExplorerURL:   "https://testnet.algoexplorer.io/asset/4242001",
		}, nil).Once()

	w := env.mint(`{"name":"Gold Cert #1"}`, env.token)

	require.Equal(t, http.StatusOK, w.Code)
	var resp api.MintResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(4242001), resp.AssetID)
	assert.Equal(t, "TXID4242", resp.TxID)
	assert.Equal(t, "https://testnet.algoexplorer.io/asset/4242001", resp.ExplorerURL)
	env.issuer.AssertExpectations(t)
}

func TestHandleMint_RequestMapping(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *interfaces.IssuanceRequest
	}{
		{"empty body", ``, &interfaces.IssuanceRequest{Name: DefaultName}},
		{"empty object", `{}`, &interfaces.IssuanceRequest{Name: DefaultName}},
		{"explicit empty name", `{"name":""}`, &interfaces.IssuanceRequest{Name: ""}},
		{
			"all fields",
			`{"name":"Bar 17","desc":"1g, Vault A","metadataUrl":"ipfs://bafy/17.json"}`,
			&interfaces.IssuanceRequest{Name: "Bar 17", Description: "1g, Vault A", MetadataURL: "ipfs://bafy/17.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvironment(t)
			env.issuer.On("Issue", mock.Anything, tt.want).
				Return(&interfaces.IssuanceResult{AssetID: 1, TransactionID: "TX", ExplorerURL: "x"}, nil).Once()

			w := env.mint(tt.body, env.token)

			assert.Equal(t, http.StatusOK, w.Code)
			env.issuer.AssertExpectations(t)
		})
	}
}

func TestHandleMint_Unauthenticated(t *testing.T) {
	env := setupTestEnvironment(t)

	w := env.mint(`{}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"no auth"}`, w.Body.String())

	w = env.mint(`{}`, "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"invalid token"}`, w.Body.String())

	env.issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestHandleMint_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTxID   string
	}{
		{"signer unavailable", interfaces.ErrSignerUnavailable, http.StatusInternalServerError, ""},
		{"node unreachable", interfaces.ErrNetwork, http.StatusBadGateway, ""},
		{"rejected", interfaces.ErrSubmission, http.StatusUnprocessableEntity, ""},
		{"timeout", &interfaces.ConfirmationError{TxID: "SLOWTX", Err: interfaces.ErrConfirmationTimeout}, http.StatusGatewayTimeout, "SLOWTX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvironment(t)
			env.issuer.On("Issue", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := env.mint(`{"name":"Gold Certificate"}`, env.token)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.err.Error(), resp.Message)
			assert.Equal(t, tt.wantTxID, resp.TxID)
		})
	}
}

func TestHandleMint_InvalidJSON(t *testing.T) {
	env := setupTestEnvironment(t)

	w := env.mint(`{"name":`, env.token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.issuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}
