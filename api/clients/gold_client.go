package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goldvault/transparent-gold-backend/api"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	TxID       string
}

func (e *APIError) Error() string {
	if e.TxID != "" {
		return fmt.Sprintf("api error %d: %s (tx %s)", e.StatusCode, e.Message, e.TxID)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type GoldClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewGoldClient creates a client for baseURL. A nil httpClient selects
// http.DefaultClient; mint calls block until confirmation, so a custom client
// should not time out earlier than the server's confirmation wait.
func NewGoldClient(baseURL string, httpClient *http.Client) *GoldClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GoldClient{baseURL: strings.TrimSuffix(baseURL, "/"), http: httpClient}
}

// WithToken sets the bearer token used by authenticated calls.
func (c *GoldClient) WithToken(token string) *GoldClient {
	c.token = token
	return c
}

func (c *GoldClient) Token() string {
	return c.token
}

func (c *GoldClient) Signup(ctx context.Context, email, password string) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", api.Credentials{Email: email, Password: password}, &api.MessageResponse{})
}

// Login authenticates and keeps the returned token for later calls.
func (c *GoldClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp api.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", api.Credentials{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	c.token = resp.Token
	return resp.Token, nil
}

func (c *GoldClient) Profile(ctx context.Context) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GoldClient) GoldPrice(ctx context.Context) (float64, error) {
	var resp api.GoldPriceResponse
	if err := c.do(ctx, http.MethodGet, "/gold-price", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Price, nil
}

func (c *GoldClient) Vault(ctx context.Context) (*api.VaultResponse, error) {
	var resp api.VaultResponse
	if err := c.do(ctx, http.MethodGet, "/vault", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GoldClient) Balance(ctx context.Context, address string) (*api.BalanceResponse, error) {
	var resp api.BalanceResponse
	if err := c.do(ctx, http.MethodGet, "/balance/"+url.PathEscape(address), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Mint requests a certificate and waits for the server to confirm it.
func (c *GoldClient) Mint(ctx context.Context, req *api.MintRequest) (*api.MintResponse, error) {
	var resp api.MintResponse
	if err := c.do(ctx, http.MethodPost, "/mint-nft", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GoldClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("could not initialize request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("could not request %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read %s response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
			apiErr.TxID = errResp.TxID
		} else {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("could not parse %s response: %w", path, err)
	}
	return nil
}
