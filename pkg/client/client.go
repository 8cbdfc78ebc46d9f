// Package client talks to the Voxia API and keeps a local, optimistic copy of
// the clinic data for front ends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:3001/api"
	DefaultTimeout = 10 * time.Second
)

// APIError is returned for every non-2xx answer.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

type Option func(*Client)

// WithTimeout bounds every request. A timeout is reported like any other failure.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithToken(accessToken string) Option {
	return func(c *Client) { c.accessToken = accessToken }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *Client) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken = access
	c.refreshToken = refresh
	c.mu.Unlock()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send performs the request and returns the raw body of a 2xx answer.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			apiErr.Message = env.Message
		}
		return nil, apiErr
	}
	return raw, nil
}

// do sends a JSON request and decodes the envelope's data into out when out is not nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	raw, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s data: %w", method, path, err)
	}
	return nil
}

// Health reports whether the server answers its health check.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodGet, "/health", nil)
	return err
}

// Login checks the credentials and keeps the issued tokens for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var login LoginResponse
	body := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", body, &login); err != nil {
		return nil, err
	}
	c.setTokens(login.AccessToken, login.RefreshToken)
	return &login, nil
}

// Logout revokes the held tokens. The tokens are forgotten even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()

	err := c.do(ctx, http.MethodPost, "/logout", LogoutRequest{RefreshToken: refresh}, nil)
	c.setTokens("", "")
	return err
}

func (c *Client) Refresh(ctx context.Context) (*TokenResponse, error) {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()

	var tokens TokenResponse
	if err := c.do(ctx, http.MethodPost, "/refresh-token", RefreshTokenRequest{RefreshToken: refresh}, &tokens); err != nil {
		return nil, err
	}
	c.setTokens(tokens.AccessToken, tokens.RefreshToken)
	return &tokens, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Restock(ctx context.Context, id string, quantity int) (*StockItem, error) {
	var item StockItem
	path := "/stock-items/" + url.PathEscape(id) + "/restock"
	if err := c.do(ctx, http.MethodPost, path, RestockRequest{Quantity: quantity}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Seed replaces every table whose group is present in req.
func (c *Client) Seed(ctx context.Context, req *SeedRequest) (*SeedResponse, error) {
	var seeded SeedResponse
	if err := c.do(ctx, http.MethodPost, "/seed", req, &seeded); err != nil {
		return nil, err
	}
	return &seeded, nil
}

func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dashboard Dashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *Client) Statistics(ctx context.Context, r Range) (*Statistics, error) {
	var stats Statistics
	path := "/statistics?range=" + url.QueryEscape(string(r))
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) StockSummary(ctx context.Context) (*StockSummary, error) {
	var summary StockSummary
	if err := c.do(ctx, http.MethodGet, "/stock-items/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) InvoiceSummary(ctx context.Context) (*InvoiceSummary, error) {
	var summary InvoiceSummary
	if err := c.do(ctx, http.MethodGet, "/invoices/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ExpenseSummary(ctx context.Context) (*ExpenseSummary, error) {
	var summary ExpenseSummary
	if err := c.do(ctx, http.MethodGet, "/expenses/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Export downloads the full-data workbook.
func (c *Client) Export(ctx context.Context) ([]byte, error) {
	return c.send(ctx, http.MethodGet, "/export", nil)
}

func (c *Client) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, "/invoices/"+url.PathEscape(id)+"/pdf", nil)
}
