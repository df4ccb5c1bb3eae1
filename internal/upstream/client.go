// Package upstream provides the HTTP client for the authoritative stock service.
//
// The stock service owns all invariant-enforcing logic (availability checks,
// atomicity of a transfer); this package only speaks its wire contract:
// a read-only preview call and a side-effecting execute call.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/metrics"
)

const (
	previewPath = "/stock/wholesale-to-retail/preview"
	executePath = "/stock/wholesale-to-retail/execute"

	// DefaultTimeout bounds every upstream call. Matches the 15s client
	// timeout the POS front-end uses against the same service.
	DefaultTimeout = 15 * time.Second
)

// Error is a failure reported by the stock service. Message carries the
// server-provided text verbatim so it can be surfaced to the user unchanged.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("stock service: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("stock service: status %d", e.Status)
}

// StockClient is the client-observed contract of the stock service.
// Preview is safe to call repeatedly; Execute mutates stock and must be
// called at most once per confirmed transfer.
type StockClient interface {
	Preview(ctx context.Context, req *dto.TransferRequest) ([]model.PreviewResult, error)
	Execute(ctx context.Context, req *dto.TransferRequest) (*model.ExecuteResult, error)
}

// Client is the HTTP implementation of StockClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient injects a custom http.Client (used by tests).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAPIKey sets the API key sent to the stock service.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// NewClient creates a stock service client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Preview asks the stock service which cart lines are fulfillable.
// The call has no server-side effects.
func (c *Client) Preview(ctx context.Context, req *dto.TransferRequest) ([]model.PreviewResult, error) {
	var results []model.PreviewResult
	if err := c.post(ctx, "preview", previewPath, req, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Execute commits the transfer server-side and returns the authoritative
// transfer identifier. Callers must guard against duplicate invocation.
func (c *Client) Execute(ctx context.Context, req *dto.TransferRequest) (*model.ExecuteResult, error) {
	var result model.ExecuteResult
	if err := c.post(ctx, "execute", executePath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// post issues one JSON POST and decodes the response into out.
func (c *Client) post(ctx context.Context, operation, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", operation, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-API-Key", c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordUpstreamRequest(operation, "transport_error", duration)
		log.Error().
			Err(err).
			Str("operation", operation).
			Dur("duration", duration).
			Msg("Stock service request failed")
		return fmt.Errorf("stock service %s: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordUpstreamRequest(operation, "server_error", duration)
		return c.decodeError(resp)
	}

	metrics.RecordUpstreamRequest(operation, "success", duration)

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}

	log.Debug().
		Str("operation", operation).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("Stock service request completed")
	return nil
}

// decodeError extracts the server-provided error message, if any.
func (c *Client) decodeError(resp *http.Response) error {
	upstreamErr := &Error{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return upstreamErr
	}

	// The stock service reports errors as {"message": "..."} or as the
	// shared ErrorResponse envelope. Try both before giving up.
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			upstreamErr.Message = envelope.Message
		} else if envelope.Error != "" {
			upstreamErr.Message = envelope.Error
		}
	}

	log.Warn().
		Int("status", resp.StatusCode).
		Str("message", upstreamErr.Message).
		Msg("Stock service returned an error")
	return upstreamErr
}
