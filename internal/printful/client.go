// Package printful is the HTTP client for the print-on-demand fulfillment
// provider. Response decoding is deliberately defensive: the provider's
// endpoint versions disagree on envelope shape, so every known shape is
// probed before giving up.
package printful

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.printful.com"
	defaultTimeout = 15 * time.Second
	retryBackoff   = 500 * time.Millisecond
)

// API is the surface the storefront services depend on. The concrete Client
// talks HTTP; tests substitute the Mock.
type API interface {
	// ListStoreProducts returns the store's product catalog.
	ListStoreProducts(ctx context.Context) ([]StoreProduct, error)

	// GetProduct returns one product with its full variant list.
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// CreateOrder submits a fulfillment order.
	CreateOrder(ctx context.Context, params OrderParams) (*Order, error)
}

// Client implements API against the provider's REST endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Config contains configuration for the Printful client.
type Config struct {
	APIKey  string
	BaseURL string        // Optional: defaults to the production API
	Timeout time.Duration // Optional: per-request timeout, defaults to 15s
	Logger  *slog.Logger  // Optional: defaults to slog.Default()
}

// NewClient creates a new Printful client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// ListStoreProducts fetches the store catalog. The store/products endpoint
// is tried first; a 401 falls back to sync/products, matching how the two
// endpoint generations split credentials.
func (c *Client) ListStoreProducts(ctx context.Context) ([]StoreProduct, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/store/products", nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		c.logger.Warn("store/products rejected credentials, trying sync/products")
		status, body, err = c.do(ctx, http.MethodGet, "/sync/products", nil)
		if err != nil {
			return nil, err
		}
	}

	if status < 200 || status > 299 {
		return nil, fmt.Errorf("printful: list products returned status %d: %s", status, truncate(body, 200))
	}

	products, err := decodeStoreProducts(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetched provider catalog", "product_count", len(products))
	return products, nil
}

// GetProduct fetches one product's detail record, including the variant list.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/store/products/"+productID, nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("printful: get product %s returned status %d: %s", productID, status, truncate(body, 200))
	}

	return decodeProduct(body)
}

// CreateOrder submits a fulfillment order. Required recipient fields are
// validated before the request is issued.
func (c *Client) CreateOrder(ctx context.Context, params OrderParams) (*Order, error) {
	r := params.Recipient
	if r.Address1 == "" || r.City == "" || r.CountryCode == "" {
		return nil, ErrMissingRecipient
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("printful: encode order: %w", err)
	}

	status, body, err := c.do(ctx, http.MethodPost, "/orders", payload)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("printful: create order returned status %d: %s", status, truncate(body, 200))
	}

	var envelope struct {
		Result *Order `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Result != nil {
		return envelope.Result, nil
	}

	var order Order
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("printful: decode order response: %w", err)
	}
	return &order, nil
}

// do issues one request with a single retry on transient failures
// (network errors and 5xx responses). 4xx responses are returned as-is for
// the caller to interpret.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return 0, nil, ctx.Err()
			}
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return 0, nil, fmt.Errorf("printful: build request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("printful: %s %s: %w", method, path, err)
			c.logger.Warn("provider request failed", "method", method, "path", path, "attempt", attempt+1, "error", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("printful: read response: %w", err)
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("printful: %s %s returned status %d", method, path, resp.StatusCode)
			c.logger.Warn("provider returned server error", "method", method, "path", path, "status", resp.StatusCode, "attempt", attempt+1)
			continue
		}

		return resp.StatusCode, body, nil
	}

	return 0, nil, lastErr
}

// decodeStoreProducts probes the known catalog envelope shapes:
// {result:{items:[...]}}, then {result:[...]}, then a bare array.
func decodeStoreProducts(body []byte) ([]StoreProduct, error) {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Result) > 0 {
		var nested struct {
			Items []StoreProduct `json:"items"`
		}
		if err := json.Unmarshal(envelope.Result, &nested); err == nil && nested.Items != nil {
			return nested.Items, nil
		}

		var flat []StoreProduct
		if err := json.Unmarshal(envelope.Result, &flat); err == nil {
			return flat, nil
		}
	}

	var bare []StoreProduct
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	return nil, ErrMalformedResponse
}

// decodeProduct probes the detail envelope: {result:{...}} or a bare object.
func decodeProduct(body []byte) (*Product, error) {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Result) > 0 {
		var product Product
		if err := json.Unmarshal(envelope.Result, &product); err == nil {
			return &product, nil
		}
	}

	var product Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, ErrMalformedResponse
	}
	return &product, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
