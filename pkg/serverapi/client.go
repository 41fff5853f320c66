// Package serverapi is a hand-written client for the record-lists surface of
// the MatForge Data Server REST API. It exposes the wire-level operations and
// DTO types; the typed domain layer in pkg/recordlists builds on top of it.
//
// Requests are issued exactly once. Failed responses become *APIError values
// carrying the HTTP status; transport errors propagate wrapped. There is no
// retry or backoff here: callers that want resilience own that decision.
package serverapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Client issues requests against the record-lists Server API.
type Client struct {
	config *Config
	client *http.Client
	logger hclog.Logger
}

// NewClient creates a Server API client. The configuration is validated after
// defaults are applied; no network traffic happens here.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Apply defaults
	defaults := DefaultConfig()
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = defaults.TLSVerify
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.ConnectRetries == 0 {
		cfg.ConnectRetries = defaults.ConnectRetries
	}
	if cfg.ApplicationName == "" {
		cfg.ApplicationName = defaults.ApplicationName
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server API config: %w", err)
	}

	return &Client{
		config: cfg,
		client: cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("serverapi"),
	}, nil
}

// BaseURL returns the normalized base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.config.normalizedBaseURL()
}

// ConnectRetries returns the configured bootstrap retry budget.
func (c *Client) ConnectRetries() int {
	return c.config.ConnectRetries
}

// do executes a single HTTP request and decodes the JSON response into
// result when one is expected. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	endpoint := c.buildURL(path, query)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req, body != nil)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request complete",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, method, path, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	// The oauth2 transport injects its own Authorization header.
	switch {
	case c.config.TokenSource != nil:
	case c.config.APIToken != "":
		req.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	case c.config.Username != "":
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-MatForge-Application", c.config.ApplicationName)
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
}

// buildURL constructs a URL with query parameters.
func (c *Client) buildURL(path string, query url.Values) string {
	u, _ := url.Parse(c.config.normalizedBaseURL() + path)

	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String()
}
