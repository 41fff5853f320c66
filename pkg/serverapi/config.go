package serverapi

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// Config contains configuration for the Server API client.
//
// Example configuration (HCL profile; credentials usually come from the
// environment instead):
//
//	server {
//	  base_url   = "https://mi.example.com/mi_servicelayer"
//	  tls_verify = true
//	}
type Config struct {
	// BaseURL is the base URL of the MatForge Data Server service layer.
	// Example: "https://mi.example.com/mi_servicelayer"
	BaseURL string `hcl:"base_url,optional" json:"baseUrl"`

	// APIToken is a bearer token for authentication. Leave empty together
	// with Username/Password for an anonymous connection.
	APIToken string `hcl:"api_token,optional" json:"-"`

	// Username and Password select HTTP basic authentication. Ignored when
	// APIToken or TokenSource is set.
	Username string `hcl:"username,optional" json:"-"`
	Password string `hcl:"password,optional" json:"-"`

	// TokenSource supplies OAuth2 tokens for deployments fronted by an
	// identity provider. Takes precedence over APIToken. The token is used
	// opaquely; no negotiation is performed here.
	TokenSource oauth2.TokenSource `json:"-"`

	// ApplicationName is reported to the server for usage auditing.
	// Default: "recordlists-go".
	ApplicationName string `hcl:"application_name,optional" json:"applicationName,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development/testing with self-signed certs.
	TLSVerify *bool `hcl:"tls_verify,optional" json:"tlsVerify,omitempty"`

	// Timeout for API requests. Default: 30 seconds.
	Timeout time.Duration `json:"timeout,omitempty"`

	// ConnectRetries is the number of additional attempts the initial
	// connectivity check may make. API operations after Connect never retry.
	// Default: 2.
	ConnectRetries int `hcl:"connect_retries,optional" json:"connectRetries,omitempty"`

	// Logger receives request-level debug logging.
	// Default: a no-op logger.
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		ApplicationName: "recordlists-go",
		TLSVerify:       &tlsVerify,
		Timeout:         30 * time.Second,
		ConnectRetries:  2,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}

	parsedURL, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https scheme, got: %s", parsedURL.Scheme)
	}

	if c.APIToken != "" && c.Username != "" {
		return fmt.Errorf("api_token and username/password are mutually exclusive")
	}

	if c.Username == "" && c.Password != "" {
		return fmt.Errorf("password requires a username")
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %v", c.Timeout)
	}

	if c.ConnectRetries < 0 {
		return fmt.Errorf("connect_retries must be non-negative, got: %d", c.ConnectRetries)
	}

	return nil
}

// NewHTTPClient creates a configured HTTP client for this API client.
func (c *Config) NewHTTPClient() *http.Client {
	var transport http.RoundTripper = &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSClientConfig:     c.tlsConfig(),
	}

	// OAuth2 token injection happens in the transport so every request,
	// including redirect follow-ups, carries a fresh token.
	if c.TokenSource != nil {
		transport = &oauth2.Transport{
			Source: c.TokenSource,
			Base:   transport,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}

func (c *Config) tlsConfig() *tls.Config {
	if c.TLSVerify != nil && !*c.TLSVerify {
		return &tls.Config{
			InsecureSkipVerify: true,
		}
	}
	return nil
}

// normalizedBaseURL returns BaseURL without a trailing slash so path joining
// stays predictable.
func (c *Config) normalizedBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}
