package lookup

import (
	"context"
	"net/http"
	"time"
)

const (
	// DefaultGeoBaseURL is the default geolocation service base URL.
	DefaultGeoBaseURL = "https://ipinfo.io"

	// DefaultRDAPBaseURL is the default RDAP bootstrap service base URL.
	// rdap.org redirects each query to the authoritative registry.
	DefaultRDAPBaseURL = "https://rdap.org"

	// DefaultTimeout is the default HTTP timeout per lookup request.
	DefaultTimeout = 15 * time.Second

	// DefaultMaxRetries is the default maximum number of retries.
	DefaultMaxRetries = 3

	// DefaultInitialBackoff is the default initial backoff duration.
	DefaultInitialBackoff = 500 * time.Millisecond

	// DefaultMaxBackoff is the default maximum backoff duration.
	DefaultMaxBackoff = 5 * time.Second
)

// Client is the interface for the enrichment lookup services.
type Client interface {
	// Geolocation returns the geolocation record for an IP address.
	Geolocation(ctx context.Context, ip string) (*GeoRecord, error)

	// Registration returns the normalized registration record for an
	// IP address, derived from the authoritative RDAP registry.
	Registration(ctx context.Context, ip string) (*RegistrationRecord, error)
}

// RetryConfig configures retry behavior.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts.
	MaxRetries int

	// InitialBackoff is the initial backoff duration.
	InitialBackoff time.Duration

	// MaxBackoff is the maximum backoff duration.
	MaxBackoff time.Duration
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: DefaultInitialBackoff,
		MaxBackoff:     DefaultMaxBackoff,
	}
}

// ClientConfig contains configuration for the lookup client.
type ClientConfig struct {
	// Token is the ipinfo API token. Optional; unauthenticated requests
	// are served at a reduced rate limit.
	Token string

	// GeoBaseURL is the geolocation service base URL.
	// Defaults to DefaultGeoBaseURL.
	GeoBaseURL string

	// RDAPBaseURL is the RDAP service base URL.
	// Defaults to DefaultRDAPBaseURL.
	RDAPBaseURL string

	// Timeout is the HTTP timeout per request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// HTTPClient is an optional custom HTTP client.
	// If nil, a new client will be created.
	HTTPClient *http.Client

	// Retry configures retry behavior. If nil, retries are disabled.
	Retry *RetryConfig
}

// DefaultClient creates a new lookup client with default configuration.
func DefaultClient(token string) Client {
	retryConfig := DefaultRetryConfig()
	return NewClient(ClientConfig{
		Token: token,
		Retry: &retryConfig,
	})
}

// NewClient creates a new lookup client with the given configuration.
func NewClient(cfg ClientConfig) Client {
	if cfg.GeoBaseURL == "" {
		cfg.GeoBaseURL = DefaultGeoBaseURL
	}
	if cfg.RDAPBaseURL == "" {
		cfg.RDAPBaseURL = DefaultRDAPBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &client{
		token:       cfg.Token,
		geoBaseURL:  cfg.GeoBaseURL,
		rdapBaseURL: cfg.RDAPBaseURL,
		httpClient:  httpClient,
		retry:       cfg.Retry,
	}
}

type client struct {
	token       string
	geoBaseURL  string
	rdapBaseURL string
	httpClient  *http.Client
	retry       *RetryConfig
}

// isSuccessStatus returns true if the status code indicates success (2xx).
func isSuccessStatus(code int) bool {
	return code >= 200 && code < 300
}

// isRetryableStatus returns true if the status code indicates a retryable error.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests ||
		code == http.StatusServiceUnavailable ||
		code == http.StatusGatewayTimeout ||
		code >= 500
}

// shouldRetry determines if a request should be retried.
func (c *client) shouldRetry(err error, statusCode int, attempt int) bool {
	if c.retry == nil || attempt >= c.retry.MaxRetries {
		return false
	}

	// Retry on network errors
	if err != nil {
		return true
	}

	// Retry on retryable HTTP status codes
	return isRetryableStatus(statusCode)
}

// calculateBackoff calculates the backoff duration for a retry attempt.
func (c *client) calculateBackoff(attempt int) time.Duration {
	if c.retry == nil {
		return 0
	}

	backoff := c.retry.InitialBackoff
	for i := 0; i < attempt; i++ {
		backoff *= 2
	}

	if backoff > c.retry.MaxBackoff {
		backoff = c.retry.MaxBackoff
	}

	return backoff
}
