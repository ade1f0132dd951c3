// Package utils provides general-purpose helper utilities used across the
// registry manager: keyed hashing, the HTTP client wrapper, and identifier
// generation.
package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// CloseIdleConnections releases keep-alive connections held by the
// underlying transport. The client stays usable afterwards.
func (c *HTTPClient) CloseIdleConnections() {
	if hc := c.GetClient(); hc != nil {
		hc.CloseIdleConnections()
	}
}

// IsRetryableStatus reports whether an HTTP status signals a transient
// condition worth retrying: throttling or a temporarily unavailable backend.
func IsRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
