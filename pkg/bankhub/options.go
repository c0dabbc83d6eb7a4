package bankhub

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sepayvn/sepay-bankhub-go/pkg/cache"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for every request. Timeouts,
// TLS and proxying are entirely the transport's business; the client adds
// no timeout policy of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenCache replaces the default in-memory token cache, e.g. with a
// Redis-backed store shared between processes.
func WithTokenCache(tc cache.TokenCache) Option {
	return func(c *Client) {
		if tc != nil {
			c.cache = tc
		}
	}
}

// WithLogger sets the logger used for failure reporting. Defaults to the
// global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRetryOnUnauthorized makes the client evict the cached token and
// re-authenticate exactly once when a business call returns 401. Off by
// default: the upstream token is evicted before its real expiry, so a 401
// normally points at revoked credentials, not a stale cache.
func WithRetryOnUnauthorized(enabled bool) Option {
	return func(c *Client) {
		c.retryOnUnauthorized = enabled
	}
}
