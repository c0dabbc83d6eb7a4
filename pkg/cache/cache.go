package cache

import (
	"context"
	"time"
)

// TokenCache is the storage the client uses for the shared access token.
// Hosts can plug in their own store (Redis, memcached, ...) as long as the
// implementation honors the TTL: a value stored with ttl d must not be
// returned by Get once d has elapsed. A ttl of zero means the value is
// immediately expired (stored, but never returned).
type TokenCache interface {
	// Get retrieves a value from the cache.
	// Returns the value, whether it was found and still alive, and any error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores a value in the cache with the given lifetime.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Invalidate removes a value from the cache.
	Invalidate(ctx context.Context, key string) error
}
