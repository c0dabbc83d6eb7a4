package cache

import (
	"context"
	"sync"
	"time"
)

var _ TokenCache = (*InMemoryCache)(nil)

type entry struct {
	value     string
	expiresAt time.Time
}

// InMemoryCache is a process-local TokenCache guarded by a RWMutex.
// Expired entries are overwritten on the next Set; there is no background
// sweeper since the cache only ever holds a handful of keys.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *InMemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false, nil
	}
	if !c.now().Before(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (c *InMemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *InMemoryCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}
