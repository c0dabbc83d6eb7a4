package cache

import (
	"context"
	"testing"
	"time"
)

func TestInMemoryCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || got != "v" {
		t.Fatalf("expected hit with 'v', got %q (hit=%v)", got, ok)
	}
}

func TestInMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		ttl     time.Duration
		advance time.Duration
		wantHit bool
	}{
		{name: "alive before ttl", ttl: time.Minute, advance: 59 * time.Second, wantHit: true},
		{name: "expired at ttl", ttl: time.Minute, advance: time.Minute, wantHit: false},
		{name: "zero ttl is immediately expired", ttl: 0, advance: 0, wantHit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
			c := NewInMemoryCache()
			c.now = func() time.Time { return now }

			if err := c.Set(ctx, "k", "v", tt.ttl); err != nil {
				t.Fatalf("Set: %v", err)
			}
			now = now.Add(tt.advance)

			_, ok, err := c.Get(ctx, "k")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
		})
	}
}

func TestInMemoryCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()

	_ = c.Set(ctx, "k", "v", time.Hour)
	if err := c.Invalidate(ctx, "k"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss after Invalidate")
	}

	// invalidating a missing key is not an error
	if err := c.Invalidate(ctx, "missing"); err != nil {
		t.Fatalf("Invalidate missing key: %v", err)
	}
}
