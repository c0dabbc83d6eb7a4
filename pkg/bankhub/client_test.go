package bankhub

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sepayvn/sepay-bankhub-go/pkg/cache"
)

const testToken = "T1"

// tokenHandler answers the issuance endpoint and counts calls.
type tokenHandler struct {
	mu    sync.Mutex
	calls int
	body  string
	code  int
}

func (h *tokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()

	code := h.code
	if code == 0 {
		code = http.StatusOK
	}
	body := h.body
	if body == "" {
		body = `{"access_token":"` + testToken + `","ttl":120}`
	}
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

func (h *tokenHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// recordingCache wraps the in-memory cache and records every TTL passed to Set.
type recordingCache struct {
	cache.TokenCache
	mu   sync.Mutex
	ttls []time.Duration
}

func newRecordingCache() *recordingCache {
	return &recordingCache{TokenCache: cache.NewInMemoryCache()}
}

func (c *recordingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	c.ttls = append(c.ttls, ttl)
	c.mu.Unlock()
	return c.TokenCache.Set(ctx, key, value, ttl)
}

// newTestClient spins up a fake upstream and returns a client pointed at it
// together with the captured log output.
func newTestClient(t *testing.T, mux http.Handler, opts ...Option) (*Client, *bytes.Buffer) {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	logs := &bytes.Buffer{}
	base := []Option{WithLogger(zerolog.New(logs))}
	c, err := New(Config{
		APIKey:    "key",
		APISecret: "secret",
		BaseURL:   server.URL,
	}, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c, logs
}

func seedToken(t *testing.T, c *Client) {
	t.Helper()
	if err := c.cache.Set(context.Background(), tokenCacheKey, testToken, time.Minute); err != nil {
		t.Fatalf("seeding token: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "missing key", cfg: Config{APISecret: "s"}, wantErr: true},
		{name: "missing secret", cfg: Config{APIKey: "k"}, wantErr: true},
		{name: "complete", cfg: Config{APIKey: "k", APISecret: "s"}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c, err := New(Config{APIKey: "k", APISecret: "s"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", c.cfg.BaseURL, DefaultBaseURL)
	}
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c, err := New(Config{APIKey: "k", APISecret: "s", BaseURL: "https://example.com/api/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.url().setPath("/banks").build(); got != "https://example.com/api/banks" {
		t.Fatalf("built URL = %q", got)
	}
}
