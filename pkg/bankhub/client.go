// Package bankhub is a Go client for the SePay BankHub partner-banking API.
//
// The client authenticates with an API key/secret pair, caches the resulting
// bearer token until shortly before it expires, and exposes typed wrappers for
// company management, bank-account linking, virtual-account provisioning and
// transaction history.
package bankhub

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sepayvn/sepay-bankhub-go/pkg/cache"
)

// DefaultBaseURL is the production BankHub endpoint used when Config.BaseURL
// is left empty.
const DefaultBaseURL = "https://bankhub.sepay.vn/api/v1"

// Config carries the static credentials and endpoints supplied by the host
// application. APIKey and APISecret are required.
type Config struct {
	APIKey    string
	APISecret string

	// BaseURL of the BankHub API. Defaults to DefaultBaseURL.
	BaseURL string

	// IPNToken is the shared token BankHub sends with payment notifications.
	// It is declared here so hosts can keep all BankHub settings in one
	// place; the client itself never sends or checks it.
	IPNToken string
}

// Client talks to the BankHub API. All methods are safe for concurrent use;
// the only shared state is the token cache, which does its own locking.
type Client struct {
	cfg        Config
	httpClient *http.Client
	cache      cache.TokenCache
	logger     zerolog.Logger

	// retryOnUnauthorized enables a single clear-cache-and-reissue pass when
	// a business call comes back 401 despite the expiry buffer.
	retryOnUnauthorized bool
}

// New builds a Client from the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("bankhub: api key is required")
	}
	if cfg.APISecret == "" {
		return nil, fmt.Errorf("bankhub: api secret is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		cache:      cache.NewInMemoryCache(),
		logger:     log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) url() *urlBuilder {
	return newURLBuilder(c.cfg.BaseURL)
}
