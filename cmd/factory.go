package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sepayvn/sepay-bankhub-go/internal/cliconfig"
	"github.com/sepayvn/sepay-bankhub-go/pkg/bankhub"
)

type Factory struct{}

var f = &Factory{}

// GetClient builds an authenticated BankHub client. The base URL comes from
// --server / BANKHUB_SERVER and falls back to the production endpoint.
// Credentials are resolved flag/env first, saved login second.
func (f *Factory) GetClient() (*bankhub.Client, error) {
	server := viper.GetString(ServerKey)
	if server == "" {
		server = bankhub.DefaultBaseURL
	}

	apiKey := viper.GetString(APIKeyKey)
	apiSecret := viper.GetString(APISecretKey)

	if apiKey == "" || apiSecret == "" {
		if cfg, err := cliconfig.Load(); err == nil {
			if cred, err := cfg.GetCredential(server); err == nil {
				if apiKey == "" {
					apiKey = cred.APIKey
				}
				if apiSecret == "" {
					apiSecret = cred.APISecret
				}
			}
		}
	}

	if apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("credentials not configured (run 'bankhub login' or set BANKHUB_API_KEY and BANKHUB_API_SECRET)")
	}

	return bankhub.New(bankhub.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   server,
	})
}
