package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sepayvn/sepay-bankhub-go/internal/cliconfig"
	"github.com/sepayvn/sepay-bankhub-go/pkg/bankhub"
)

var (
	loginAPIKey    string
	loginAPISecret string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save API credentials for a BankHub host",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginAPIKey == "" || loginAPISecret == "" {
			return fmt.Errorf("both --api-key and --api-secret are required")
		}

		server := viper.GetString(ServerKey)
		if server == "" {
			server = bankhub.DefaultBaseURL
		}

		cfg, err := cliconfig.Load()
		if err != nil {
			// a missing or unreadable config file just means first login
			cfg = &cliconfig.CLIConfig{}
		}

		if err := cfg.SetCredential(server, &cliconfig.Credential{
			APIKey:    loginAPIKey,
			APISecret: loginAPISecret,
		}); err != nil {
			return err
		}
		if err := cliconfig.Save(cfg); err != nil {
			return fmt.Errorf("saving credentials: %w", err)
		}

		fmt.Printf("%s credentials saved for %s\n", greenCheck, server)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginAPIKey, "api-key", "", "BankHub API key")
	loginCmd.Flags().StringVar(&loginAPISecret, "api-secret", "", "BankHub API secret")
	rootCmd.AddCommand(loginCmd)
}
