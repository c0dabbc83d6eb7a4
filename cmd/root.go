package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sepayvn/sepay-bankhub-go/internal/logging"
)

// global flags
var (
	userConfig string
	serverAddr string
)

const (
	LogLevelKey   = "log.level"
	LogFormatKey  = "log.format"
	LogNoColorKey = "log.no_color"

	ServerKey    = "server"
	APIKeyKey    = "api_key"
	APISecretKey = "api_secret"
)

var rootCmd = &cobra.Command{
	Use:   "bankhub",
	Short: "CLI for the SePay BankHub partner-banking API",
	Long: `bankhub drives the SePay BankHub partner API from the command line:
	merchant (company) management, bank-account linking with OTP confirmation,
	virtual-account provisioning and transaction history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, configErr := initConfig()
		logging.Init(&logging.Options{
			Level:   viper.GetString(LogLevelKey),
			Format:  viper.GetString(LogFormatKey),
			NoColor: viper.GetBool(LogNoColorKey),
		})
		if configErr != nil { // handle error after logging is initialized
			return configErr
		}
		if configPath != "" {
			log.Debug().Msgf("using config file: %s", configPath)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("execution failed")
		os.Exit(1)
	}
}

func init() {
	// setup pre-flag logger
	logging.InitDefault()

	rootCmd.PersistentFlags().StringVar(&userConfig, "user-config", "",
		"User configuration file for default values (default is $HOME/.bankhub.yaml)")

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(LogLevelKey, rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")
	_ = viper.BindPFlag(LogFormatKey, rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable color output")
	_ = viper.BindPFlag(LogNoColorKey, rootCmd.PersistentFlags().Lookup("no-color"))

	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "",
		"BankHub API base URL (default is the production endpoint)")
	_ = viper.BindPFlag(ServerKey, rootCmd.PersistentFlags().Lookup("server"))

	viper.SetEnvPrefix("BANKHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))

	viper.AutomaticEnv()

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func initConfig() (string, error) {
	// reads in config file and ENV variables if set.
	if userConfig != "" {
		viper.SetConfigFile(userConfig)
	} else {
		// search order: current dir, $HOME, XDG config
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}

		config, err := os.UserConfigDir()
		if err == nil {
			viper.AddConfigPath(config + "/bankhub")
		}

		viper.SetConfigType("yaml")
		viper.SetConfigName(".bankhub")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		var notFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &notFoundError) {
			return "", err
		}
		return "", nil
	}
	return viper.ConfigFileUsed(), nil
}
