package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Access-token cache management",
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Obtain an access token and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		token, err := cli.AccessToken(cmd.Context())
		if err != nil {
			return fmt.Errorf("obtaining access token: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Evict the cached access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		if err := cli.ClearTokenCache(cmd.Context()); err != nil {
			return fmt.Errorf("clearing token cache: %w", err)
		}
		fmt.Printf("%s token cache cleared\n", greenCheck)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenShowCmd, tokenClearCmd)
	rootCmd.AddCommand(tokenCmd)
}
