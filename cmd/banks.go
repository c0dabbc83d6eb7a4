package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "Bank catalog",
}

var banksListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List banks available on the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		banks, err := cli.ListBanks(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing banks: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Code", "Short Name", "Full Name", "BIN", "Active"})

		for _, b := range banks {
			active := redCross
			if b.Active {
				active = greenCheck
			}
			t.AppendRow(table.Row{b.ID, b.Code, b.ShortName, truncate(b.FullName, 40), b.BIN, active})
		}

		applyTableFormat(t)
		t.Render()
		return nil
	},
}

func init() {
	banksCmd.AddCommand(banksListCmd)
	rootCmd.AddCommand(banksCmd)
}
