package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sepayvn/sepay-bankhub-go/pkg/bankhub"
)

var vasCmd = &cobra.Command{
	Use:     "vas",
	Aliases: []string{"va", "virtual-accounts"},
	Short:   "Virtual-account provisioning",
}

var (
	vasPerPage       int
	vasPage          int
	vasQuery         string
	vasCompanyID     string
	vasBankAccountID string
	vasBank          string
)

var vasListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List virtual accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		vas, meta, err := cli.ListVirtualAccounts(cmd.Context(), bankhub.ListVirtualAccountsOpts{
			PerPage:       vasPerPage,
			Page:          vasPage,
			Query:         vasQuery,
			CompanyID:     vasCompanyID,
			BankAccountID: vasBankAccountID,
			Bank:          bankhub.Bank(vasBank),
		})
		if err != nil {
			return fmt.Errorf("listing virtual accounts: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Number", "Bank", "Label", "Account", "Status"})

		for _, va := range vas {
			t.AppendRow(table.Row{
				va.ID,
				va.Number,
				string(va.Bank),
				truncate(va.Label, 30),
				va.BankAccountID,
				statusCell(va.Status),
			})
		}

		applyTableFormat(t)
		t.Render()
		fmt.Printf("page %d/%d, %d total\n", meta.CurrentPage, meta.PageCount, meta.Total)
		return nil
	},
}

var vasGetCmd = &cobra.Command{
	Use:   "get <va-id>",
	Short: "Show one virtual account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		va, err := cli.GetVirtualAccount(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting virtual account: %w", err)
		}

		fmt.Printf("%s %s (%s)\n", string(va.Bank), va.Number, va.ID)
		fmt.Printf("  label:   %s\n", va.Label)
		fmt.Printf("  account: %s\n", va.BankAccountID)
		fmt.Printf("  company: %s\n", va.CompanyID)
		fmt.Printf("  status:  %s\n", statusCell(va.Status))
		return nil
	},
}

var vasEnableCmd = &cobra.Command{
	Use:   "enable <va-id>",
	Short: "Re-activate a disabled virtual account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		va, err := cli.EnableVirtualAccount(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("enabling virtual account: %w", err)
		}
		fmt.Printf("%s %s is now %s\n", greenCheck, va.Number, statusCell(va.Status))
		return nil
	},
}

var vasDisableCmd = &cobra.Command{
	Use:   "disable <va-id>",
	Short: "Stop a virtual account from accepting transfers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		va, err := cli.DisableVirtualAccount(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("disabling virtual account: %w", err)
		}
		fmt.Printf("%s %s is now %s\n", greenCheck, va.Number, statusCell(va.Status))
		return nil
	},
}

func init() {
	vasListCmd.Flags().IntVar(&vasPerPage, "per-page", 0, "Page size")
	vasListCmd.Flags().IntVar(&vasPage, "page", 0, "Page number")
	vasListCmd.Flags().StringVarP(&vasQuery, "query", "q", "", "Free-text filter")
	vasListCmd.Flags().StringVar(&vasCompanyID, "company", "", "Filter by company ID")
	vasListCmd.Flags().StringVar(&vasBankAccountID, "account", "", "Filter by bank account ID")
	vasListCmd.Flags().StringVar(&vasBank, "bank", "", "Filter by bank (ocb, msb, klb, bvbank)")

	vasCmd.AddCommand(vasListCmd, vasGetCmd, vasEnableCmd, vasDisableCmd)
	rootCmd.AddCommand(vasCmd)
}
