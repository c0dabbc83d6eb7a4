package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sepayvn/sepay-bankhub-go/pkg/bankhub"
)

var accountsCmd = &cobra.Command{
	Use:     "accounts",
	Aliases: []string{"account", "bank-accounts"},
	Short:   "Bank-account linking",
}

var (
	accountsPerPage   int
	accountsPage      int
	accountsQuery     string
	accountsCompanyID string
	accountsBank      string
)

var accountsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List bank accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		accounts, meta, err := cli.ListBankAccounts(cmd.Context(), bankhub.ListBankAccountsOpts{
			PerPage:   accountsPerPage,
			Page:      accountsPage,
			Query:     accountsQuery,
			CompanyID: accountsCompanyID,
			Bank:      bankhub.Bank(accountsBank),
		})
		if err != nil {
			return fmt.Errorf("listing bank accounts: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Company", "Bank", "Number", "Holder", "Status"})

		for _, a := range accounts {
			t.AppendRow(table.Row{
				a.ID,
				a.CompanyID,
				string(a.Bank),
				a.AccountNumber,
				truncate(a.AccountName, 30),
				statusCell(a.Status),
			})
		}

		applyTableFormat(t)
		t.Render()
		fmt.Printf("page %d/%d, %d total\n", meta.CurrentPage, meta.PageCount, meta.Total)
		return nil
	},
}

var accountsGetCmd = &cobra.Command{
	Use:   "get <account-id>",
	Short: "Show one bank account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		account, err := cli.GetBankAccount(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting bank account: %w", err)
		}

		fmt.Printf("%s %s (%s)\n", string(account.Bank), account.AccountNumber, account.ID)
		fmt.Printf("  holder:  %s\n", account.AccountName)
		fmt.Printf("  company: %s\n", account.CompanyID)
		fmt.Printf("  status:  %s\n", statusCell(account.Status))
		return nil
	},
}

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "OTP-gated account linking",
}

var (
	linkBank      string
	linkAccountID string
	linkRequestID string
	linkOTP       string
)

var linkRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Start the link flow; prints the request ID for 'link confirm'",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		requestID, err := cli.RequestLinkBankAccount(cmd.Context(), bankhub.Bank(linkBank), linkAccountID)
		if err != nil {
			return fmt.Errorf("requesting link: %w", err)
		}

		fmt.Printf("%s OTP sent, request id: %s\n", greenCheck, requestID)
		return nil
	},
}

var linkConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Finish the link flow with the OTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		account, err := cli.ConfirmLinkBankAccount(cmd.Context(),
			bankhub.Bank(linkBank), linkAccountID, linkRequestID, linkOTP)
		if err != nil {
			return fmt.Errorf("confirming link: %w", err)
		}

		fmt.Printf("%s account %s is now %s\n", greenCheck, account.ID, statusCell(account.Status))
		return nil
	},
}

func init() {
	accountsListCmd.Flags().IntVar(&accountsPerPage, "per-page", 0, "Page size")
	accountsListCmd.Flags().IntVar(&accountsPage, "page", 0, "Page number")
	accountsListCmd.Flags().StringVarP(&accountsQuery, "query", "q", "", "Free-text filter")
	accountsListCmd.Flags().StringVar(&accountsCompanyID, "company", "", "Filter by company ID")
	accountsListCmd.Flags().StringVar(&accountsBank, "bank", "", "Filter by bank (ocb, msb, klb, bvbank)")

	for _, c := range []*cobra.Command{linkRequestCmd, linkConfirmCmd} {
		c.Flags().StringVar(&linkBank, "bank", "", "Bank (ocb, msb, klb, bvbank)")
		c.Flags().StringVar(&linkAccountID, "account", "", "Bank account ID")
		_ = c.MarkFlagRequired("bank")
		_ = c.MarkFlagRequired("account")
	}
	linkConfirmCmd.Flags().StringVar(&linkRequestID, "request-id", "", "Request ID from 'link request'")
	linkConfirmCmd.Flags().StringVar(&linkOTP, "otp", "", "One-time code")
	_ = linkConfirmCmd.MarkFlagRequired("request-id")
	_ = linkConfirmCmd.MarkFlagRequired("otp")

	linkCmd.AddCommand(linkRequestCmd, linkConfirmCmd)
	accountsCmd.AddCommand(accountsListCmd, accountsGetCmd, linkCmd)
	rootCmd.AddCommand(accountsCmd)
}
