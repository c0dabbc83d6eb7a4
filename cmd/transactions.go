package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sepayvn/sepay-bankhub-go/pkg/bankhub"
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "Transaction history",
}

var (
	txPerPage   int
	txPage      int
	txQuery     string
	txCompanyID string
	txAccountID string
	txVAID      string
	txBank      string
	txDirection string
	txDate      string
	txSince     string
	txUntil     string
)

var transactionsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List statement entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		txs, meta, err := cli.ListTransactions(cmd.Context(), bankhub.ListTransactionsOpts{
			PerPage:          txPerPage,
			Page:             txPage,
			Query:            txQuery,
			CompanyID:        txCompanyID,
			BankAccountID:    txAccountID,
			VirtualAccountID: txVAID,
			Bank:             bankhub.Bank(txBank),
			Direction:        bankhub.TransferDirection(txDirection),
			Date:             txDate,
			Since:            txSince,
			Until:            txUntil,
		})
		if err != nil {
			return fmt.Errorf("listing transactions: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Date", "Bank", "Amount", "Reference", "Content"})

		for _, tx := range txs {
			amount := fmt.Sprintf("%d", tx.Amount)
			if tx.Direction == bankhub.TransferIn {
				amount = color.GreenString("+" + amount)
			} else {
				amount = color.RedString("-" + amount)
			}
			t.AppendRow(table.Row{
				tx.ID,
				tx.Date,
				string(tx.Bank),
				amount,
				tx.Reference,
				truncate(tx.Content, 40),
			})
		}

		applyTableFormat(t)
		t.Render()
		fmt.Printf("page %d/%d, %d total\n", meta.CurrentPage, meta.PageCount, meta.Total)
		return nil
	},
}

var transactionsGetCmd = &cobra.Command{
	Use:   "get <transaction-id>",
	Short: "Show one statement entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		tx, err := cli.GetTransaction(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting transaction: %w", err)
		}

		fmt.Printf("%s (%s %s)\n", tx.ID, string(tx.Bank), tx.Date)
		fmt.Printf("  direction: %s\n", tx.Direction)
		fmt.Printf("  amount:    %d\n", tx.Amount)
		fmt.Printf("  reference: %s\n", tx.Reference)
		fmt.Printf("  content:   %s\n", tx.Content)
		fmt.Printf("  company:   %s\n", tx.CompanyID)
		return nil
	},
}

func init() {
	transactionsListCmd.Flags().IntVar(&txPerPage, "per-page", 0, "Page size")
	transactionsListCmd.Flags().IntVar(&txPage, "page", 0, "Page number")
	transactionsListCmd.Flags().StringVarP(&txQuery, "query", "q", "", "Free-text filter")
	transactionsListCmd.Flags().StringVar(&txCompanyID, "company", "", "Filter by company ID")
	transactionsListCmd.Flags().StringVar(&txAccountID, "account", "", "Filter by bank account ID")
	transactionsListCmd.Flags().StringVar(&txVAID, "va", "", "Filter by virtual account ID")
	transactionsListCmd.Flags().StringVar(&txBank, "bank", "", "Filter by bank (ocb, msb, klb, bvbank)")
	transactionsListCmd.Flags().StringVar(&txDirection, "direction", "", "Filter by direction (in, out)")
	transactionsListCmd.Flags().StringVar(&txDate, "date", "", "Single day (YYYY-MM-DD)")
	transactionsListCmd.Flags().StringVar(&txSince, "since", "", "Range start (YYYY-MM-DD)")
	transactionsListCmd.Flags().StringVar(&txUntil, "until", "", "Range end (YYYY-MM-DD)")

	transactionsCmd.AddCommand(transactionsListCmd, transactionsGetCmd)
	rootCmd.AddCommand(transactionsCmd)
}
