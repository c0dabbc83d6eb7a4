package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sepayvn/sepay-bankhub-go/pkg/bankhub"
)

var companiesCmd = &cobra.Command{
	Use:     "companies",
	Aliases: []string{"company"},
	Short:   "Merchant (company) management",
}

var (
	companiesPerPage int
	companiesPage    int
	companiesQuery   string
)

var companiesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List merchants",
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		companies, meta, err := cli.ListCompanies(cmd.Context(), bankhub.ListCompaniesOpts{
			PerPage: companiesPerPage,
			Page:    companiesPage,
			Query:   companiesQuery,
		})
		if err != nil {
			return fmt.Errorf("listing companies: %w", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Tax Code", "Email", "Status", "Created"})

		for _, c := range companies {
			t.AppendRow(table.Row{
				c.ID,
				color.New(color.Bold).Sprint(truncate(c.Name, 30)),
				c.TaxCode,
				c.Email,
				statusCell(c.Status),
				c.CreatedAt,
			})
		}

		applyTableFormat(t)
		t.Render()
		fmt.Printf("page %d/%d, %d total\n", meta.CurrentPage, meta.PageCount, meta.Total)
		return nil
	},
}

var companiesGetCmd = &cobra.Command{
	Use:   "get <company-id>",
	Short: "Show one merchant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		company, err := cli.GetCompany(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting company: %w", err)
		}

		fmt.Printf("%s (%s)\n", color.New(color.Bold).Sprint(company.Name), company.ID)
		fmt.Printf("  tax code: %s\n", company.TaxCode)
		fmt.Printf("  email:    %s\n", company.Email)
		fmt.Printf("  phone:    %s\n", company.Phone)
		fmt.Printf("  address:  %s\n", company.Address)
		fmt.Printf("  status:   %s\n", statusCell(company.Status))
		return nil
	},
}

var (
	createCompanyName    string
	createCompanyTaxCode string
	createCompanyEmail   string
	createCompanyPhone   string
	createCompanyAddress string
)

var companiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a merchant",
	RunE: func(cmd *cobra.Command, args []string) error {
		if createCompanyName == "" {
			return fmt.Errorf("--name is required")
		}

		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		company, err := cli.CreateCompany(cmd.Context(), bankhub.CreateCompanyRequest{
			Name:    createCompanyName,
			TaxCode: createCompanyTaxCode,
			Email:   createCompanyEmail,
			Phone:   createCompanyPhone,
			Address: createCompanyAddress,
		})
		if err != nil {
			return fmt.Errorf("creating company: %w", err)
		}

		fmt.Printf("%s created company %s (%s)\n", greenCheck, company.Name, company.ID)
		return nil
	},
}

var companiesCounterCmd = &cobra.Command{
	Use:   "counter <company-id>",
	Short: "Show merchant-level transaction counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := f.GetClient()
		if err != nil {
			return err
		}

		counter, err := cli.CompanyCounter(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("getting counter: %w", err)
		}

		fmt.Printf("in:  %d transactions, %d total\n", counter.TotalIn, counter.AmountIn)
		fmt.Printf("out: %d transactions, %d total\n", counter.TotalOut, counter.AmountOut)
		return nil
	},
}

func init() {
	companiesListCmd.Flags().IntVar(&companiesPerPage, "per-page", 0, "Page size")
	companiesListCmd.Flags().IntVar(&companiesPage, "page", 0, "Page number")
	companiesListCmd.Flags().StringVarP(&companiesQuery, "query", "q", "", "Free-text filter")

	companiesCreateCmd.Flags().StringVar(&createCompanyName, "name", "", "Company name")
	companiesCreateCmd.Flags().StringVar(&createCompanyTaxCode, "tax-code", "", "Tax code")
	companiesCreateCmd.Flags().StringVar(&createCompanyEmail, "email", "", "Contact email")
	companiesCreateCmd.Flags().StringVar(&createCompanyPhone, "phone", "", "Contact phone")
	companiesCreateCmd.Flags().StringVar(&createCompanyAddress, "address", "", "Registered address")

	companiesCmd.AddCommand(companiesListCmd, companiesGetCmd, companiesCreateCmd, companiesCounterCmd)
	rootCmd.AddCommand(companiesCmd)
}
