package bankhub

import (
	"context"
	"net/http"
)

// ListTransactionsOpts are the optional filters of ListTransactions. Zero
// values are omitted from the query string entirely. Date takes precedence
// upstream over the Since/Until range when both are sent; the client passes
// filters through without reconciling them.
type ListTransactionsOpts struct {
	PerPage          int
	Page             int
	Query            string
	CompanyID        string
	BankAccountID    string
	VirtualAccountID string
	Bank             Bank
	Direction        TransferDirection

	// Date filters to a single day (YYYY-MM-DD).
	Date string
	// Since and Until bound a date range (YYYY-MM-DD, inclusive).
	Since string
	Until string
}

// ListTransactions returns statement entries in a paginated {data, meta}
// envelope.
func (c *Client) ListTransactions(ctx context.Context, opts ListTransactionsOpts) ([]Transaction, *Meta, error) {
	ub := c.url().setPath("/transactions")
	if opts.PerPage > 0 {
		ub = ub.addQueryParam("per_page", opts.PerPage)
	}
	if opts.Page > 0 {
		ub = ub.addQueryParam("page", opts.Page)
	}
	if opts.Query != "" {
		ub = ub.addQueryParam("q", opts.Query)
	}
	if opts.CompanyID != "" {
		ub = ub.addQueryParam("company_id", opts.CompanyID)
	}
	if opts.BankAccountID != "" {
		ub = ub.addQueryParam("bank_account_id", opts.BankAccountID)
	}
	if opts.VirtualAccountID != "" {
		ub = ub.addQueryParam("virtual_account_id", opts.VirtualAccountID)
	}
	if opts.Bank != "" {
		ub = ub.addQueryParam("bank", string(opts.Bank))
	}
	if opts.Direction != "" {
		ub = ub.addQueryParam("transfer_type", string(opts.Direction))
	}
	if opts.Date != "" {
		ub = ub.addQueryParam("date", opts.Date)
	}
	if opts.Since != "" {
		ub = ub.addQueryParam("since", opts.Since)
	}
	if opts.Until != "" {
		ub = ub.addQueryParam("until", opts.Until)
	}

	var env pagedEnvelope[Transaction]
	err := c.do(ctx, call{
		op:     "transactions.list",
		method: http.MethodGet,
		url:    ub.build(),
		fields: map[string]any{"company_id": opts.CompanyID},
	}, &env)
	if err != nil {
		return nil, nil, err
	}
	return env.Data, &env.Meta, nil
}

// GetTransaction returns one statement entry.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	var env dataEnvelope[Transaction]
	err := c.do(ctx, call{
		op:     "transactions.detail",
		method: http.MethodGet,
		url: c.url().
			setPath("/transactions/{id}").
			setPathParam("id", transactionID).
			build(),
		fields: map[string]any{"transaction_id": transactionID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
