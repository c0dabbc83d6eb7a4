package bankhub

import (
	"context"
	"net/http"
)

// CreateVirtualAccountRequest provisions a VA on a linked bank account.
type CreateVirtualAccountRequest struct {
	CompanyID     string `json:"company_id"`
	BankAccountID string `json:"bank_account_id"`
	// Label is a free-text tag shown on statements, e.g. an order or
	// customer reference.
	Label string `json:"label,omitempty"`
	// Suggested VA suffix; the bank may assign a different number.
	PreferredSuffix string `json:"preferred_suffix,omitempty"`
}

// ListVirtualAccountsOpts are the optional filters of ListVirtualAccounts.
// Zero values are omitted from the query string entirely.
type ListVirtualAccountsOpts struct {
	PerPage       int
	Page          int
	Query         string
	CompanyID     string
	BankAccountID string
	Bank          Bank
}

// RequestCreateVirtualAccount starts the OTP-gated VA creation flow. Only
// OCB provisions VAs this way; the returned request ID must be passed to
// ConfirmCreateVirtualAccount with the OTP delivered out-of-band.
func (c *Client) RequestCreateVirtualAccount(ctx context.Context, req CreateVirtualAccountRequest) (string, error) {
	var env dataEnvelope[linkRequestResponse]
	err := c.do(ctx, call{
		op:     "virtual_accounts.create_request",
		method: http.MethodPost,
		url: c.url().
			setPath("/banks/{bank}/virtual-accounts/request").
			setPathParam("bank", string(BankOCB)).
			build(),
		body: req,
		fields: map[string]any{
			"company_id":      req.CompanyID,
			"bank_account_id": req.BankAccountID,
		},
	}, &env)
	if err != nil {
		return "", err
	}
	return env.Data.RequestID, nil
}

// ConfirmCreateVirtualAccount finishes the OTP-gated VA creation flow.
func (c *Client) ConfirmCreateVirtualAccount(ctx context.Context, requestID, otp string) (*VirtualAccount, error) {
	var env dataEnvelope[VirtualAccount]
	err := c.do(ctx, call{
		op:     "virtual_accounts.create_confirm",
		method: http.MethodPost,
		url: c.url().
			setPath("/banks/{bank}/virtual-accounts/confirm").
			setPathParam("bank", string(BankOCB)).
			build(),
		requestID: requestID,
		body:      otpPayload{OTP: otp},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CreateVirtualAccount provisions a VA directly, without an OTP step. This
// is the MSB protocol.
func (c *Client) CreateVirtualAccount(ctx context.Context, req CreateVirtualAccountRequest) (*VirtualAccount, error) {
	var env dataEnvelope[VirtualAccount]
	err := c.do(ctx, call{
		op:     "virtual_accounts.create",
		method: http.MethodPost,
		url: c.url().
			setPath("/banks/{bank}/virtual-accounts").
			setPathParam("bank", string(BankMSB)).
			build(),
		body: req,
		fields: map[string]any{
			"company_id":      req.CompanyID,
			"bank_account_id": req.BankAccountID,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// EnableVirtualAccount re-activates a disabled VA.
func (c *Client) EnableVirtualAccount(ctx context.Context, vaID string) (*VirtualAccount, error) {
	return c.setVirtualAccountState(ctx, "virtual_accounts.enable", vaID, "enable")
}

// DisableVirtualAccount stops a VA from accepting transfers without
// deleting it.
func (c *Client) DisableVirtualAccount(ctx context.Context, vaID string) (*VirtualAccount, error) {
	return c.setVirtualAccountState(ctx, "virtual_accounts.disable", vaID, "disable")
}

func (c *Client) setVirtualAccountState(ctx context.Context, op, vaID, action string) (*VirtualAccount, error) {
	var env dataEnvelope[VirtualAccount]
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		url: c.url().
			setPath("/virtual-accounts/{id}/{action}").
			setPathParam("id", vaID).
			setPathParam("action", action).
			build(),
		fields: map[string]any{"virtual_account_id": vaID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ListVirtualAccounts returns VAs in a paginated {data, meta} envelope.
func (c *Client) ListVirtualAccounts(ctx context.Context, opts ListVirtualAccountsOpts) ([]VirtualAccount, *Meta, error) {
	ub := c.url().setPath("/virtual-accounts")
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
	if opts.Bank != "" {
		ub = ub.addQueryParam("bank", string(opts.Bank))
	}

	var env pagedEnvelope[VirtualAccount]
	err := c.do(ctx, call{
		op:     "virtual_accounts.list",
		method: http.MethodGet,
		url:    ub.build(),
		fields: map[string]any{"company_id": opts.CompanyID},
	}, &env)
	if err != nil {
		return nil, nil, err
	}
	return env.Data, &env.Meta, nil
}

// GetVirtualAccount returns one VA.
func (c *Client) GetVirtualAccount(ctx context.Context, vaID string) (*VirtualAccount, error) {
	var env dataEnvelope[VirtualAccount]
	err := c.do(ctx, call{
		op:     "virtual_accounts.detail",
		method: http.MethodGet,
		url: c.url().
			setPath("/virtual-accounts/{id}").
			setPathParam("id", vaID).
			build(),
		fields: map[string]any{"virtual_account_id": vaID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
