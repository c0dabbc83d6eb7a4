package bankhub

import (
	"context"
	"net/http"
)

// CreateBankAccountRequest registers a merchant bank account with one of
// the supported banks. The account starts in status "pending" and becomes
// "linked" only after the OTP confirm step.
type CreateBankAccountRequest struct {
	CompanyID     string `json:"company_id"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name,omitempty"`
}

// ListBankAccountsOpts are the optional filters of ListBankAccounts. Zero
// values are omitted from the query string entirely.
type ListBankAccountsOpts struct {
	PerPage   int
	Page      int
	Query     string
	CompanyID string
	Bank      Bank
}

// linkRequestResponse is the {data:{request_id}} envelope both OTP
// "request" steps return.
type linkRequestResponse struct {
	RequestID string `json:"request_id"`
}

type otpPayload struct {
	OTP string `json:"otp"`
}

// ListBankAccounts returns bank accounts in a paginated {data, meta}
// envelope.
func (c *Client) ListBankAccounts(ctx context.Context, opts ListBankAccountsOpts) ([]BankAccount, *Meta, error) {
	ub := c.url().setPath("/bank-accounts")
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
	if opts.Bank != "" {
		ub = ub.addQueryParam("bank", string(opts.Bank))
	}

	var env pagedEnvelope[BankAccount]
	err := c.do(ctx, call{
		op:     "bank_accounts.list",
		method: http.MethodGet,
		url:    ub.build(),
		fields: map[string]any{"company_id": opts.CompanyID},
	}, &env)
	if err != nil {
		return nil, nil, err
	}
	return env.Data, &env.Meta, nil
}

// GetBankAccount returns one bank account.
func (c *Client) GetBankAccount(ctx context.Context, accountID string) (*BankAccount, error) {
	var env dataEnvelope[BankAccount]
	err := c.do(ctx, call{
		op:     "bank_accounts.detail",
		method: http.MethodGet,
		url: c.url().
			setPath("/bank-accounts/{id}").
			setPathParam("id", accountID).
			build(),
		fields: map[string]any{"bank_account_id": accountID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CreateBankAccount registers a bank account with the given bank.
func (c *Client) CreateBankAccount(ctx context.Context, bank Bank, req CreateBankAccountRequest) (*BankAccount, error) {
	const op = "bank_accounts.create"
	if err := validateBank(op, bank); err != nil {
		return nil, err
	}

	var env dataEnvelope[BankAccount]
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		url: c.url().
			setPath("/banks/{bank}/accounts").
			setPathParam("bank", string(bank)).
			build(),
		body: req,
		fields: map[string]any{
			"bank":           string(bank),
			"company_id":     req.CompanyID,
			"account_number": req.AccountNumber,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// AccountHolderName looks up the registered holder of an account number at
// the given bank, typically used to confirm ownership before linking.
func (c *Client) AccountHolderName(ctx context.Context, bank Bank, accountNumber string) (*HolderName, error) {
	const op = "bank_accounts.holder_name"
	if err := validateBank(op, bank); err != nil {
		return nil, err
	}

	var env dataEnvelope[HolderName]
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodGet,
		url: c.url().
			setPath("/banks/{bank}/accounts/holder-name").
			setPathParam("bank", string(bank)).
			addQueryParam("account_number", accountNumber).
			build(),
		fields: map[string]any{
			"bank":           string(bank),
			"account_number": accountNumber,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// RequestLinkBankAccount starts the OTP link flow for a pending account.
// The returned request ID must be passed to ConfirmLinkBankAccount together
// with the OTP the bank delivered out-of-band. The client never chains the
// two steps; sequencing is owned by the caller.
func (c *Client) RequestLinkBankAccount(ctx context.Context, bank Bank, accountID string) (string, error) {
	return c.requestOTPStep(ctx, "bank_accounts.link_request", bank, accountID, "link")
}

// ConfirmLinkBankAccount finishes the OTP link flow. requestID is the value
// RequestLinkBankAccount returned; it is sent as the Request-Id header.
func (c *Client) ConfirmLinkBankAccount(ctx context.Context, bank Bank, accountID, requestID, otp string) (*BankAccount, error) {
	return c.confirmOTPStep(ctx, "bank_accounts.link_confirm", bank, accountID, "link", requestID, otp)
}

// RequestUnlinkBankAccount starts the OTP unlink flow for a linked account.
func (c *Client) RequestUnlinkBankAccount(ctx context.Context, bank Bank, accountID string) (string, error) {
	return c.requestOTPStep(ctx, "bank_accounts.unlink_request", bank, accountID, "unlink")
}

// ConfirmUnlinkBankAccount finishes the OTP unlink flow.
func (c *Client) ConfirmUnlinkBankAccount(ctx context.Context, bank Bank, accountID, requestID, otp string) (*BankAccount, error) {
	return c.confirmOTPStep(ctx, "bank_accounts.unlink_confirm", bank, accountID, "unlink", requestID, otp)
}

// ForceDeleteBankAccount removes an account record that was never confirmed
// as linked via the OTP flow. Escape hatch only; linked accounts must go
// through the unlink flow.
func (c *Client) ForceDeleteBankAccount(ctx context.Context, bank Bank, accountID string) error {
	const op = "bank_accounts.force_delete"
	if err := validateBank(op, bank); err != nil {
		return err
	}

	return c.do(ctx, call{
		op:     op,
		method: http.MethodDelete,
		url: c.url().
			setPath("/banks/{bank}/accounts/{id}/force").
			setPathParam("bank", string(bank)).
			setPathParam("id", accountID).
			build(),
		fields: map[string]any{
			"bank":            string(bank),
			"bank_account_id": accountID,
		},
	}, nil)
}

func (c *Client) requestOTPStep(ctx context.Context, op string, bank Bank, accountID, action string) (string, error) {
	if err := validateBank(op, bank); err != nil {
		return "", err
	}

	var env dataEnvelope[linkRequestResponse]
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		url: c.url().
			setPath("/banks/{bank}/accounts/{id}/{action}/request").
			setPathParam("bank", string(bank)).
			setPathParam("id", accountID).
			setPathParam("action", action).
			build(),
		fields: map[string]any{
			"bank":            string(bank),
			"bank_account_id": accountID,
		},
	}, &env)
	if err != nil {
		return "", err
	}
	return env.Data.RequestID, nil
}

func (c *Client) confirmOTPStep(ctx context.Context, op string, bank Bank, accountID, action, requestID, otp string) (*BankAccount, error) {
	if err := validateBank(op, bank); err != nil {
		return nil, err
	}

	var env dataEnvelope[BankAccount]
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		url: c.url().
			setPath("/banks/{bank}/accounts/{id}/{action}/confirm").
			setPathParam("bank", string(bank)).
			setPathParam("id", accountID).
			setPathParam("action", action).
			build(),
		requestID: requestID,
		body:      otpPayload{OTP: otp},
		fields: map[string]any{
			"bank":            string(bank),
			"bank_account_id": accountID,
		},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
