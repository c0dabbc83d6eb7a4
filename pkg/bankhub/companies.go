package bankhub

import (
	"context"
	"net/http"
)

// CreateCompanyRequest is the payload for registering a merchant.
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	TaxCode string `json:"tax_code,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// UpdateCompanyRequest carries the editable merchant fields; empty fields
// are left unchanged upstream.
type UpdateCompanyRequest struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ListCompaniesOpts are the optional filters of ListCompanies. Zero values
// are omitted from the query string entirely.
type ListCompaniesOpts struct {
	PerPage int
	Page    int
	Query   string
}

// CreateCompany registers a merchant. Returns the created company from the
// {data} envelope.
func (c *Client) CreateCompany(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	var env dataEnvelope[Company]
	err := c.do(ctx, call{
		op:     "companies.create",
		method: http.MethodPost,
		url:    c.url().setPath("/companies").build(),
		body:   req,
		fields: map[string]any{"company_name": req.Name},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// UpdateCompany edits a merchant.
func (c *Client) UpdateCompany(ctx context.Context, companyID string, req UpdateCompanyRequest) (*Company, error) {
	var env dataEnvelope[Company]
	err := c.do(ctx, call{
		op:     "companies.update",
		method: http.MethodPut,
		url: c.url().
			setPath("/companies/{id}").
			setPathParam("id", companyID).
			build(),
		body:   req,
		fields: map[string]any{"company_id": companyID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// ListCompanies returns merchants in a paginated {data, meta} envelope.
func (c *Client) ListCompanies(ctx context.Context, opts ListCompaniesOpts) ([]Company, *Meta, error) {
	ub := c.url().setPath("/companies")
	if opts.PerPage > 0 {
		ub = ub.addQueryParam("per_page", opts.PerPage)
	}
	if opts.Page > 0 {
		ub = ub.addQueryParam("page", opts.Page)
	}
	if opts.Query != "" {
		ub = ub.addQueryParam("q", opts.Query)
	}

	var env pagedEnvelope[Company]
	err := c.do(ctx, call{
		op:     "companies.list",
		method: http.MethodGet,
		url:    ub.build(),
	}, &env)
	if err != nil {
		return nil, nil, err
	}
	return env.Data, &env.Meta, nil
}

// GetCompany returns one merchant.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	var env dataEnvelope[Company]
	err := c.do(ctx, call{
		op:     "companies.detail",
		method: http.MethodGet,
		url: c.url().
			setPath("/companies/{id}").
			setPathParam("id", companyID).
			build(),
		fields: map[string]any{"company_id": companyID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CompanyConfigurationGet returns the merchant's notification settings.
func (c *Client) CompanyConfigurationGet(ctx context.Context, companyID string) (*CompanyConfiguration, error) {
	var env dataEnvelope[CompanyConfiguration]
	err := c.do(ctx, call{
		op:     "companies.configuration",
		method: http.MethodGet,
		url: c.url().
			setPath("/companies/{id}/configuration").
			setPathParam("id", companyID).
			build(),
		fields: map[string]any{"company_id": companyID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CompanyConfigurationUpdate replaces the merchant's notification settings.
func (c *Client) CompanyConfigurationUpdate(ctx context.Context, companyID string, cfg CompanyConfiguration) (*CompanyConfiguration, error) {
	var env dataEnvelope[CompanyConfiguration]
	err := c.do(ctx, call{
		op:     "companies.configuration_update",
		method: http.MethodPut,
		url: c.url().
			setPath("/companies/{id}/configuration").
			setPathParam("id", companyID).
			build(),
		body:   cfg,
		fields: map[string]any{"company_id": companyID},
	}, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CompanyCounter returns the merchant-level transaction counters. The
// endpoint returns the counter as a bare JSON object.
func (c *Client) CompanyCounter(ctx context.Context, companyID string) (*TransactionCounter, error) {
	var counter TransactionCounter
	err := c.do(ctx, call{
		op:     "companies.counter",
		method: http.MethodGet,
		url: c.url().
			setPath("/companies/{id}/counter").
			setPathParam("id", companyID).
			build(),
		fields: map[string]any{"company_id": companyID},
	}, &counter)
	if err != nil {
		return nil, err
	}
	return &counter, nil
}
