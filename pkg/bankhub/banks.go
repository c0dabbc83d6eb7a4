package bankhub

import (
	"context"
	"net/http"
)

// ListBanks returns the catalog of banks available on the platform.
// The endpoint returns a bare JSON array.
func (c *Client) ListBanks(ctx context.Context) ([]BankInfo, error) {
	var banks []BankInfo
	err := c.do(ctx, call{
		op:     "banks.list",
		method: http.MethodGet,
		url:    c.url().setPath("/banks").build(),
	}, &banks)
	if err != nil {
		return nil, err
	}
	return banks, nil
}
