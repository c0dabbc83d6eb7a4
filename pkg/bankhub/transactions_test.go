package bankhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

func TestListTransactions_Filters(t *testing.T) {
	tests := []struct {
		name      string
		opts      ListTransactionsOpts
		wantQuery url.Values
	}{
		{
			name:      "no filters, empty query string",
			opts:      ListTransactionsOpts{},
			wantQuery: url.Values{},
		},
		{
			name: "single day and direction",
			opts: ListTransactionsOpts{
				CompanyID: "c1",
				Direction: TransferIn,
				Date:      "2026-08-01",
			},
			wantQuery: url.Values{
				"company_id":    {"c1"},
				"transfer_type": {"in"},
				"date":          {"2026-08-01"},
			},
		},
		{
			name: "date range with identifiers",
			opts: ListTransactionsOpts{
				PerPage:          50,
				BankAccountID:    "ba1",
				VirtualAccountID: "va1",
				Bank:             BankMSB,
				Since:            "2026-07-01",
				Until:            "2026-07-31",
			},
			wantQuery: url.Values{
				"per_page":           {"50"},
				"bank_account_id":    {"ba1"},
				"virtual_account_id": {"va1"},
				"bank":               {"msb"},
				"since":              {"2026-07-01"},
				"until":              {"2026-07-31"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.Handle(tokenEndpoint, &tokenHandler{})

			var gotQuery url.Values
			mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				fmt.Fprint(w, `{"data":[],"meta":{}}`)
			})

			c, _ := newTestClient(t, mux)

			_, _, err := c.ListTransactions(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("ListTransactions: %v", err)
			}
			if len(gotQuery) != len(tt.wantQuery) {
				t.Fatalf("query = %v, want %v", gotQuery, tt.wantQuery)
			}
			for k, want := range tt.wantQuery {
				if got := gotQuery.Get(k); got != want[0] {
					t.Fatalf("query[%s] = %q, want %q", k, got, want[0])
				}
			}
		})
	}
}

func TestGetTransaction(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(tokenEndpoint, &tokenHandler{})
	mux.HandleFunc("/transactions/tx1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{
			"id":"tx1","company_id":"c1","bank":"ocb","transfer_type":"in",
			"amount":250000,"reference_number":"FT26081001","transaction_content":"thanh toan don 1017",
			"transaction_date":"2026-08-10"
		}}`)
	})

	c, _ := newTestClient(t, mux)

	tx, err := c.GetTransaction(context.Background(), "tx1")
	if err != nil {
		t.Fatalf("GetTransaction: %v", err)
	}
	if tx.Amount != 250000 || tx.Direction != TransferIn || tx.Reference != "FT26081001" {
		t.Fatalf("tx = %+v", tx)
	}
}
