package bankhub

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
)

func TestDo_NoTokenShortCircuit(t *testing.T) {
	th := &tokenHandler{code: http.StatusInternalServerError, body: `{"error":"boom"}`}
	mux := http.NewServeMux()
	mux.Handle(tokenEndpoint, th)

	var businessCalls int
	mux.HandleFunc("/companies", func(w http.ResponseWriter, r *http.Request) {
		businessCalls++
		fmt.Fprint(w, `{"data":[]}`)
	})

	c, logs := newTestClient(t, mux)

	companies, _, err := c.ListCompanies(context.Background(), ListCompaniesOpts{})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Kind != FailureNoToken {
		t.Fatalf("expected no_token failure, got %v", err)
	}
	if companies != nil {
		t.Fatalf("expected nil result, got %v", companies)
	}
	if businessCalls != 0 {
		t.Fatalf("business calls = %d, want 0 without a token", businessCalls)
	}
	if !strings.Contains(logs.String(), "companies.list") {
		t.Fatal("expected aborted operation name in logs")
	}
}

func TestDo_UniformFailureMapping(t *testing.T) {
	t.Run("upstream non-success", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.Handle(tokenEndpoint, &tokenHandler{})
		mux.HandleFunc("/companies/c1", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"company not found"}`)
		})

		c, logs := newTestClient(t, mux)

		company, err := c.GetCompany(context.Background(), "c1")
		if company != nil {
			t.Fatalf("expected nil company, got %v", company)
		}
		apiErr, ok := AsAPIError(err)
		if !ok || apiErr.Kind != FailureUpstream {
			t.Fatalf("expected upstream failure, got %v", err)
		}
		if apiErr.Status != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", apiErr.Status)
		}
		for _, want := range []string{"companies.detail", "company not found", `"company_id":"c1"`} {
			if !strings.Contains(logs.String(), want) {
				t.Fatalf("log output missing %q:\n%s", want, logs.String())
			}
		}
	})

	t.Run("transport fault", func(t *testing.T) {
		c, logs := newTestClient(t, http.NewServeMux())
		seedToken(t, c)
		c.cfg.BaseURL = "http://127.0.0.1:1"

		company, err := c.GetCompany(context.Background(), "c1")
		if company != nil {
			t.Fatalf("expected nil company, got %v", company)
		}
		apiErr, ok := AsAPIError(err)
		if !ok || apiErr.Kind != FailureTransport {
			t.Fatalf("expected transport failure, got %v", err)
		}
		if !strings.Contains(logs.String(), `"company_id":"c1"`) {
			t.Fatalf("log output missing business identifier:\n%s", logs.String())
		}
	})
}

func TestDo_DecodeFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(tokenEndpoint, &tokenHandler{})
	mux.HandleFunc("/companies/c1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json at all`)
	})

	c, _ := newTestClient(t, mux)

	_, err := c.GetCompany(context.Background(), "c1")
	apiErr, ok := AsAPIError(err)
	if !ok || apiErr.Kind != FailureDecode {
		t.Fatalf("expected decode failure, got %v", err)
	}
}

func TestDo_PerCallMessageID(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(tokenEndpoint, &tokenHandler{})

	var mu sync.Mutex
	var messageIDs []string
	mux.HandleFunc("/banks", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		messageIDs = append(messageIDs, r.Header.Get(messageIDHeader))
		mu.Unlock()
		fmt.Fprint(w, `[]`)
	})

	c, _ := newTestClient(t, mux)

	for i := 0; i < 3; i++ {
		if _, err := c.ListBanks(context.Background()); err != nil {
			t.Fatalf("ListBanks: %v", err)
		}
	}

	seen := make(map[string]struct{})
	for _, id := range messageIDs {
		if id == "" {
			t.Fatal("missing per-call message ID header")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("message ID %q reused across calls", id)
		}
		seen[id] = struct{}{}
	}
}

func TestDo_RetryOnUnauthorized(t *testing.T) {
	newMux := func() (*http.ServeMux, *tokenHandler, *int) {
		th := &tokenHandler{}
		mux := http.NewServeMux()
		mux.Handle(tokenEndpoint, th)

		calls := 0
		mux.HandleFunc("/companies/c1", func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"error":"token expired"}`)
				return
			}
			fmt.Fprint(w, `{"data":{"id":"c1","name":"ACME"}}`)
		})
		return mux, th, &calls
	}

	t.Run("disabled by default", func(t *testing.T) {
		mux, _, calls := newMux()
		c, _ := newTestClient(t, mux)

		_, err := c.GetCompany(context.Background(), "c1")
		apiErr, ok := AsAPIError(err)
		if !ok || apiErr.Status != http.StatusUnauthorized {
			t.Fatalf("expected 401 upstream failure, got %v", err)
		}
		if *calls != 1 {
			t.Fatalf("business calls = %d, want 1 (no replay)", *calls)
		}
	})

	t.Run("enabled replays once with a fresh token", func(t *testing.T) {
		mux, th, calls := newMux()
		c, _ := newTestClient(t, mux, WithRetryOnUnauthorized(true))

		company, err := c.GetCompany(context.Background(), "c1")
		if err != nil {
			t.Fatalf("GetCompany: %v", err)
		}
		if company.Name != "ACME" {
			t.Fatalf("company = %+v", company)
		}
		if *calls != 2 {
			t.Fatalf("business calls = %d, want 2", *calls)
		}
		if th.count() != 2 {
			t.Fatalf("issuance calls = %d, want 2 (initial + forced re-issue)", th.count())
		}
	})

	t.Run("replays at most once", func(t *testing.T) {
		th := &tokenHandler{}
		mux := http.NewServeMux()
		mux.Handle(tokenEndpoint, th)

		calls := 0
		mux.HandleFunc("/companies/c1", func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"still expired"}`)
		})

		c, _ := newTestClient(t, mux, WithRetryOnUnauthorized(true))

		_, err := c.GetCompany(context.Background(), "c1")
		apiErr, ok := AsAPIError(err)
		if !ok || apiErr.Status != http.StatusUnauthorized {
			t.Fatalf("expected 401 upstream failure, got %v", err)
		}
		if calls != 2 {
			t.Fatalf("business calls = %d, want 2 (one replay only)", calls)
		}
	})
}
