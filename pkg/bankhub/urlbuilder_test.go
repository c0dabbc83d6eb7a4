package bankhub

import "testing"

func TestURLBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func() string
		want  string
	}{
		{
			name: "plain path",
			build: func() string {
				return newURLBuilder("https://api.test").setPath("/banks").build()
			},
			want: "https://api.test/banks",
		},
		{
			name: "path params",
			build: func() string {
				return newURLBuilder("https://api.test").
					setPath("/banks/{bank}/accounts/{id}").
					setPathParam("bank", "ocb").
					setPathParam("id", "ba1").
					build()
			},
			want: "https://api.test/banks/ocb/accounts/ba1",
		},
		{
			name: "path param is escaped",
			build: func() string {
				return newURLBuilder("https://api.test").
					setPath("/companies/{id}").
					setPathParam("id", "a/b").
					build()
			},
			want: "https://api.test/companies/a%2Fb",
		},
		{
			name: "no query params means no question mark",
			build: func() string {
				return newURLBuilder("https://api.test").setPath("/transactions").build()
			},
			want: "https://api.test/transactions",
		},
		{
			name: "query params are encoded",
			build: func() string {
				return newURLBuilder("https://api.test").
					setPath("/transactions").
					addQueryParam("q", "don 1017").
					addQueryParam("per_page", 20).
					build()
			},
			want: "https://api.test/transactions?per_page=20&q=don+1017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(); got != tt.want {
				t.Fatalf("build() = %q, want %q", got, tt.want)
			}
		})
	}
}
