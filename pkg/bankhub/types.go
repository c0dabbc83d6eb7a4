package bankhub

import "fmt"

// Bank identifies one of the partner banks the linking and VA protocols are
// implemented for. The set is fixed by the upstream platform.
type Bank string

const (
	BankOCB      Bank = "ocb"
	BankMSB      Bank = "msb"
	BankKienLong Bank = "klb"
	BankBVBank   Bank = "bvbank"
)

var supportedBanks = map[Bank]struct{}{
	BankOCB:      {},
	BankMSB:      {},
	BankKienLong: {},
	BankBVBank:   {},
}

// validateBank rejects unsupported brands before any HTTP traffic happens.
// This is a caller error, not a pipeline failure, so it stays a plain error.
func validateBank(op string, bank Bank) error {
	if _, ok := supportedBanks[bank]; !ok {
		return fmt.Errorf("bankhub: %s: unsupported bank %q", op, bank)
	}
	return nil
}

// TransferDirection filters transactions by money direction.
type TransferDirection string

const (
	TransferIn  TransferDirection = "in"
	TransferOut TransferDirection = "out"
)

// Meta is the pagination block of paginated envelopes.
type Meta struct {
	PerPage     int  `json:"per_page"`
	Total       int  `json:"total"`
	HasMore     bool `json:"has_more"`
	CurrentPage int  `json:"current_page"`
	PageCount   int  `json:"page_count"`
}

// The upstream contract is not consistent about envelopes: some endpoints
// return a bare value, some wrap it in {data}, paginated lists add {meta}.
// Each operation decodes the shape its endpoint declares; nothing is
// normalized library-wide so upstream behavior stays visible.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type pagedEnvelope[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// BankInfo is one entry of the bank catalog.
type BankInfo struct {
	ID        int64  `json:"id"`
	Code      string `json:"code"`
	ShortName string `json:"short_name"`
	FullName  string `json:"full_name"`
	BIN       string `json:"bin"`
	Active    bool   `json:"active"`
}

// Company is a merchant registered under the partner account.
type Company struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TaxCode   string `json:"tax_code"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// CompanyConfiguration holds the per-merchant settings BankHub applies to
// incoming transactions.
type CompanyConfiguration struct {
	WebhookURL          string `json:"webhook_url"`
	AccountantEmail     string `json:"accountant_email"`
	TransactionNotify   bool   `json:"transaction_notify"`
	VirtualAccountGroup string `json:"virtual_account_group"`
}

// TransactionCounter is the merchant-level counter endpoint's bare payload.
type TransactionCounter struct {
	TotalIn   int64 `json:"total_in"`
	TotalOut  int64 `json:"total_out"`
	AmountIn  int64 `json:"amount_in"`
	AmountOut int64 `json:"amount_out"`
}

// BankAccount is a linked (or pending) merchant bank account.
type BankAccount struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Bank          Bank   `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	// Status progresses pending -> linked (OTP confirm) or stays pending
	// until force-deleted; unlink moves linked -> unlinked.
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// HolderName is the account-ownership lookup result.
type HolderName struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

// VirtualAccount is a bank-issued sub-account used to attribute incoming
// transfers to a specific payer or purpose.
type VirtualAccount struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	BankAccountID string `json:"bank_account_id"`
	Bank          Bank   `json:"bank"`
	Number        string `json:"va_number"`
	Label         string `json:"label"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

// Transaction is one statement entry.
type Transaction struct {
	ID               string            `json:"id"`
	CompanyID        string            `json:"company_id"`
	BankAccountID    string            `json:"bank_account_id"`
	VirtualAccountID string            `json:"virtual_account_id"`
	Bank             Bank              `json:"bank"`
	Direction        TransferDirection `json:"transfer_type"`
	Amount           int64             `json:"amount"`
	Reference        string            `json:"reference_number"`
	Content          string            `json:"transaction_content"`
	Date             string            `json:"transaction_date"`
}
