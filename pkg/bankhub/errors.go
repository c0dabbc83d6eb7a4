package bankhub

import (
	"errors"
	"fmt"
)

// FailureKind classifies why an operation failed. Callers that only care
// about success can keep treating any non-nil error as "nothing came back";
// callers that need to distinguish a validation error from a network fault
// can switch on the kind instead of parsing logs.
type FailureKind string

const (
	// FailureAuth: the token-issuance call was rejected or could not be made.
	FailureAuth FailureKind = "auth"

	// FailureNoToken: a business operation was attempted while no valid
	// token could be obtained. The business call was never sent.
	FailureNoToken FailureKind = "no_token"

	// FailureUpstream: BankHub answered with a non-success status
	// (validation error, not found, OTP mismatch, ...). Status and Body
	// carry the upstream response unmodified.
	FailureUpstream FailureKind = "upstream"

	// FailureTransport: the request never completed (connection, timeout,
	// cancelled context).
	FailureTransport FailureKind = "transport"

	// FailureDecode: BankHub answered 2xx but the body did not match the
	// operation's declared shape.
	FailureDecode FailureKind = "decode"
)

// APIError is the failure value every operation returns. No operation ever
// panics; every failure path ends in one of these (possibly wrapping a
// transport error).
type APIError struct {
	// Op names the failing operation, e.g. "bank_accounts.link_confirm".
	Op string

	Kind FailureKind

	// Status and Body are set for upstream failures.
	Status int
	Body   string

	// MessageID is the per-call correlation ID that was sent with the
	// failing request, if one was sent at all.
	MessageID string

	// Err is the underlying cause for transport/decode failures.
	Err error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case FailureUpstream:
		return fmt.Sprintf("bankhub: %s: upstream status %d: %s", e.Op, e.Status, e.Body)
	case FailureNoToken:
		return fmt.Sprintf("bankhub: %s: no access token available", e.Op)
	default:
		if e.Err != nil {
			return fmt.Sprintf("bankhub: %s: %s: %v", e.Op, e.Kind, e.Err)
		}
		return fmt.Sprintf("bankhub: %s: %s", e.Op, e.Kind)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError if there is one in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
