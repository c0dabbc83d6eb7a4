package bankhub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

const (
	// messageIDHeader carries a freshly generated correlation ID, unique
	// per HTTP call.
	messageIDHeader = "Client-Message-Id"

	// requestIDHeader carries the request ID of an OTP flow: the value a
	// "request" call returned, echoed back by its paired "confirm" call.
	requestIDHeader = "Request-Id"
)

// call describes one business request going through the pipeline.
type call struct {
	// op names the operation for logs and errors, e.g. "companies.list".
	op     string
	method string
	url    string

	// requestID, when set, is sent as the Request-Id header (OTP confirms).
	requestID string

	// body is JSON-marshalled when non-nil.
	body any

	// fields are caller-supplied business identifiers attached to every
	// failure log for this call.
	fields map[string]any
}

// do runs the authenticated request pipeline: token precondition, request
// build, execution, status mapping and envelope decoding. result may be nil
// for operations without a response body of interest.
func (c *Client) do(ctx context.Context, cl call, result any) error {
	token, err := c.AccessToken(ctx)
	if err != nil {
		c.failureLog(cl).Err(err).Msg("operation aborted: no access token")
		return &APIError{Op: cl.op, Kind: FailureNoToken, Err: err}
	}

	err = c.roundTrip(ctx, cl, token, result)
	if err == nil || !c.retryOnUnauthorized {
		return err
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}

	// the cached token was rejected despite the expiry buffer; evict it and
	// replay the call once with a freshly issued token
	if cerr := c.ClearTokenCache(ctx); cerr != nil {
		c.logger.Warn().Err(cerr).Msg("evicting rejected access token failed")
	}
	token, terr := c.issueToken(ctx)
	if terr != nil {
		return err
	}
	return c.roundTrip(ctx, cl, token, result)
}

func (c *Client) roundTrip(ctx context.Context, cl call, token string, result any) error {
	var bodyReader io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			c.failureLog(cl).Err(err).Msg("marshalling request body")
			return &APIError{Op: cl.op, Kind: FailureTransport, Err: err}
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, cl.url, bodyReader)
	if err != nil {
		c.failureLog(cl).Err(err).Msg("creating request")
		return &APIError{Op: cl.op, Kind: FailureTransport, Err: err}
	}

	messageID := xid.New().String()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(messageIDHeader, messageID)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.requestID != "" {
		req.Header.Set(requestIDHeader, cl.requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.failureLog(cl).Err(err).
			Str("message_id", messageID).
			Msg("request failed")
		return &APIError{Op: cl.op, Kind: FailureTransport, MessageID: messageID, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.failureLog(cl).
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Str("message_id", messageID).
			Msg("upstream rejected request")
		return &APIError{
			Op:        cl.op,
			Kind:      FailureUpstream,
			Status:    resp.StatusCode,
			Body:      string(respBody),
			MessageID: messageID,
		}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			c.failureLog(cl).Err(err).
				Str("message_id", messageID).
				Msg("decoding response")
			return &APIError{Op: cl.op, Kind: FailureDecode, MessageID: messageID, Err: err}
		}
	}
	return nil
}

// failureLog starts an error event carrying the operation name, the
// request ID of an OTP flow if any, and every business identifier the
// caller supplied.
func (c *Client) failureLog(cl call) *zerolog.Event {
	ev := c.logger.Error().Str("op", cl.op)
	if cl.requestID != "" {
		ev = ev.Str("request_id", cl.requestID)
	}
	for k, v := range cl.fields {
		ev = ev.Interface(k, v)
	}
	return ev
}
