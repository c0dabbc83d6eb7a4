package bankhub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/xid"
)

const (
	tokenEndpoint = "/oauth/token"

	// tokenCacheKey is the single process-wide key for the cached token,
	// namespaced so it stays unique inside a host-provided store.
	tokenCacheKey = "bankhub:access_token"

	// tokenTTLBuffer is subtracted from the upstream TTL before caching, so
	// the cached copy is evicted before the token actually expires. A fresh
	// cache hit therefore never carries a token the server would reject as
	// expired.
	tokenTTLBuffer = 60 * time.Second
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TTL         int64  `json:"ttl"`
}

// AccessToken returns a bearer token for the configured credentials. A
// cached token is returned as-is: the cache TTL is the source of truth for
// validity. On a miss the client authenticates with HTTP Basic against the
// token endpoint and caches the result with lifetime max(0, ttl-60s).
//
// Concurrent callers racing on a miss may each authenticate and each store
// their token; last write wins. Tokens are idempotent credentials, so this
// is a bounded inefficiency rather than a correctness problem.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	token, ok, err := c.cache.Get(ctx, tokenCacheKey)
	if err != nil {
		// a broken cache degrades to re-authentication, not to failure
		c.logger.Warn().Err(err).Msg("token cache lookup failed, re-authenticating")
	}
	if ok {
		return token, nil
	}
	return c.issueToken(ctx)
}

// ClearTokenCache evicts the cached access token unconditionally. Callers
// can use it when they suspect the token went stale, e.g. after a 401 from
// a business call.
func (c *Client) ClearTokenCache(ctx context.Context) error {
	return c.cache.Invalidate(ctx, tokenCacheKey)
}

func (c *Client) issueToken(ctx context.Context) (string, error) {
	body := strings.NewReader(`{"grant_type":"client_credentials"}`)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+tokenEndpoint, body)
	if err != nil {
		return "", &APIError{Op: "token.issue", Kind: FailureAuth, Err: err}
	}
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)
	req.Header.Set("Content-Type", "application/json")
	messageID := xid.New().String()
	req.Header.Set(messageIDHeader, messageID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("message_id", messageID).
			Msg("access token request failed")
		return "", &APIError{Op: "token.issue", Kind: FailureAuth, MessageID: messageID, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Str("message_id", messageID).
			Msg("access token request rejected")
		return "", &APIError{
			Op:        "token.issue",
			Kind:      FailureAuth,
			Status:    resp.StatusCode,
			Body:      string(respBody),
			MessageID: messageID,
		}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		c.logger.Error().Err(err).
			Str("message_id", messageID).
			Msg("decoding access token response")
		return "", &APIError{Op: "token.issue", Kind: FailureAuth, MessageID: messageID, Err: err}
	}

	lifetime := time.Duration(tr.TTL)*time.Second - tokenTTLBuffer
	if lifetime < 0 {
		lifetime = 0
	}
	if err := c.cache.Set(ctx, tokenCacheKey, tr.AccessToken, lifetime); err != nil {
		// the token is still usable for this call even if caching failed
		c.logger.Warn().Err(err).Msg("storing access token in cache failed")
	}
	return tr.AccessToken, nil
}
