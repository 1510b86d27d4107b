package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	backoff "github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/mmquant/bfx-go/pkg/auth"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client is the underlying raw client for communicating with the exchange.
//
// It is injected into the service struct by the main [bitfinex] package.
type Client struct {
	cfg *Config

	credsMu sync.RWMutex
	creds   *auth.Credentials
}

func New(cfg *Config) *Client {
	return &Client{cfg: cfg, creds: cfg.Credentials}
}

// Nonces returns the nonce source shared by every authenticated call made
// through this client.
func (c *Client) Nonces() *auth.NonceSource {
	return c.cfg.Nonces
}

// Clock returns the clock the client was configured with.
func (c *Client) Clock() clock.Clock {
	return c.cfg.Clock
}

// WithdrawConfigPath returns the configured withdraw parameter file path.
func (c *Client) WithdrawConfigPath() string {
	return c.cfg.WithdrawConfigPath
}

// ReplaceCredentials swaps both keys atomically. It is the only way to
// change key material after construction.
func (c *Client) ReplaceCredentials(accessKey, secretKey string) error {
	creds, err := auth.NewCredentials(accessKey, secretKey)
	if err != nil {
		return err
	}
	c.credsMu.Lock()
	c.creds = &creds
	c.credsMu.Unlock()
	return nil
}

func (c *Client) credentials() (auth.Credentials, error) {
	c.credsMu.RLock()
	defer c.credsMu.RUnlock()
	if c.creds == nil {
		return auth.Credentials{}, ErrNoCredentials
	}
	return *c.creds, nil
}

// Get performs a GET request against a public endpoint and decodes the
// JSON response into response.
func (c *Client) Get(ctx context.Context, path string, query url.Values, response any) error {
	body, err := c.GetRaw(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetRaw performs a GET request against a public endpoint and returns the
// raw response body. The public endpoints are read-only, so transient
// transport failures are retried with exponential backoff.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.cfg.Host + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	backoffCfg := backoff.NewExponentialBackOff()
	backoffCfg.InitialInterval = 250 * time.Millisecond
	backoffCfg.MaxInterval = 5 * time.Second

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			sleep := backoffCfg.NextBackOff()
			if sleep == backoff.Stop {
				break
			}
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-c.cfg.Clock.After(sleep):
			}
		}

		body, err := c.getOnce(ctx, target)
		if err == nil {
			return body, nil
		}
		lastErr = err

		// Client-side rejections don't heal on retry.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setCommonHeaders(req)
	return c.do(req)
}

// SignedPost performs a signed POST request to the specified path and
// decodes the JSON response into response. The body must already carry a
// fresh nonce; it is marshalled, encoded and signed into the three
// authentication headers. The request body itself is a bare newline: the
// real payload travels base64-encoded in its header, v1 style.
//
// Signed requests are never retried here: a replay would reuse a spent
// nonce and be rejected by the server.
func (c *Client) SignedPost(ctx context.Context, path string, body any, response any) error {
	creds, err := c.credentials()
	if err != nil {
		return err
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	headers, err := auth.BuildHeaders(creds, auth.BytesPayload(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to build authentication headers: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.cfg.Host+path, strings.NewReader("\n"),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	headers.Apply(req.Header)

	respBody, err := c.do(req)
	if err != nil {
		return err
	}
	if response == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "bfx-go")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	reqID := uuid.NewString()
	start := c.cfg.Clock.Now()

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		c.cfg.Logger.Warn().
			Str("request_id", reqID).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Err(err).
			Msg("request failed")
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.cfg.Logger.Debug().
		Str("request_id", reqID).
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", c.cfg.Clock.Since(start)).
		Msg("request completed")

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}
