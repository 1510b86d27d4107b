package client

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"
	"github.com/rs/zerolog"

	"github.com/mmquant/bfx-go/pkg/auth"
)

func newTestClient(host string, creds *auth.Credentials, maxRetries int) *Client {
	realClock := clock.New()
	return New(&Config{
		Host:        host,
		Clock:       realClock,
		Logger:      zerolog.Nop(),
		HTTPClient:  http.DefaultClient,
		Credentials: creds,
		Nonces:      auth.NewNonceSource(realClock),
		MaxRetries:  maxRetries,
	})
}

func TestSignedPostSendsAuthHeaderTriple(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	creds, err := auth.NewCredentials("access-key-3d5c", "wYcHVsRfm5zWbcWGvNDcTbXqU3hNnRmW")
	c.Assert(err, qt.IsNil)

	var gotHeaders *auth.Headers
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = &auth.Headers{
			APIKey:    r.Header.Get(auth.HeaderAPIKey),
			Payload:   r.Header.Get(auth.HeaderPayload),
			Signature: r.Header.Get(auth.HeaderSignature),
		}
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	cl := newTestClient(server.URL, &creds, 0)

	body := map[string]string{"request": "/v1/balances", "nonce": cl.Nonces().Next()}
	var resp struct {
		Result string `json:"result"`
	}
	err = cl.SignedPost(context.Background(), "/balances/", body, &resp)
	c.Assert(err, qt.IsNil)
	c.Assert(resp.Result, qt.Equals, "ok")

	// The real payload travels in the headers; the POST body is a bare newline.
	c.Assert(string(gotBody), qt.Equals, "\n")

	c.Assert(gotHeaders.APIKey, qt.Equals, "access-key-3d5c")
	decoded, err := base64.StdEncoding.DecodeString(gotHeaders.Payload)
	c.Assert(err, qt.IsNil, qt.Commentf("payload header is not valid base64"))

	var sent map[string]string
	c.Assert(json.Unmarshal(decoded, &sent), qt.IsNil)
	c.Assert(sent, qt.DeepEquals, body)

	c.Assert(gotHeaders.Signature, qt.Equals, auth.Sign(creds.SecretKey, gotHeaders.Payload), qt.Commentf("signature must cover the encoded payload"))
}

func TestSignedPostWithoutCredentials(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient("http://localhost:0", nil, 0)
	err := cl.SignedPost(context.Background(), "/balances/", map[string]string{}, nil)
	c.Assert(err, qt.ErrorIs, ErrNoCredentials)
}

func TestReplaceCredentials(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	cl := newTestClient("http://localhost:0", nil, 0)
	c.Assert(cl.ReplaceCredentials("new-access", "new-secret"), qt.IsNil)

	creds, err := cl.credentials()
	c.Assert(err, qt.IsNil)
	c.Assert(creds.AccessKey, qt.Equals, "new-access")

	c.Assert(cl.ReplaceCredentials("", "x"), qt.ErrorIs, auth.ErrMissingAccessKey, qt.Commentf("invalid replacements must not disturb the held keys"))
	creds, err = cl.credentials()
	c.Assert(err, qt.IsNil)
	c.Assert(creds.AccessKey, qt.Equals, "new-access")
}

func TestGetRetriesServerFailures(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`["btcusd"]`))
	}))
	defer server.Close()

	cl := newTestClient(server.URL, nil, 2)
	body, err := cl.GetRaw(context.Background(), "/symbols/", nil)
	c.Assert(err, qt.IsNil)
	c.Assert(string(body), qt.Equals, `["btcusd"]`)
	c.Assert(calls.Load(), qt.Equals, int64(2))
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()
	c := qt.New(t)

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Unknown symbol"}`))
	}))
	defer server.Close()

	cl := newTestClient(server.URL, nil, 3)
	_, err := cl.GetRaw(context.Background(), "/pubticker/nope", nil)

	var apiErr *APIError
	c.Assert(err, qt.ErrorAs, &apiErr)
	c.Assert(apiErr.Status, qt.Equals, http.StatusBadRequest)
	c.Assert(apiErr.Message, qt.Equals, "Unknown symbol")
	c.Assert(calls.Load(), qt.Equals, int64(1), qt.Commentf("client-side rejections must not be retried"))
}
