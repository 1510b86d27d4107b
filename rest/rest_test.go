package rest

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	qt "github.com/frankban/quicktest"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mmquant/bfx-go/internal/client"
	"github.com/mmquant/bfx-go/pkg/auth"
	"github.com/mmquant/bfx-go/pkg/jsonset"
	"github.com/mmquant/bfx-go/rest/types"
)

const (
	testAccessKey = "access-key-3d5c"
	testSecretKey = "wYcHVsRfm5zWbcWGvNDcTbXqU3hNnRmW"
)

// testEpoch is the frozen wall clock of every test client, so nonces and
// timestamps are deterministic.
var testEpoch = time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.Handler, opts ...func(*client.Config)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mock := clock.NewMock()
	mock.Set(testEpoch)

	creds, err := auth.NewCredentials(testAccessKey, testSecretKey)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &client.Config{
		Host:        srv.URL,
		Clock:       mock,
		Logger:      zerolog.Nop(),
		HTTPClient:  srv.Client(),
		Credentials: &creds,
		Nonces:      auth.NewNonceSource(mock),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return NewClient(client.New(cfg))
}

// signedCapture records the parts of a signed request the server would
// verify: the endpoint path, the raw body, and the three auth headers.
type signedCapture struct {
	path       string
	body       string
	apiKey     string
	payloadB64 string
	signature  string
	payload    map[string]any
}

func captureSigned(c *qt.C, dst *signedCapture, response string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		c.Assert(err, qt.IsNil)

		dst.path = r.URL.Path
		dst.body = string(body)
		dst.apiKey = r.Header.Get(auth.HeaderAPIKey)
		dst.payloadB64 = r.Header.Get(auth.HeaderPayload)
		dst.signature = r.Header.Get(auth.HeaderSignature)

		raw, err := base64.StdEncoding.DecodeString(dst.payloadB64)
		c.Assert(err, qt.IsNil, qt.Commentf("payload header must be valid base64"))
		dst.payload = map[string]any{}
		c.Assert(jsoniter.Unmarshal(raw, &dst.payload), qt.IsNil)

		_, _ = w.Write([]byte(response))
	})
}

func TestBalancesSignsRequest(t *testing.T) {
	c := qt.New(t)

	var got signedCapture
	rc := newTestClient(t, captureSigned(c, &got,
		`[{"type":"exchange","currency":"usd","amount":"101.5","available":"99.25"}]`,
	))

	balances, err := rc.Balances(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(balances, qt.HasLen, 1)
	c.Assert(balances[0].Type, qt.Equals, "exchange")
	c.Assert(balances[0].Amount.Equal(decimal.RequireFromString("101.5")), qt.IsTrue)

	c.Assert(got.path, qt.Equals, "/balances/")
	c.Assert(got.body, qt.Equals, "\n", qt.Commentf("the real payload travels in the header, not the body"))
	c.Assert(got.apiKey, qt.Equals, testAccessKey)
	c.Assert(got.payload["request"], qt.Equals, "/v1/balances")
	c.Assert(got.payload["nonce"], qt.Equals, "1715680800000")
	c.Assert(got.signature, qt.Equals, auth.Sign([]byte(testSecretKey), got.payloadB64))
}

func TestSignedRequestsUseFreshNonces(t *testing.T) {
	c := qt.New(t)

	var nonces []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := base64.StdEncoding.DecodeString(r.Header.Get(auth.HeaderPayload))
		c.Assert(err, qt.IsNil)
		payload := map[string]any{}
		c.Assert(jsoniter.Unmarshal(raw, &payload), qt.IsNil)
		nonces = append(nonces, payload["nonce"].(string))
		_, _ = w.Write([]byte(`{"result":"All orders cancelled"}`))
	})
	rc := newTestClient(t, handler)

	_, err := rc.CancelAllOrders(context.Background())
	c.Assert(err, qt.IsNil)
	_, err = rc.CancelAllOrders(context.Background())
	c.Assert(err, qt.IsNil)

	// The wall clock is frozen, so the second nonce comes from the
	// monotonic guard rather than the clock.
	c.Assert(nonces, qt.DeepEquals, []string{"1715680800000", "1715680800001"})
}

func TestNewOrderPayload(t *testing.T) {
	c := qt.New(t)

	var got signedCapture
	rc := newTestClient(t, captureSigned(c, &got,
		`{"id":448364249,"symbol":"btcusd","price":"0.01","side":"buy","type":"exchange limit","is_live":true,"original_amount":"0.01","remaining_amount":"0.01","executed_amount":"0.0"}`,
	))

	status, err := rc.NewOrder(context.Background(), &types.NewOrderRequest{
		Symbol: "btcusd",
		Amount: decimal.RequireFromString("0.01"),
		Price:  decimal.RequireFromString("0.01"),
		Side:   "buy",
		Type:   "exchange limit",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(status.ID, qt.Equals, int64(448364249))
	c.Assert(status.IsLive, qt.IsTrue)

	c.Assert(got.path, qt.Equals, "/order/new/")
	c.Assert(got.payload["request"], qt.Equals, "/v1/order/new")
	c.Assert(got.payload["symbol"], qt.Equals, "btcusd")
	c.Assert(got.payload["amount"], qt.Equals, "0.01")
	c.Assert(got.payload["side"], qt.Equals, "buy")
	c.Assert(got.payload["type"], qt.Equals, "exchange limit")
}

func TestNewOrderRejectsUnknownOrderType(t *testing.T) {
	c := qt.New(t)

	calls := 0
	rc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := rc.NewOrder(context.Background(), &types.NewOrderRequest{
		Symbol: "btcusd",
		Side:   "buy",
		Type:   "guaranteed profit",
	})
	c.Assert(err, qt.ErrorIs, ErrBadOrderType)
	c.Assert(calls, qt.Equals, 0, qt.Commentf("rejected orders must never reach the server"))
}

func TestBalanceHistoryDefaultsUntilToNow(t *testing.T) {
	c := qt.New(t)

	var got signedCapture
	rc := newTestClient(t, captureSigned(c, &got, `[]`))

	_, err := rc.BalanceHistory(context.Background(), "USD", 0, 0, 500, "all")
	c.Assert(err, qt.IsNil)

	c.Assert(got.path, qt.Equals, "/history/")
	c.Assert(got.payload["until"], qt.Equals, "1715680800")
	_, hasWallet := got.payload["wallet"]
	c.Assert(hasWallet, qt.IsFalse, qt.Commentf(`wallet "all" selects every wallet by omission`))
}

func TestSymbolsDeduplicatesListing(t *testing.T) {
	c := qt.New(t)

	rc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.URL.Path, qt.Equals, "/symbols/")
		_, _ = w.Write([]byte(`["btcusd","ethusd","btcusd"]`))
	}))

	symbols, err := rc.Symbols(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(symbols.Cardinality(), qt.Equals, 2)
	c.Assert(symbols.Contains("btcusd"), qt.IsTrue)
	c.Assert(symbols.Contains("ethusd"), qt.IsTrue)
}

func TestSymbolsRejectsNonStringListing(t *testing.T) {
	c := qt.New(t)

	rc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["btcusd", 42]`))
	}))

	_, err := rc.Symbols(context.Background())
	var violation *jsonset.SchemaViolationError
	c.Assert(err, qt.ErrorAs, &violation)
	c.Assert(violation.Keyword, qt.Equals, "items")
}

func TestRefreshSymbolsEnforcesWhitelist(t *testing.T) {
	c := qt.New(t)

	tickerCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/symbols/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["btcusd","ethusd"]`))
	})
	mux.HandleFunc("/pubticker/", func(w http.ResponseWriter, r *http.Request) {
		tickerCalls++
		_, _ = w.Write([]byte(`{"mid":"244.755","bid":"244.75","ask":"244.76","last_price":"244.82","low":"244.2","high":"248.19","volume":"7842.11","timestamp":"1444253422.348"}`))
	})
	rc := newTestClient(t, mux)

	// Before the first refresh there is no whitelist and the server is the
	// only authority.
	_, err := rc.Ticker(context.Background(), "dogeusd")
	c.Assert(err, qt.IsNil)
	c.Assert(tickerCalls, qt.Equals, 1)

	c.Assert(rc.RefreshSymbols(context.Background()), qt.IsNil)

	_, err = rc.Ticker(context.Background(), "dogeusd")
	c.Assert(err, qt.ErrorIs, ErrBadSymbol)
	c.Assert(tickerCalls, qt.Equals, 1, qt.Commentf("whitelisted-out symbols must not reach the server"))

	ticker, err := rc.Ticker(context.Background(), "btcusd")
	c.Assert(err, qt.IsNil)
	c.Assert(ticker.LastPrice.Equal(decimal.RequireFromString("244.82")), qt.IsTrue)
}

func TestTransferValidatesWallets(t *testing.T) {
	c := qt.New(t)

	rc := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.Error("request must not reach the server")
	}))

	one := decimal.NewFromInt(1)
	_, err := rc.Transfer(context.Background(), one, "USD", "exchange", "piggybank")
	c.Assert(err, qt.ErrorIs, ErrBadWalletType)
	_, err = rc.Transfer(context.Background(), one, "DOGE", "exchange", "trading")
	c.Assert(err, qt.ErrorIs, ErrBadCurrency)
}
