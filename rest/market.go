package rest

import (
	"context"
	"net/url"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/mmquant/bfx-go/pkg/jsonset"
	"github.com/mmquant/bfx-go/rest/types"
)

// Ticker returns the low-level ticker for symbol.
func (c *Client) Ticker(ctx context.Context, symbol string) (*types.Ticker, error) {
	if err := c.checkSymbol(symbol); err != nil {
		return nil, err
	}
	ticker := &types.Ticker{}
	if err := c.client.Get(ctx, "/pubticker/"+url.PathEscape(symbol), nil, ticker); err != nil {
		return nil, err
	}
	return ticker, nil
}

// Stats returns the volume stats for symbol.
func (c *Client) Stats(ctx context.Context, symbol string) ([]types.Stat, error) {
	if err := c.checkSymbol(symbol); err != nil {
		return nil, err
	}
	var stats []types.Stat
	if err := c.client.Get(ctx, "/stats/"+url.PathEscape(symbol), nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// FundingBook returns the margin funding book for currency.
func (c *Client) FundingBook(ctx context.Context, currency string, limitBids, limitAsks int) (*types.FundingBook, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	query := url.Values{
		"limit_bids": {strconv.Itoa(limitBids)},
		"limit_asks": {strconv.Itoa(limitAsks)},
	}
	book := &types.FundingBook{}
	if err := c.client.Get(ctx, "/lendbook/"+url.PathEscape(currency), query, book); err != nil {
		return nil, err
	}
	return book, nil
}

// OrderBook returns the order book for symbol. With group set, orders at
// the same price level are merged.
func (c *Client) OrderBook(ctx context.Context, symbol string, limitBids, limitAsks int, group bool) (*types.OrderBook, error) {
	if err := c.checkSymbol(symbol); err != nil {
		return nil, err
	}
	grouped := "0"
	if group {
		grouped = "1"
	}
	query := url.Values{
		"limit_bids": {strconv.Itoa(limitBids)},
		"limit_asks": {strconv.Itoa(limitAsks)},
		"group":      {grouped},
	}
	book := &types.OrderBook{}
	if err := c.client.Get(ctx, "/book/"+url.PathEscape(symbol), query, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Trades returns the most recent public trades for symbol since the given
// Unix timestamp.
func (c *Client) Trades(ctx context.Context, symbol string, since int64, limitTrades int) ([]types.Trade, error) {
	if err := c.checkSymbol(symbol); err != nil {
		return nil, err
	}
	query := url.Values{
		"timestamp":    {strconv.FormatInt(since, 10)},
		"limit_trades": {strconv.Itoa(limitTrades)},
	}
	var trades []types.Trade
	if err := c.client.Get(ctx, "/trades/"+url.PathEscape(symbol), query, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// Lends returns the total margin funding lent for currency since the given
// Unix timestamp.
func (c *Client) Lends(ctx context.Context, currency string, since int64, limitLends int) ([]types.Lend, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	query := url.Values{
		"timestamp":   {strconv.FormatInt(since, 10)},
		"limit_lends": {strconv.Itoa(limitLends)},
	}
	var lends []types.Lend
	if err := c.client.Get(ctx, "/lends/"+url.PathEscape(currency), query, &lends); err != nil {
		return nil, err
	}
	return lends, nil
}

// Symbols returns the set of trading symbols currently listed on the
// exchange. The response is decoded through the schema-validating set
// decoder: anything but a flat array of strings is rejected.
func (c *Client) Symbols(ctx context.Context) (mapset.Set[string], error) {
	raw, err := c.client.GetRaw(ctx, "/symbols/", nil)
	if err != nil {
		return nil, err
	}
	return jsonset.Decode(string(raw))
}

// SymbolDetails returns the detailed listing of every trading pair.
func (c *Client) SymbolDetails(ctx context.Context) ([]types.SymbolDetail, error) {
	var details []types.SymbolDetail
	if err := c.client.Get(ctx, "/symbols_details/", nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// RefreshSymbols fetches the live symbol listing and uses it as the
// whitelist for subsequent symbol validation. Until the first successful
// refresh, symbol parameters are passed through unchecked.
func (c *Client) RefreshSymbols(ctx context.Context) error {
	symbols, err := c.Symbols(ctx)
	if err != nil {
		return err
	}
	c.symbolsMu.Lock()
	c.symbols = symbols
	c.symbolsMu.Unlock()
	return nil
}
