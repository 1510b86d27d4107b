package rest

import (
	"context"
	"strconv"

	"github.com/mmquant/bfx-go/rest/types"
)

// walletAll selects all wallets in the history endpoints.
const walletAll = "all"

// BalanceHistory returns the ledger movements for currency between the
// since and until Unix timestamps. An until of zero means now; wallet may
// be a wallet name or "all".
func (c *Client) BalanceHistory(ctx context.Context, currency string, since, until int64, limit int, wallet string) ([]types.BalanceHistoryEntry, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	if wallet != walletAll {
		if err := checkWalletName(wallet); err != nil {
			return nil, err
		}
	}
	if until == 0 {
		until = c.nowSeconds()
	}

	body := &types.BalanceHistoryRequest{
		Currency: currency,
		Since:    strconv.FormatInt(since, 10),
		Until:    strconv.FormatInt(until, 10),
		Limit:    limit,
	}
	if wallet != walletAll {
		body.Wallet = wallet
	}
	var entries []types.BalanceHistoryEntry
	if err := c.signedPost(ctx, "/v1/history", body, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WithdrawalHistory returns past deposits and withdrawals for currency.
// method may be a deposit method, "wire", or "all"; an until of zero means
// now.
func (c *Client) WithdrawalHistory(ctx context.Context, currency, method string, since, until int64, limit int) ([]types.Movement, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	if method != "all" && method != "wire" {
		if err := checkDepositMethod(method); err != nil {
			return nil, err
		}
	}
	if until == 0 {
		until = c.nowSeconds()
	}

	body := &types.WithdrawalHistoryRequest{
		Currency: currency,
		Since:    strconv.FormatInt(since, 10),
		Until:    strconv.FormatInt(until, 10),
		Limit:    limit,
	}
	if method != "all" {
		body.Method = method
	}
	var movements []types.Movement
	if err := c.signedPost(ctx, "/v1/history/movements", body, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}

// PastTrades returns the account's own trades on symbol since the given
// Unix timestamp. An until of zero means now.
func (c *Client) PastTrades(ctx context.Context, symbol string, since, until int64, limitTrades int, reverse bool) ([]types.PrivateTrade, error) {
	if err := c.checkSymbol(symbol); err != nil {
		return nil, err
	}
	if until == 0 {
		until = c.nowSeconds()
	}

	body := &types.PastTradesRequest{
		Symbol:      symbol,
		Timestamp:   strconv.FormatInt(since, 10),
		Until:       strconv.FormatInt(until, 10),
		LimitTrades: limitTrades,
		Reverse:     reverse,
	}
	var trades []types.PrivateTrade
	if err := c.signedPost(ctx, "/v1/mytrades", body, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}
