package rest

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mmquant/bfx-go/rest/types"
)

// AccountInfo returns the account's fee schedule and details as the server
// sent them; interpreting the nested structure is left to the caller.
func (c *Client) AccountInfo(ctx context.Context) (json.RawMessage, error) {
	return c.rawPost(ctx, "/v1/account_infos")
}

// AccountFees returns the withdrawal fees per currency.
func (c *Client) AccountFees(ctx context.Context) (json.RawMessage, error) {
	return c.rawPost(ctx, "/v1/account_fees")
}

// Summary returns the 30-day trade volume and funding profit summary.
func (c *Client) Summary(ctx context.Context) (json.RawMessage, error) {
	return c.rawPost(ctx, "/v1/summary")
}

// KeyPermissions reports which permission scopes the API key carries.
func (c *Client) KeyPermissions(ctx context.Context) (json.RawMessage, error) {
	return c.rawPost(ctx, "/v1/key_info")
}

// MarginInfo returns the trading wallet margin information.
func (c *Client) MarginInfo(ctx context.Context) (json.RawMessage, error) {
	return c.rawPost(ctx, "/v1/margin_infos")
}

func (c *Client) rawPost(ctx context.Context, requestPath string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.signedPost(ctx, requestPath, &types.Request{}, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Balances returns every wallet balance of the account.
func (c *Client) Balances(ctx context.Context) ([]types.Balance, error) {
	var balances []types.Balance
	if err := c.signedPost(ctx, "/v1/balances", &types.Request{}, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// Transfer moves funds between two wallets of the account.
func (c *Client) Transfer(ctx context.Context, amount decimal.Decimal, currency, walletFrom, walletTo string) ([]types.TransferResult, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	if err := checkWalletName(walletFrom); err != nil {
		return nil, err
	}
	if err := checkWalletName(walletTo); err != nil {
		return nil, err
	}

	body := &types.TransferRequest{
		Amount:     amount,
		Currency:   currency,
		WalletFrom: walletFrom,
		WalletTo:   walletTo,
	}
	var results []types.TransferResult
	if err := c.signedPost(ctx, "/v1/transfer", body, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Deposit requests a deposit address for the given method and wallet. With
// renew set, a new address is generated even when one already exists.
func (c *Client) Deposit(ctx context.Context, method, walletName string, renew bool) (*types.DepositResult, error) {
	if err := checkDepositMethod(method); err != nil {
		return nil, err
	}
	if err := checkWalletName(walletName); err != nil {
		return nil, err
	}

	body := &types.DepositRequest{
		Method:     method,
		WalletName: walletName,
		Renew:      renew,
	}
	result := &types.DepositResult{}
	if err := c.signedPost(ctx, "/v1/deposit/new", body, result); err != nil {
		return nil, err
	}
	return result, nil
}
