package rest

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmquant/bfx-go/rest/types"
)

// WithdrawParams are the withdraw request fields loaded from the withdraw
// parameter file, keyed by the v1 parameter names.
type WithdrawParams map[string]string

var wireParams = []string{
	"account_number", "bank_name", "bank_address", "bank_city", "bank_country",
}

// LoadWithdrawParams reads a key=value withdraw parameter file and checks
// that the fields required by the chosen withdraw type are present. Keys
// with empty values are treated as absent.
func LoadWithdrawParams(path string) (WithdrawParams, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read withdraw config: %w", err)
	}

	params := WithdrawParams{}
	for _, key := range v.AllKeys() {
		if value := strings.Trim(v.GetString(key), `"`); value != "" {
			params[key] = value
		}
	}

	for _, required := range []string{"withdraw_type", "walletselected", "amount"} {
		if _, ok := params[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingWithdrawParams, required)
		}
	}

	switch withdrawType := params["withdraw_type"]; {
	case withdrawType == "wire":
		for _, required := range wireParams {
			if _, ok := params[required]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrMissingWireParams, required)
			}
		}
	case depositMethods.Contains(withdrawType):
		if _, ok := params["address"]; !ok {
			return nil, ErrMissingAddressParam
		}
	}

	return params, nil
}

// Withdraw requests a withdrawal using the parameters from the configured
// withdraw parameter file.
func (c *Client) Withdraw(ctx context.Context) ([]types.WithdrawResult, error) {
	params, err := LoadWithdrawParams(c.client.WithdrawConfigPath())
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"request": "/v1/withdraw",
		"nonce":   c.client.Nonces().Next(),
	}
	for key, value := range params {
		body[key] = value
	}

	var results []types.WithdrawResult
	if err := c.client.SignedPost(ctx, "/withdraw/", body, &results); err != nil {
		return nil, err
	}
	return results, nil
}
