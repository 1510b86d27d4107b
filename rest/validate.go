package rest

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Static parameter whitelists, as documented for the v1 API. Symbols are
// not static: they are refreshed from the live listing, see RefreshSymbols.
var (
	currencies = mapset.NewSet(
		"BTG", "DSH", "ETC", "ETP", "EUR", "GBP", "IOT", "JPY",
		"LTC", "NEO", "OMG", "SAN", "USD", "XMR", "XRP", "ZEC",
	)

	depositMethods = mapset.NewSet(
		"bcash", "bitcoin", "ethereum", "ethereumc", "litecoin",
		"mastercoin", "monero", "tetheruso", "zcash",
	)

	walletNames = mapset.NewSet("trading", "exchange", "deposit")

	orderTypes = mapset.NewSet(
		"market", "limit", "stop", "trailing-stop", "fill-or-kill",
		"exchange market", "exchange limit", "exchange stop",
		"exchange trailing-stop", "exchange fill-or-kill",
	)
)

// checkSymbol validates symbol against the refreshed listing. Before the
// first refresh there is nothing to check against and the server is the
// only authority.
func (c *Client) checkSymbol(symbol string) error {
	c.symbolsMu.RLock()
	defer c.symbolsMu.RUnlock()
	if c.symbols == nil {
		return nil
	}
	if !c.symbols.Contains(symbol) {
		return fmt.Errorf("%w: %q", ErrBadSymbol, symbol)
	}
	return nil
}

func checkCurrency(currency string) error {
	if !currencies.Contains(currency) {
		return fmt.Errorf("%w: %q", ErrBadCurrency, currency)
	}
	return nil
}

func checkDepositMethod(method string) error {
	if !depositMethods.Contains(method) {
		return fmt.Errorf("%w: %q", ErrBadDepositMethod, method)
	}
	return nil
}

func checkWalletName(wallet string) error {
	if !walletNames.Contains(wallet) {
		return fmt.Errorf("%w: %q", ErrBadWalletType, wallet)
	}
	return nil
}

func checkOrderType(orderType string) error {
	if !orderTypes.Contains(orderType) {
		return fmt.Errorf("%w: %q", ErrBadOrderType, orderType)
	}
	return nil
}
