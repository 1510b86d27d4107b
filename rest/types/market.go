package types

import (
	"github.com/shopspring/decimal"
)

// Ticker is the low-level ticker for one symbol.
type Ticker struct {
	Mid       decimal.Decimal `json:"mid"`
	Bid       decimal.Decimal `json:"bid"`
	Ask       decimal.Decimal `json:"ask"`
	LastPrice decimal.Decimal `json:"last_price"`
	Low       decimal.Decimal `json:"low"`
	High      decimal.Decimal `json:"high"`
	Volume    decimal.Decimal `json:"volume"`
	Timestamp string          `json:"timestamp"`
}

// Stat is one entry of the volume stats for a symbol.
type Stat struct {
	Period int             `json:"period"`
	Volume decimal.Decimal `json:"volume"`
}

// BookEntry is one price level of the order book.
type BookEntry struct {
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
}

// OrderBook is the full order book for one symbol.
type OrderBook struct {
	Bids []BookEntry `json:"bids"`
	Asks []BookEntry `json:"asks"`
}

// Trade is one public trade.
type Trade struct {
	Timestamp int64           `json:"timestamp"`
	TID       int64           `json:"tid"`
	Price     decimal.Decimal `json:"price"`
	Amount    decimal.Decimal `json:"amount"`
	Exchange  string          `json:"exchange"`
	Type      string          `json:"type"`
}

// Lend is one entry of the total margin funding lent per currency.
type Lend struct {
	Rate       decimal.Decimal `json:"rate"`
	AmountLent decimal.Decimal `json:"amount_lent"`
	AmountUsed decimal.Decimal `json:"amount_used"`
	Timestamp  int64           `json:"timestamp"`
}

// FundingEntry is one margin funding book level.
type FundingEntry struct {
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Period    int             `json:"period"`
	Timestamp string          `json:"timestamp"`
	FRR       string          `json:"frr"`
}

// FundingBook is the margin funding book for one currency.
type FundingBook struct {
	Bids []FundingEntry `json:"bids"`
	Asks []FundingEntry `json:"asks"`
}

// SymbolDetail describes one trading pair.
type SymbolDetail struct {
	Pair             string          `json:"pair"`
	PricePrecision   int             `json:"price_precision"`
	InitialMargin    decimal.Decimal `json:"initial_margin"`
	MinimumMargin    decimal.Decimal `json:"minimum_margin"`
	MaximumOrderSize decimal.Decimal `json:"maximum_order_size"`
	MinimumOrderSize decimal.Decimal `json:"minimum_order_size"`
	Expiration       string          `json:"expiration"`
	Margin           bool            `json:"margin"`
}
