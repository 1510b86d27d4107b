package types

import (
	"github.com/shopspring/decimal"
)

type BalanceHistoryRequest struct {
	Request
	Currency string `json:"currency"`
	Since    string `json:"since"`
	Until    string `json:"until"`
	Limit    int    `json:"limit"`
	Wallet   string `json:"wallet,omitempty"`
}

// BalanceHistoryEntry is one ledger movement.
type BalanceHistoryEntry struct {
	Currency    string          `json:"currency"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"`
	Description string          `json:"description"`
	Timestamp   string          `json:"timestamp"`
}

type WithdrawalHistoryRequest struct {
	Request
	Currency string `json:"currency"`
	Method   string `json:"method,omitempty"`
	Since    string `json:"since"`
	Until    string `json:"until"`
	Limit    int    `json:"limit"`
}

// Movement is one deposit or withdrawal.
type Movement struct {
	ID          int64           `json:"id"`
	Currency    string          `json:"currency"`
	Method      string          `json:"method"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Status      string          `json:"status"`
	Timestamp   string          `json:"timestamp"`
}

type PastTradesRequest struct {
	Request
	Symbol      string `json:"symbol"`
	Timestamp   string `json:"timestamp"`
	Until       string `json:"until"`
	LimitTrades int    `json:"limit_trades"`
	Reverse     bool   `json:"reverse"`
}

// PrivateTrade is one of the account's own trades.
type PrivateTrade struct {
	Price       decimal.Decimal `json:"price"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   string          `json:"timestamp"`
	Exchange    string          `json:"exchange"`
	Type        string          `json:"type"`
	FeeCurrency string          `json:"fee_currency"`
	FeeAmount   decimal.Decimal `json:"fee_amount"`
	TID         int64           `json:"tid"`
	OrderID     int64           `json:"order_id"`
}
