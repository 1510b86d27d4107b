package types

import (
	"github.com/shopspring/decimal"
)

// Balance is one wallet balance line.
type Balance struct {
	Type      string          `json:"type"` // "trading", "deposit" or "exchange"
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Available decimal.Decimal `json:"available"`
}

// TransferRequest moves funds between wallets of the same account.
type TransferRequest struct {
	Request
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	WalletFrom string          `json:"walletfrom"`
	WalletTo   string          `json:"walletto"`
}

// TransferResult is the status line returned for a wallet transfer.
type TransferResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DepositRequest asks for a deposit address.
type DepositRequest struct {
	Request
	Method     string `json:"method"`
	WalletName string `json:"wallet_name"`
	Renew      bool   `json:"renew"`
}

// DepositResult carries the generated deposit address.
type DepositResult struct {
	Result   string `json:"result"`
	Method   string `json:"method"`
	Currency string `json:"currency"`
	Address  string `json:"address"`
}

// WithdrawResult is the status line returned for a withdrawal.
type WithdrawResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	WithdrawalID int64  `json:"withdrawal_id"`
}
