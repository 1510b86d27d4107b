package types

import (
	"github.com/shopspring/decimal"
)

// Position is one open margin position.
type Position struct {
	ID        int64           `json:"id"`
	Symbol    string          `json:"symbol"`
	Status    string          `json:"status"`
	Base      decimal.Decimal `json:"base"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
	Swap      decimal.Decimal `json:"swap"`
	PL        decimal.Decimal `json:"pl"`
}

type ClaimPositionRequest struct {
	Request
	PositionID int64           `json:"position_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type ClosePositionRequest struct {
	Request
	PositionID int64 `json:"position_id"`
}
