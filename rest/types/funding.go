package types

import (
	"github.com/shopspring/decimal"
)

// NewOfferRequest submits a new margin funding offer.
type NewOfferRequest struct {
	Request
	Currency  string          `json:"currency"`
	Amount    decimal.Decimal `json:"amount"`
	Rate      decimal.Decimal `json:"rate"` // rate per 365 days
	Period    int             `json:"period"`
	Direction string          `json:"direction"` // "lend" or "loan"
}

type CancelOfferRequest struct {
	Request
	OfferID int64 `json:"offer_id"`
}

type OfferStatusRequest struct {
	Request
	OfferID int64 `json:"offer_id"`
}

// Offer is the server's view of one funding offer.
type Offer struct {
	ID              int64           `json:"id"`
	Currency        string          `json:"currency"`
	Rate            decimal.Decimal `json:"rate"`
	Period          int             `json:"period"`
	Direction       string          `json:"direction"`
	Timestamp       string          `json:"timestamp"`
	IsLive          bool            `json:"is_live"`
	IsCancelled     bool            `json:"is_cancelled"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	ExecutedAmount  decimal.Decimal `json:"executed_amount"`
}

type OffersHistoryRequest struct {
	Request
	Limit int `json:"limit"`
}

// Credit is one funding credit currently in use.
type Credit struct {
	ID        int64           `json:"id"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	Rate      decimal.Decimal `json:"rate"`
	Period    int             `json:"period"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp string          `json:"timestamp"`
}

// TotalTakenFund is the aggregate swap amount for one position pair.
type TotalTakenFund struct {
	PositionPair string          `json:"position_pair"`
	TotalSwaps   decimal.Decimal `json:"total_swaps"`
}

type PastFundingTradesRequest struct {
	Request
	// The v1 API calls this parameter "symbol" but expects a currency.
	Symbol      string `json:"symbol"`
	Until       int64  `json:"until"`
	LimitTrades int    `json:"limit_trades"`
}

type CloseLoanRequest struct {
	Request
	SwapID int64 `json:"swap_id"`
}
