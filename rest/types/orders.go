package types

import (
	"github.com/shopspring/decimal"
)

// NewOrderRequest places a single order.
type NewOrderRequest struct {
	Request
	Symbol          string          `json:"symbol"`
	Amount          decimal.Decimal `json:"amount"`
	Price           decimal.Decimal `json:"price"`
	Side            string          `json:"side"` // "buy" or "sell"
	Type            string          `json:"type"`
	IsHidden        bool            `json:"is_hidden"`
	IsPostOnly      bool            `json:"is_postonly"`
	UseAllAvailable bool            `json:"use_all_available"`
	OCOOrder        bool            `json:"ocoorder"`
	BuyPriceOCO     decimal.Decimal `json:"buy_price_oco"`
}

// OrderParams is one order inside a multi-order batch.
type OrderParams struct {
	Symbol string          `json:"symbol"`
	Amount decimal.Decimal `json:"amount"`
	Price  decimal.Decimal `json:"price"`
	Side   string          `json:"side"`
	Type   string          `json:"type"`
}

// NewOrdersRequest places several orders in one request.
type NewOrdersRequest struct {
	Request
	Orders []OrderParams `json:"payload"`
}

// NewOrdersResult is the response to a multi-order batch.
type NewOrdersResult struct {
	OrderIDs []OrderStatus `json:"order_ids"`
	Status   string        `json:"status"`
}

type CancelOrderRequest struct {
	Request
	OrderID int64 `json:"order_id"`
}

type CancelOrdersRequest struct {
	Request
	OrderIDs []int64 `json:"order_ids"`
}

// CancelAllResult is the acknowledgement for a cancel-all request.
type CancelAllResult struct {
	Result string `json:"result"`
}

// ReplaceOrderRequest atomically cancels an order and places another.
type ReplaceOrderRequest struct {
	Request
	OrderID         int64           `json:"order_id"`
	Symbol          string          `json:"symbol"`
	Amount          decimal.Decimal `json:"amount"`
	Price           decimal.Decimal `json:"price"`
	Side            string          `json:"side"`
	Type            string          `json:"type"`
	IsHidden        bool            `json:"is_hidden"`
	UseAllAvailable bool            `json:"use_all_available"`
}

type OrderStatusRequest struct {
	Request
	OrderID int64 `json:"order_id"`
}

type OrdersHistoryRequest struct {
	Request
	Limit int `json:"limit"`
}

// OrderStatus is the server's view of one order.
type OrderStatus struct {
	ID                int64           `json:"id"`
	Symbol            string          `json:"symbol"`
	Exchange          string          `json:"exchange"`
	Price             decimal.Decimal `json:"price"`
	AvgExecutionPrice decimal.Decimal `json:"avg_execution_price"`
	Side              string          `json:"side"`
	Type              string          `json:"type"`
	Timestamp         string          `json:"timestamp"`
	IsLive            bool            `json:"is_live"`
	IsCancelled       bool            `json:"is_cancelled"`
	IsHidden          bool            `json:"is_hidden"`
	WasForced         bool            `json:"was_forced"`
	OriginalAmount    decimal.Decimal `json:"original_amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	ExecutedAmount    decimal.Decimal `json:"executed_amount"`
}
