package rest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mmquant/bfx-go/rest/types"
)

// NewOffer submits a new margin funding offer. rate is per 365 days;
// direction is "lend" or "loan".
func (c *Client) NewOffer(ctx context.Context, currency string, amount, rate decimal.Decimal, period int, direction string) (*types.Offer, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	body := &types.NewOfferRequest{
		Currency:  currency,
		Amount:    amount,
		Rate:      rate,
		Period:    period,
		Direction: direction,
	}
	offer := &types.Offer{}
	if err := c.signedPost(ctx, "/v1/offer/new", body, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// CancelOffer cancels a funding offer.
func (c *Client) CancelOffer(ctx context.Context, offerID int64) (*types.Offer, error) {
	body := &types.CancelOfferRequest{OfferID: offerID}
	offer := &types.Offer{}
	if err := c.signedPost(ctx, "/v1/offer/cancel", body, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// OfferStatus returns the current state of a funding offer.
func (c *Client) OfferStatus(ctx context.Context, offerID int64) (*types.Offer, error) {
	body := &types.OfferStatusRequest{OfferID: offerID}
	offer := &types.Offer{}
	if err := c.signedPost(ctx, "/v1/offer/status", body, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// ActiveCredits returns the funding currently lent out and in use.
func (c *Client) ActiveCredits(ctx context.Context) ([]types.Credit, error) {
	return c.creditsPost(ctx, "/v1/credits")
}

// Offers returns every live funding offer.
func (c *Client) Offers(ctx context.Context) ([]types.Offer, error) {
	var offers []types.Offer
	if err := c.signedPost(ctx, "/v1/offers", &types.Request{}, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// OffersHistory returns the latest inactive funding offers.
func (c *Client) OffersHistory(ctx context.Context, limit int) ([]types.Offer, error) {
	body := &types.OffersHistoryRequest{Limit: limit}
	var offers []types.Offer
	if err := c.signedPost(ctx, "/v1/offers/hist", body, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// PastFundingTrades returns the account's own funding trades for currency.
func (c *Client) PastFundingTrades(ctx context.Context, currency string, until int64, limitTrades int) ([]types.PrivateTrade, error) {
	if err := checkCurrency(currency); err != nil {
		return nil, err
	}
	body := &types.PastFundingTradesRequest{
		Symbol:      currency,
		Until:       until,
		LimitTrades: limitTrades,
	}
	var trades []types.PrivateTrade
	if err := c.signedPost(ctx, "/v1/mytrades_funding", body, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// TakenFunds returns the margin funding taken for open positions.
func (c *Client) TakenFunds(ctx context.Context) ([]types.Credit, error) {
	return c.creditsPost(ctx, "/v1/taken_funds")
}

// UnusedTakenFunds returns margin funding taken but not used.
func (c *Client) UnusedTakenFunds(ctx context.Context) ([]types.Credit, error) {
	return c.creditsPost(ctx, "/v1/unused_taken_funds")
}

// TotalTakenFunds returns the total funding in use per position pair.
func (c *Client) TotalTakenFunds(ctx context.Context) ([]types.TotalTakenFund, error) {
	var totals []types.TotalTakenFund
	if err := c.signedPost(ctx, "/v1/total_taken_funds", &types.Request{}, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

// CloseLoan returns taken funding to the lender.
func (c *Client) CloseLoan(ctx context.Context, swapID int64) (*types.Credit, error) {
	body := &types.CloseLoanRequest{SwapID: swapID}
	credit := &types.Credit{}
	if err := c.signedPost(ctx, "/v1/funding/close", body, credit); err != nil {
		return nil, err
	}
	return credit, nil
}

func (c *Client) creditsPost(ctx context.Context, requestPath string) ([]types.Credit, error) {
	var credits []types.Credit
	if err := c.signedPost(ctx, requestPath, &types.Request{}, &credits); err != nil {
		return nil, err
	}
	return credits, nil
}
