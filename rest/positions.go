package rest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mmquant/bfx-go/rest/types"
)

// ActivePositions returns every open margin position.
func (c *Client) ActivePositions(ctx context.Context) ([]types.Position, error) {
	var positions []types.Position
	if err := c.signedPost(ctx, "/v1/positions", &types.Request{}, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// ClaimPosition claims the given amount of an open position.
func (c *Client) ClaimPosition(ctx context.Context, positionID int64, amount decimal.Decimal) (*types.Position, error) {
	body := &types.ClaimPositionRequest{PositionID: positionID, Amount: amount}
	position := &types.Position{}
	if err := c.signedPost(ctx, "/v1/position/claim", body, position); err != nil {
		return nil, err
	}
	return position, nil
}

// ClosePosition closes an open position at market.
func (c *Client) ClosePosition(ctx context.Context, positionID int64) (*types.Position, error) {
	body := &types.ClosePositionRequest{PositionID: positionID}
	position := &types.Position{}
	if err := c.signedPost(ctx, "/v1/position/close", body, position); err != nil {
		return nil, err
	}
	return position, nil
}
