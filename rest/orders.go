package rest

import (
	"context"

	"github.com/mmquant/bfx-go/rest/types"
)

// NewOrder places a single order. The Request base of req is stamped here;
// callers fill in only the order fields.
func (c *Client) NewOrder(ctx context.Context, req *types.NewOrderRequest) (*types.OrderStatus, error) {
	if err := c.checkSymbol(req.Symbol); err != nil {
		return nil, err
	}
	if err := checkOrderType(req.Type); err != nil {
		return nil, err
	}
	status := &types.OrderStatus{}
	if err := c.signedPost(ctx, "/v1/order/new", req, status); err != nil {
		return nil, err
	}
	return status, nil
}

// NewOrders places several orders in one signed request.
func (c *Client) NewOrders(ctx context.Context, orders []types.OrderParams) (*types.NewOrdersResult, error) {
	for _, order := range orders {
		if err := c.checkSymbol(order.Symbol); err != nil {
			return nil, err
		}
		if err := checkOrderType(order.Type); err != nil {
			return nil, err
		}
	}
	body := &types.NewOrdersRequest{Orders: orders}
	result := &types.NewOrdersResult{}
	if err := c.signedPost(ctx, "/v1/order/new/multi", body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CancelOrder cancels one order by id.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) (*types.OrderStatus, error) {
	body := &types.CancelOrderRequest{OrderID: orderID}
	status := &types.OrderStatus{}
	if err := c.signedPost(ctx, "/v1/order/cancel", body, status); err != nil {
		return nil, err
	}
	return status, nil
}

// CancelOrders cancels several orders in one signed request.
func (c *Client) CancelOrders(ctx context.Context, orderIDs []int64) (*types.CancelAllResult, error) {
	body := &types.CancelOrdersRequest{OrderIDs: orderIDs}
	result := &types.CancelAllResult{}
	if err := c.signedPost(ctx, "/v1/order/cancel/multi", body, result); err != nil {
		return nil, err
	}
	return result, nil
}

// CancelAllOrders cancels every active order.
func (c *Client) CancelAllOrders(ctx context.Context) (*types.CancelAllResult, error) {
	result := &types.CancelAllResult{}
	if err := c.signedPost(ctx, "/v1/order/cancel/all", &types.Request{}, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceOrder cancels an order and places a replacement atomically.
func (c *Client) ReplaceOrder(ctx context.Context, req *types.ReplaceOrderRequest) (*types.OrderStatus, error) {
	if err := c.checkSymbol(req.Symbol); err != nil {
		return nil, err
	}
	if err := checkOrderType(req.Type); err != nil {
		return nil, err
	}
	status := &types.OrderStatus{}
	if err := c.signedPost(ctx, "/v1/order/cancel/replace", req, status); err != nil {
		return nil, err
	}
	return status, nil
}

// OrderStatus returns the current state of one order.
func (c *Client) OrderStatus(ctx context.Context, orderID int64) (*types.OrderStatus, error) {
	body := &types.OrderStatusRequest{OrderID: orderID}
	status := &types.OrderStatus{}
	if err := c.signedPost(ctx, "/v1/order/status", body, status); err != nil {
		return nil, err
	}
	return status, nil
}

// ActiveOrders returns every live order.
func (c *Client) ActiveOrders(ctx context.Context) ([]types.OrderStatus, error) {
	var orders []types.OrderStatus
	if err := c.signedPost(ctx, "/v1/orders", &types.Request{}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersHistory returns the latest closed orders, most recent first.
func (c *Client) OrdersHistory(ctx context.Context, limit int) ([]types.OrderStatus, error) {
	body := &types.OrdersHistoryRequest{Limit: limit}
	var orders []types.OrderStatus
	if err := c.signedPost(ctx, "/v1/orders/hist", body, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
