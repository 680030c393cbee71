package commerce

import (
	"context"
	"net/http"
	"net/url"
)

type createOrderRequest struct {
	Items []OrderItemInput `json:"items"`
}

// CreateOrder snapshots the given items into a new order. The server
// recomputes prices and totals from current product data; anything the
// gateway knows about prices is advisory only.
func (c *Client) CreateOrder(ctx context.Context, items []OrderItemInput) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", createOrderRequest{Items: items}, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return Order{}, err
	}
	return order, nil
}
