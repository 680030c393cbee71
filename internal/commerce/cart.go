package commerce

import (
	"context"
	"net/http"
	"net/url"
)

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int32 `json:"quantity"`
}

func (c *Client) GetCart(ctx context.Context) (Cart, error) {
	var cart Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &cart); err != nil {
		return Cart{}, err
	}
	return cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int32) error {
	return c.do(ctx, http.MethodPost, "/cart/items", addCartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int32) error {
	return c.do(ctx, http.MethodPatch, "/cart/items/"+url.PathEscape(productID), updateCartItemRequest{
		Quantity: quantity,
	}, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/items/"+url.PathEscape(productID), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart", nil, nil)
}
