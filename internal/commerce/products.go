package commerce

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", input, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, input ProductInput) (Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(id), input, &product); err != nil {
		return Product{}, err
	}
	return product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}
