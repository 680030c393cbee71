package commerce

import (
	"context"
	"net/http"
)

type createPaymentSessionRequest struct {
	OrderID  string `json:"orderId"`
	Provider string `json:"provider"`
}

// CreatePaymentSession asks the platform for a hosted checkout session.
// Each call creates a fresh session; there is no idempotency key at this
// layer.
func (c *Client) CreatePaymentSession(ctx context.Context, orderID, provider string) (PaymentSession, error) {
	var session PaymentSession
	err := c.do(ctx, http.MethodPost, "/payment-sessions", createPaymentSessionRequest{
		OrderID:  orderID,
		Provider: provider,
	}, &session)
	if err != nil {
		return PaymentSession{}, err
	}
	if session.Provider == "" {
		session.Provider = provider
	}
	return session, nil
}
