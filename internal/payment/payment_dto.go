package payment

// Payment providers the gateway can hand a checkout off to. Stripe sessions
// come from the commerce API; midtrans sessions are created directly against
// Snap.
const (
	ProviderStripe   = "stripe"
	ProviderMidtrans = "midtrans"
)

type CreateSessionRequest struct {
	OrderID  string `json:"orderId" validate:"required"`
	Provider string `json:"provider"`
}

type SessionResponse struct {
	OrderID     string `json:"orderId"`
	Provider    string `json:"provider"`
	CheckoutURL string `json:"checkoutUrl"`
}
