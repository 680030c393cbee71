package checkout

type StartRequest struct {
	Provider string `json:"provider"`
}

type PayNowRequest struct {
	Provider string `json:"provider"`
}

// Result carries the hand-off target. Following the redirect leaves the
// application; the session that starts there belongs to the payment
// provider.
type Result struct {
	OrderID     string `json:"orderId"`
	RedirectURL string `json:"redirectUrl"`
}

// Status is the state observable exposed to the storefront.
type Status struct {
	State     State  `json:"state"`
	OrderID   string `json:"orderId,omitempty"`
	LastError string `json:"lastError,omitempty"`
}
