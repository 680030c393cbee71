package commerce

import "time"

// Order statuses owned by the commerce platform. The gateway never sets
// these locally; they only change through payment completion events
// reported back upstream.
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int32  `json:"quantity"`
	ImageURL  string `json:"imageUrl"`
	LineTotal int64  `json:"lineTotal"`
}

type Cart struct {
	Items       []CartItem `json:"items"`
	TotalAmount int64      `json:"totalAmount"`
}

type OrderItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int32  `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

type Order struct {
	ID          string      `json:"id"`
	Status      string      `json:"status"`
	TotalAmount int64       `json:"totalAmount"`
	CreatedAt   time.Time   `json:"createdAt"`
	Items       []OrderItem `json:"items"`
}

type PaymentSession struct {
	Provider    string `json:"provider"`
	CheckoutURL string `json:"checkoutUrl"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResult struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}
