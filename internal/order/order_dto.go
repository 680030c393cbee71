package order

import (
	"time"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
)

type CreateOrderRequest struct {
	Items []commerce.OrderItemInput `json:"items"`
}

type OrderItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int32  `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	TotalAmount int64               `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []OrderItemResponse `json:"items"`
}
