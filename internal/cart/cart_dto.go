package cart

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int32  `json:"quantity" validate:"required,gte=1"`
}

type UpdateQtyRequest struct {
	Qty int32 `json:"quantity" validate:"required,gte=1"`
}

type CartItemResponse struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int32  `json:"quantity"`
	ImageURL  string `json:"imageUrl"`
	LineTotal int64  `json:"lineTotal"`
}

type CartResponse struct {
	Items       []CartItemResponse `json:"items"`
	TotalAmount int64              `json:"totalAmount"`
}
