package order

import (
	"context"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"

	"go.uber.org/zap"
)

// CommerceAPI is the slice of the commerce client the order controller needs.
type CommerceAPI interface {
	CreateOrder(ctx context.Context, items []commerce.OrderItemInput) (commerce.Order, error)
	ListOrders(ctx context.Context) ([]commerce.Order, error)
	GetOrder(ctx context.Context, id string) (commerce.Order, error)
}

type Service interface {
	// Create snapshots the given items into a new order. The server
	// recomputes all prices; the order is immutable once created.
	Create(ctx context.Context, userID string, items []commerce.OrderItemInput) (OrderResponse, error)

	List(ctx context.Context, userID string, status string) ([]OrderResponse, error)
	Detail(ctx context.Context, userID, orderID string) (OrderResponse, error)
}

type service struct {
	api    CommerceAPI
	store  *syncstore.Store
	logger *zap.Logger
}

func NewService(api CommerceAPI, store *syncstore.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:    api,
		store:  store,
		logger: logger,
	}
}

func (s *service) Create(ctx context.Context, userID string, items []commerce.OrderItemInput) (OrderResponse, error) {
	// rejected before any network call
	if len(items) == 0 {
		return OrderResponse{}, ErrEmptyOrder
	}

	logger := s.logger.With(zap.String("user_id", userID))

	o, err := s.api.CreateOrder(ctx, items)
	if err != nil {
		logger.Error("failed to create order", zap.Error(err))
		return OrderResponse{}, err
	}

	s.store.Invalidate(syncstore.OrdersKey(userID))
	logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("status", o.Status),
	)

	return mapOrderToResponse(o), nil
}

func (s *service) List(ctx context.Context, userID string, status string) ([]OrderResponse, error) {
	switch status {
	case "", commerce.OrderStatusPending, commerce.OrderStatusPaid, commerce.OrderStatusFailed:
	default:
		return nil, ErrInvalidStatusFilter
	}

	v, err := s.store.Get(ctx, syncstore.OrdersKey(userID), func(ctx context.Context) (any, error) {
		return s.api.ListOrders(ctx)
	})
	if err != nil {
		return nil, err
	}

	orders := v.([]commerce.Order)
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		res = append(res, mapOrderToResponse(o))
	}
	return res, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	if orderID == "" {
		return OrderResponse{}, ErrInvalidOrderID
	}

	v, err := s.store.Get(ctx, syncstore.OrderKey(userID, orderID), func(ctx context.Context) (any, error) {
		return s.api.GetOrder(ctx, orderID)
	})
	if err != nil {
		return OrderResponse{}, err
	}
	return mapOrderToResponse(v.(commerce.Order)), nil
}

func mapOrderToResponse(o commerce.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Qty:       item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	return OrderResponse{
		ID:          o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		Items:       items,
	}
}
