package cart

import (
	"context"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CommerceAPI is the slice of the commerce client the cart controller needs.
type CommerceAPI interface {
	GetCart(ctx context.Context) (commerce.Cart, error)
	AddCartItem(ctx context.Context, productID string, quantity int32) error
	UpdateCartItem(ctx context.Context, productID string, quantity int32) error
	RemoveCartItem(ctx context.Context, productID string) error
	ClearCart(ctx context.Context) error
}

type Service interface {
	Detail(ctx context.Context, userID string) (CartResponse, error)

	AddItem(ctx context.Context, userID string, req AddItemRequest) (CartResponse, error)
	UpdateQty(ctx context.Context, userID, productID string, req UpdateQtyRequest) (CartResponse, error)

	RemoveItem(ctx context.Context, userID, productID string) (CartResponse, error)
	Clear(ctx context.Context, userID string) (CartResponse, error)

	// Snapshot freezes the current cart lines into order items for checkout.
	Snapshot(ctx context.Context, userID string) ([]commerce.OrderItemInput, error)
}

type service struct {
	api      CommerceAPI
	store    *syncstore.Store
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(api CommerceAPI, store *syncstore.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:      api,
		store:    store,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *service) fetchCart(ctx context.Context) (any, error) {
	return s.api.GetCart(ctx)
}

func (s *service) Detail(ctx context.Context, userID string) (CartResponse, error) {
	v, err := s.store.Get(ctx, syncstore.CartKey(userID), s.fetchCart)
	if err != nil {
		return CartResponse{}, err
	}
	return s.toResponse(v.(commerce.Cart)), nil
}

// mutate runs one cart mutation followed by exactly one invalidate+refetch
// of the user's cart key. The refetch happens whether or not the mutation
// succeeded; the mutation error wins when surfacing to the caller.
func (s *service) mutate(ctx context.Context, userID string, op func(context.Context) error) (CartResponse, error) {
	opErr := op(ctx)

	v, refetchErr := s.store.Refetch(ctx, syncstore.CartKey(userID), s.fetchCart)

	if opErr != nil {
		return CartResponse{}, opErr
	}
	if refetchErr != nil {
		return CartResponse{}, refetchErr
	}
	return s.toResponse(v.(commerce.Cart)), nil
}

func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) (CartResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartResponse{}, mapValidationError(err)
	}

	return s.mutate(ctx, userID, func(ctx context.Context) error {
		return s.api.AddCartItem(ctx, req.ProductID, req.Qty)
	})
}

func (s *service) UpdateQty(ctx context.Context, userID, productID string, req UpdateQtyRequest) (CartResponse, error) {
	if productID == "" {
		return CartResponse{}, ErrInvalidProductID
	}
	// rejected before any network call
	if err := s.validate.Struct(req); err != nil {
		return CartResponse{}, mapValidationError(err)
	}

	return s.mutate(ctx, userID, func(ctx context.Context) error {
		return s.api.UpdateCartItem(ctx, productID, req.Qty)
	})
}

func (s *service) RemoveItem(ctx context.Context, userID, productID string) (CartResponse, error) {
	if productID == "" {
		return CartResponse{}, ErrInvalidProductID
	}

	return s.mutate(ctx, userID, func(ctx context.Context) error {
		err := s.api.RemoveCartItem(ctx, productID)
		if apperror.Is(err, apperror.CodeNotFound) {
			// removing an absent line is not an error
			return nil
		}
		return err
	})
}

func (s *service) Clear(ctx context.Context, userID string) (CartResponse, error) {
	return s.mutate(ctx, userID, func(ctx context.Context) error {
		return s.api.ClearCart(ctx)
	})
}

func (s *service) Snapshot(ctx context.Context, userID string) ([]commerce.OrderItemInput, error) {
	v, err := s.store.Get(ctx, syncstore.CartKey(userID), s.fetchCart)
	if err != nil {
		return nil, err
	}

	cartData := v.(commerce.Cart)
	items := make([]commerce.OrderItemInput, 0, len(cartData.Items))
	for _, item := range cartData.Items {
		items = append(items, commerce.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return items, nil
}

// toResponse recomputes display totals locally; the server remains
// authoritative for anything that persists.
func (s *service) toResponse(c commerce.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	total := decimal.Zero

	for _, item := range c.Items {
		lineTotal := decimal.NewFromInt(item.UnitPrice).
			Mul(decimal.NewFromInt32(item.Quantity))
		total = total.Add(lineTotal)

		items = append(items, CartItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Qty:       item.Quantity,
			ImageURL:  item.ImageURL,
			LineTotal: lineTotal.IntPart(),
		})
	}

	return CartResponse{
		Items:       items,
		TotalAmount: total.IntPart(),
	}
}
