package order_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/order"
	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE COMMERCE API ====================

type fakeOrderAPI struct {
	orders map[string]commerce.Order

	createCalls int32
	listCalls   int32

	createErr error
	nextID    string
}

func newFakeOrderAPI() *fakeOrderAPI {
	return &fakeOrderAPI{orders: make(map[string]commerce.Order), nextID: "O1"}
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, items []commerce.OrderItemInput) (commerce.Order, error) {
	atomic.AddInt32(&f.createCalls, 1)
	if f.createErr != nil {
		return commerce.Order{}, f.createErr
	}

	var total int64
	orderItems := make([]commerce.OrderItem, 0, len(items))
	for _, in := range items {
		// the fake server prices every product at 100
		orderItems = append(orderItems, commerce.OrderItem{
			ProductID: in.ProductID,
			UnitPrice: 100,
			Quantity:  in.Quantity,
			LineTotal: 100 * int64(in.Quantity),
		})
		total += 100 * int64(in.Quantity)
	}

	o := commerce.Order{
		ID:          f.nextID,
		Status:      commerce.OrderStatusPending,
		TotalAmount: total,
		CreatedAt:   time.Now(),
		Items:       orderItems,
	}
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context) ([]commerce.Order, error) {
	atomic.AddInt32(&f.listCalls, 1)
	res := make([]commerce.Order, 0, len(f.orders))
	for _, o := range f.orders {
		res = append(res, o)
	}
	return res, nil
}

func (f *fakeOrderAPI) GetOrder(ctx context.Context, id string) (commerce.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return commerce.Order{}, apperror.New(apperror.CodeNotFound, "order not found", 404)
	}
	return o, nil
}

// ==================== TESTS ====================

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := newFakeOrderAPI()
		svc := order.NewService(api, syncstore.New(nil), nil)

		res, err := svc.Create(ctx, "u1", []commerce.OrderItemInput{{ProductID: "A", Quantity: 2}})

		require.NoError(t, err)
		assert.Equal(t, "O1", res.ID)
		assert.Equal(t, commerce.OrderStatusPending, res.Status)
		assert.Equal(t, int64(200), res.TotalAmount)
	})

	t.Run("empty_items_no_network_call", func(t *testing.T) {
		api := newFakeOrderAPI()
		svc := order.NewService(api, syncstore.New(nil), nil)

		_, err := svc.Create(ctx, "u1", nil)

		assert.ErrorIs(t, err, order.ErrEmptyOrder)
		assert.Equal(t, int32(0), api.createCalls)
	})

	t.Run("create_invalidates_order_list", func(t *testing.T) {
		api := newFakeOrderAPI()
		store := syncstore.New(nil)
		svc := order.NewService(api, store, nil)

		_, err := svc.List(ctx, "u1", "")
		require.NoError(t, err)
		assert.Equal(t, int32(1), api.listCalls)

		_, err = svc.Create(ctx, "u1", []commerce.OrderItemInput{{ProductID: "A", Quantity: 1}})
		require.NoError(t, err)

		res, err := svc.List(ctx, "u1", "")
		require.NoError(t, err)
		assert.Equal(t, int32(2), api.listCalls)
		require.Len(t, res, 1)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters_by_status", func(t *testing.T) {
		api := newFakeOrderAPI()
		api.orders["O1"] = commerce.Order{ID: "O1", Status: commerce.OrderStatusPending}
		api.orders["O2"] = commerce.Order{ID: "O2", Status: commerce.OrderStatusPaid}
		svc := order.NewService(api, syncstore.New(nil), nil)

		res, err := svc.List(ctx, "u1", commerce.OrderStatusPaid)

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "O2", res[0].ID)
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		svc := order.NewService(newFakeOrderAPI(), syncstore.New(nil), nil)

		_, err := svc.List(ctx, "u1", "shipped")

		assert.ErrorIs(t, err, order.ErrInvalidStatusFilter)
	})

	t.Run("list_is_cached", func(t *testing.T) {
		api := newFakeOrderAPI()
		svc := order.NewService(api, syncstore.New(nil), nil)

		_, err := svc.List(ctx, "u1", "")
		require.NoError(t, err)
		_, err = svc.List(ctx, "u1", commerce.OrderStatusPending)
		require.NoError(t, err)

		assert.Equal(t, int32(1), api.listCalls)
	})
}

func TestOrderService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := newFakeOrderAPI()
		api.orders["O1"] = commerce.Order{ID: "O1", Status: commerce.OrderStatusPending, TotalAmount: 200}
		svc := order.NewService(api, syncstore.New(nil), nil)

		res, err := svc.Detail(ctx, "u1", "O1")

		require.NoError(t, err)
		assert.Equal(t, "O1", res.ID)
		assert.Equal(t, int64(200), res.TotalAmount)
	})

	t.Run("not_found", func(t *testing.T) {
		svc := order.NewService(newFakeOrderAPI(), syncstore.New(nil), nil)

		_, err := svc.Detail(ctx, "u1", "missing")

		assert.True(t, apperror.Is(err, apperror.CodeNotFound))
	})

	t.Run("missing_id", func(t *testing.T) {
		svc := order.NewService(newFakeOrderAPI(), syncstore.New(nil), nil)

		_, err := svc.Detail(ctx, "u1", "")

		assert.ErrorIs(t, err, order.ErrInvalidOrderID)
	})

	t.Run("cached_detail_is_not_shared_across_users", func(t *testing.T) {
		api := newFakeOrderAPI()
		api.orders["O1"] = commerce.Order{ID: "O1", Status: commerce.OrderStatusPending, TotalAmount: 200}
		svc := order.NewService(api, syncstore.New(nil), nil)

		// the owner warms the cache
		res, err := svc.Detail(ctx, "u1", "O1")
		require.NoError(t, err)
		assert.Equal(t, "O1", res.ID)

		// upstream refuses the order for anyone else; a second user must
		// hit that refusal, not the owner's cached copy
		delete(api.orders, "O1")
		_, err = svc.Detail(ctx, "intruder", "O1")
		assert.True(t, apperror.Is(err, apperror.CodeNotFound))

		// the owner keeps being served from their own cache entry
		res, err = svc.Detail(ctx, "u1", "O1")
		require.NoError(t, err)
		assert.Equal(t, int64(200), res.TotalAmount)
	})
}
