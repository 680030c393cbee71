package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BaoDuy1703/Ecommerce/internal/cart"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE SERVICE ====================

type fakeCartService struct {
	detailFunc     func(ctx context.Context, userID string) (cart.CartResponse, error)
	addItemFunc    func(ctx context.Context, userID string, req cart.AddItemRequest) (cart.CartResponse, error)
	updateQtyFunc  func(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) (cart.CartResponse, error)
	removeItemFunc func(ctx context.Context, userID, productID string) (cart.CartResponse, error)
	clearFunc      func(ctx context.Context, userID string) (cart.CartResponse, error)
}

func (f *fakeCartService) Detail(ctx context.Context, userID string) (cart.CartResponse, error) {
	if f.detailFunc != nil {
		return f.detailFunc(ctx, userID)
	}
	return cart.CartResponse{}, nil
}
func (f *fakeCartService) AddItem(ctx context.Context, userID string, req cart.AddItemRequest) (cart.CartResponse, error) {
	if f.addItemFunc != nil {
		return f.addItemFunc(ctx, userID, req)
	}
	return cart.CartResponse{}, nil
}
func (f *fakeCartService) UpdateQty(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) (cart.CartResponse, error) {
	if f.updateQtyFunc != nil {
		return f.updateQtyFunc(ctx, userID, productID, req)
	}
	return cart.CartResponse{}, nil
}
func (f *fakeCartService) RemoveItem(ctx context.Context, userID, productID string) (cart.CartResponse, error) {
	if f.removeItemFunc != nil {
		return f.removeItemFunc(ctx, userID, productID)
	}
	return cart.CartResponse{}, nil
}
func (f *fakeCartService) Clear(ctx context.Context, userID string) (cart.CartResponse, error) {
	if f.clearFunc != nil {
		return f.clearFunc(ctx, userID)
	}
	return cart.CartResponse{}, nil
}
func (f *fakeCartService) Snapshot(ctx context.Context, userID string) ([]commerce.OrderItemInput, error) {
	return nil, nil
}

func setupRouter(svc cart.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id_validated", "u1")
	})

	h := cart.NewHandler(svc)
	r.GET("/cart", h.Detail)
	r.POST("/cart/items", h.AddItem)
	r.PATCH("/cart/items/:productId", h.UpdateQty)
	r.DELETE("/cart/items/:productId", h.RemoveItem)
	r.DELETE("/cart", h.Clear)
	return r
}

// ==================== TESTS ====================

func TestCartHandler_Detail(t *testing.T) {
	svc := &fakeCartService{
		detailFunc: func(ctx context.Context, userID string) (cart.CartResponse, error) {
			assert.Equal(t, "u1", userID)
			return cart.CartResponse{
				Items:       []cart.CartItemResponse{{ProductID: "A", Qty: 2, LineTotal: 200}},
				TotalAmount: 200,
			}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalAmount":200`)
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotReq cart.AddItemRequest
		svc := &fakeCartService{
			addItemFunc: func(ctx context.Context, userID string, req cart.AddItemRequest) (cart.CartResponse, error) {
				gotReq = req
				return cart.CartResponse{}, nil
			},
		}
		r := setupRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cart/items",
			strings.NewReader(`{"productId":"A","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "A", gotReq.ProductID)
		assert.Equal(t, int32(2), gotReq.Qty)
	})

	t.Run("malformed_body", func(t *testing.T) {
		r := setupRouter(&fakeCartService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{bad`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQty_ValidationError(t *testing.T) {
	svc := &fakeCartService{
		updateQtyFunc: func(ctx context.Context, userID, productID string, req cart.UpdateQtyRequest) (cart.CartResponse, error) {
			return cart.CartResponse{}, cart.ErrInvalidQty
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/A",
		strings.NewReader(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestCartHandler_RemoveItem(t *testing.T) {
	var gotProductID string
	svc := &fakeCartService{
		removeItemFunc: func(ctx context.Context, userID, productID string) (cart.CartResponse, error) {
			gotProductID = productID
			return cart.CartResponse{}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart/items/A", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", gotProductID)
}

func TestCartHandler_Clear(t *testing.T) {
	called := false
	svc := &fakeCartService{
		clearFunc: func(ctx context.Context, userID string) (cart.CartResponse, error) {
			called = true
			return cart.CartResponse{}, nil
		},
	}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
