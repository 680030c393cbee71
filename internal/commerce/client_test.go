package commerce_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *commerce.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return commerce.NewClient(srv.URL, 5*time.Second, nil)
}

func TestClient_GetCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{"productId":"A","name":"Widget","unitPrice":100,"quantity":2,"lineTotal":200}],
			"totalAmount": 200
		}`))
	})

	ctx := commerce.WithToken(context.Background(), "tok-123")
	cart, err := client.GetCart(ctx)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "A", cart.Items[0].ProductID)
	assert.Equal(t, int32(2), cart.Items[0].Quantity)
	assert.Equal(t, int64(200), cart.TotalAmount)
}

func TestClient_CreateOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"O1","status":"pending","totalAmount":200}`))
	})

	order, err := client.CreateOrder(context.Background(), []commerce.OrderItemInput{
		{ProductID: "A", Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "O1", order.ID)
	assert.Equal(t, commerce.OrderStatusPending, order.Status)
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name         string
		status       int
		wantCode     string
		wantHTTPCode int
	}{
		{"bad_request", http.StatusBadRequest, apperror.CodeValidation, http.StatusBadRequest},
		{"unprocessable", http.StatusUnprocessableEntity, apperror.CodeValidation, http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized, apperror.CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", http.StatusForbidden, apperror.CodeForbidden, http.StatusForbidden},
		{"not_found", http.StatusNotFound, apperror.CodeNotFound, http.StatusNotFound},
		{"conflict", http.StatusConflict, apperror.CodeConflict, http.StatusConflict},
		{"server_error", http.StatusInternalServerError, apperror.CodeTransport, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(`{"message":"upstream says no"}`))
			})

			_, err := client.GetOrder(context.Background(), "O1")

			require.Error(t, err)
			appErr := apperror.From(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.Equal(t, tc.wantHTTPCode, appErr.HTTPStatus)
			assert.Equal(t, "upstream says no", appErr.Message)
		})
	}
}

func TestClient_UnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force connection refused

	client := commerce.NewClient(srv.URL, time.Second, nil)
	_, err := client.ListProducts(context.Background())

	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.CodeTransport))
}

func TestClient_CreatePaymentSession(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment-sessions", r.URL.Path)
		_, _ = w.Write([]byte(`{"checkoutUrl":"https://pay.example.com/cs_1"}`))
	})

	session, err := client.CreatePaymentSession(context.Background(), "O1", "stripe")

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_1", session.CheckoutURL)
	// provider defaulted from the request when upstream omits it
	assert.Equal(t, "stripe", session.Provider)
}
