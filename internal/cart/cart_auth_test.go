package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaoDuy1703/Ecommerce/internal/cart"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/middleware"
	"github.com/BaoDuy1703/Ecommerce/internal/session"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

type fakeSessionReader struct {
	sess session.Session
}

func (f *fakeSessionReader) Get(ctx context.Context, id string) (session.Session, error) {
	return f.sess, nil
}

// Covers the full chain from cookie auth down to the outbound upstream
// request: the bearer token stored in the session must survive the
// middleware, the handler and the service and arrive as the
// Authorization header of the commerce API call.
func TestCartRoutes_ForwardUpstreamToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotAuth string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"totalAmount":0}`))
	}))
	defer upstream.Close()

	client := commerce.NewClient(upstream.URL, time.Second, nil)
	svc := cart.NewService(client, syncstore.New(nil), nil)
	auth := middleware.NewAuth("secret", &fakeSessionReader{
		sess: session.Session{UserID: "u1", Role: "customer", Token: "upstream-tok"},
	})

	r := gin.New()
	cart.RegisterRoutes(r.Group("/"), cart.NewHandler(svc), auth)

	claims := jwt.MapClaims{
		"sid":     "sid-1",
		"user_id": "u1",
		"role":    "customer",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	cookieToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: cookieToken})
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bearer upstream-tok", gotAuth)
}

func TestCartRoutes_MissingCookieRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called without auth")
	}))
	defer upstream.Close()

	client := commerce.NewClient(upstream.URL, time.Second, nil)
	svc := cart.NewService(client, syncstore.New(nil), nil)
	auth := middleware.NewAuth("secret", &fakeSessionReader{})

	r := gin.New()
	cart.RegisterRoutes(r.Group("/"), cart.NewHandler(svc), auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
