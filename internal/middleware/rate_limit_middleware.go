package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/BaoDuy1703/Ecommerce/internal/pkg/response"
)

type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newVisitorLimiter(limit float64, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Limit(limit),
		burst:    burst,
	}
}

func (v *visitorLimiter) get(key string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if limiter, exists := v.visitors[key]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(v.limit, v.burst)
	v.visitors[key] = limiter

	// drop idle entries so the map does not grow forever
	go func() {
		time.Sleep(10 * time.Minute)
		v.mu.Lock()
		delete(v.visitors, key)
		v.mu.Unlock()
	}()

	return limiter
}

func (v *visitorLimiter) handle(keyOf func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v.get(keyOf(c)).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimitByIP throttles anonymous endpoints per client address.
func RateLimitByIP(limit float64, burst int) gin.HandlerFunc {
	return newVisitorLimiter(limit, burst).handle(func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// RateLimitByUser throttles authenticated endpoints per user. It must
// run after the auth middleware has validated the user id.
func RateLimitByUser(limit float64, burst int) gin.HandlerFunc {
	return newVisitorLimiter(limit, burst).handle(func(c *gin.Context) string {
		if userID := c.GetString("user_id_validated"); userID != "" {
			return userID
		}
		return c.ClientIP()
	})
}
