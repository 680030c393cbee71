package checkout

import (
	"github.com/BaoDuy1703/Ecommerce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth *middleware.Auth) {
	checkout := r.Group("/checkout")
	checkout.Use(auth.Required())
	{
		checkout.POST("", handler.Start)
		checkout.GET("", handler.Status)
	}

	orders := r.Group("/orders")
	orders.Use(auth.Required())
	{
		orders.POST("/:orderId/pay", handler.PayNow)
	}
}
