package order

import (
	"github.com/BaoDuy1703/Ecommerce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth *middleware.Auth) {
	orders := r.Group("/orders")
	orders.Use(auth.Required())
	{
		orders.POST("", handler.Create)
		orders.GET("", handler.List)
		orders.GET("/:orderId", handler.Detail)
	}
}
