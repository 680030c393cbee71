package cart

import (
	"github.com/BaoDuy1703/Ecommerce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth *middleware.Auth) {
	cart := r.Group("/cart")
	cart.Use(auth.Required())
	{
		cart.GET("", handler.Detail)
		cart.POST("/items", handler.AddItem)
		cart.PATCH("/items/:productId", handler.UpdateQty)
		cart.DELETE("/items/:productId", handler.RemoveItem)
		cart.DELETE("", handler.Clear)
	}
}
