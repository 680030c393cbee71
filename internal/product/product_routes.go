package product

import (
	"github.com/gin-gonic/gin"

	"github.com/BaoDuy1703/Ecommerce/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth *middleware.Auth) {
	products := r.Group("/products")
	{
		products.GET("", handler.List)
		products.GET("/:productId", handler.Detail)
	}

	admin := r.Group("/admin/products")
	admin.Use(auth.Required(), auth.RequireRole("admin"))
	{
		admin.POST("", handler.Create)
		admin.PUT("/:productId", handler.Update)
		admin.DELETE("/:productId", handler.Delete)
		admin.POST("/images", handler.UploadImage)
	}
}
