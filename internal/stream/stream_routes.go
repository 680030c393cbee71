package stream

import (
	"github.com/gin-gonic/gin"

	"github.com/BaoDuy1703/Ecommerce/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth *middleware.Auth) {
	r.GET("/stream/changes", auth.Required(), handler.Changes)
}
