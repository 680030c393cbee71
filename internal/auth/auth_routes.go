package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/BaoDuy1703/Ecommerce/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth *middleware.Auth) {
	group := r.Group("/auth")
	{
		// strict per IP, keeps bots from farming accounts
		group.POST("/register",
			middleware.RateLimitByIP(0.05, 1),
			handler.Register,
		)

		// strict per IP against password brute force
		group.POST("/login",
			middleware.RateLimitByIP(0.1, 3),
			handler.Login,
		)

		authenticated := group.Group("/")
		authenticated.Use(auth.Required())
		{
			authenticated.POST("/logout",
				middleware.RateLimitByUser(1, 2),
				handler.Logout,
			)
		}
	}
}
