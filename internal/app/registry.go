package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/auth"
	"github.com/BaoDuy1703/Ecommerce/internal/cart"
	"github.com/BaoDuy1703/Ecommerce/internal/checkout"
	"github.com/BaoDuy1703/Ecommerce/internal/cloudinary"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/config"
	"github.com/BaoDuy1703/Ecommerce/internal/middleware"
	"github.com/BaoDuy1703/Ecommerce/internal/order"
	"github.com/BaoDuy1703/Ecommerce/internal/payment"
	"github.com/BaoDuy1703/Ecommerce/internal/product"
	"github.com/BaoDuy1703/Ecommerce/internal/session"
	"github.com/BaoDuy1703/Ecommerce/internal/stream"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	client *commerce.Client,
	store *syncstore.Store,
	sessions *session.Store,
	cloudinaryService cloudinary.Service,
	logger *zap.Logger,
) {
	// --- Middleware ---
	authMiddleware := middleware.NewAuth(cfg.JWTSecret, sessions)

	// --- Services ---
	authService := auth.NewService(client, sessions, cfg.JWTSecret, cfg.SessionTTL, logger)
	cartService := cart.NewService(client, store, logger)
	orderService := order.NewService(client, store, logger)
	productService := product.NewService(client, store, cloudinaryService, logger)

	snapProvider := payment.NewSnapProvider(cfg.MidtransServerKey, cfg.MidtransIsProduction)
	paymentService := payment.NewService(client, snapProvider, cfg.DefaultPaymentProvider, logger)

	checkoutManager := checkout.NewManager(checkout.Deps{
		Carts:           cartService,
		Orders:          orderService,
		Payments:        paymentService,
		Store:           store,
		DefaultProvider: cfg.DefaultPaymentProvider,
		Logger:          logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, int(cfg.SessionTTL.Seconds()), logger)
	cartHandler := cart.NewHandler(cartService)
	orderHandler := order.NewHandler(orderService)
	productHandler := product.NewHandler(productService)
	checkoutHandler := checkout.NewHandler(checkoutManager)
	streamHandler := stream.NewHandler(store, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		product.RegisterRoutes(api, productHandler, authMiddleware)
		cart.RegisterRoutes(api, cartHandler, authMiddleware)
		order.RegisterRoutes(api, orderHandler, authMiddleware)
		checkout.RegisterRoutes(api, checkoutHandler, authMiddleware)
		stream.RegisterRoutes(api, streamHandler, authMiddleware)
	}
}
