package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/cloudinary"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/config"
	"github.com/BaoDuy1703/Ecommerce/internal/session"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

// BuildApp connects the infrastructure, wires every module and starts
// the payment event consumer. The returned shutdown func releases the
// connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	// 1. Infrastructure
	redisClient, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
	if err != nil {
		return nil, err
	}

	kafkaReader, err := connectKafkaReaderWithRetry(
		cfg.KafkaBroker,
		cfg.PaymentEventsTopic,
		cfg.ConsumerGroupID,
		5,
		logger,
	)
	if err != nil {
		return nil, err
	}

	// 2. Third party services
	cloudinaryService, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		cfg.CloudinaryFolder,
	)
	if err != nil {
		return nil, err
	}

	// 3. Core state
	client := commerce.NewClient(cfg.CommerceAPIURL, cfg.CommerceAPITimeout, logger)
	store := syncstore.New(logger)
	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	// 4. Modules and routes
	registerModules(router, cfg, client, store, sessions, cloudinaryService, logger)

	// 5. Background consumer
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	startPaymentConsumer(consumerCtx, kafkaReader, store, logger)

	shutdown := func() {
		stopConsumer()
		if err := kafkaReader.Close(); err != nil {
			logger.Warn("failed to close kafka reader", zap.Error(err))
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
	return shutdown, nil
}
