package app

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/messaging/kafka/consumer"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

// startPaymentConsumer runs the payment event loop in-process. The
// cache lives in this process, so the invalidations it performs must
// too.
func startPaymentConsumer(ctx context.Context, reader *kafka.Reader, store *syncstore.Store, logger *zap.Logger) {
	go consumer.ConsumeMessages(ctx, reader, store, logger)
}
