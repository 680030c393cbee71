package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

// ConsumeMessages applies payment outcome events from the commerce
// backend to the local cache so order reads pick up the new status
// without waiting for a user-driven refetch.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, store *syncstore.Store, logger *zap.Logger) {
	logger = logger.Named("payment.consumer")
	logger.Info("started consuming payment events")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("failed to fetch message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case "PAYMENT_COMPLETED", "PAYMENT_FAILED":
			if err := handlePaymentEvent(msg.Value, store, logger); err != nil {
				logger.Error("failed to handle payment event",
					zap.String("event_type", eventType),
					zap.Error(err),
				)
				continue
			}
		default:
			// unknown event types are committed and skipped
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			logger.Error("failed to commit message", zap.Error(err))
		}
	}
}
