package consumer

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

type paymentEventPayload struct {
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
	Status  string `json:"status"`
}

func handlePaymentEvent(payload []byte, store *syncstore.Store, logger *zap.Logger) error {
	var data paymentEventPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	store.Invalidate(
		syncstore.OrderKey(data.UserID, data.OrderID),
		syncstore.OrdersKey(data.UserID),
	)

	logger.Info("order cache invalidated from payment event",
		zap.String("order_id", data.OrderID),
		zap.String("status", data.Status),
	)
	return nil
}
