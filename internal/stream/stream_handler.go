package stream

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// same-origin storefront, the cookie auth already gates access
		return true
	},
}

type changeMessage struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// Handler pushes cache change events to connected storefront tabs so
// they can refetch the affected keys instead of polling.
type Handler struct {
	store  *syncstore.Store
	logger *zap.Logger
}

func NewHandler(store *syncstore.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: store, logger: logger.Named("stream.handler")}
}

func (h *Handler) Changes(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := h.store.Subscribe()
	defer cancel()

	// drain client frames so pings and close frames are processed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			msg := changeMessage{Key: string(ev.Key), At: ev.At}
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
