package stream_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/stream"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

func TestHandler_Changes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := syncstore.New(zap.NewNop())
	handler := stream.NewHandler(store, zap.NewNop())

	router := gin.New()
	router.GET("/stream/changes", handler.Changes)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/stream/changes"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// give the subscription loop a moment to register
	time.Sleep(20 * time.Millisecond)
	store.Notify(syncstore.CartKey("u1"))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg struct {
		Key string    `json:"key"`
		At  time.Time `json:"at"`
	}
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, string(syncstore.CartKey("u1")), msg.Key)
	assert.False(t, msg.At.IsZero())
}
