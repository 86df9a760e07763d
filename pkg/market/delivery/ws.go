package delivery

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/SNEHARUTH11/fina/pkg/logging"
	marketUsecasePkg "github.com/SNEHARUTH11/fina/pkg/market/usecase"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type StreamHandler struct {
	Market *marketUsecasePkg.MarketManager
	Logger *logging.Logger
}

// Stream pushes every per-asset tick update to the websocket client
// until it goes away.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Zap.Error("ws upgrade",
			zap.String("logger", "marketStream"),
			zap.String("err", err.Error()),
		)
		return
	}

	updates := h.Market.Subscribe()
	defer func() {
		h.Market.Unsubscribe(updates)
		conn.Close()
	}()

	// drain client frames so close is noticed
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
		case <-done:
			return
		case <-r.Context().Done():
			return
		case update := <-updates:
			if err := conn.WriteJSON(update); err != nil {
				h.Logger.Zap.Error("ws send",
					zap.String("logger", "marketStream"),
					zap.String("err", err.Error()),
				)
				return
			}
		}
	}
}
