package handlers

import (
	"errors"
	"net/http"
	"time"

	"obratrack/services/realtime"
	"obratrack/services/tv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Displays connect from local networks with arbitrary origins.
		return true
	},
}

const (
	wsWriteTimeout = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

// EventsHandler streams pairing events for one session over a WebSocket. The
// display opens this right after rendering the QR code; each message is one
// JSON event. The stream carries no history: state present before the
// subscription must come from the status endpoint.
func (h *TVHandler) EventsHandler(channel realtime.ChannelService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		token := c.Param("token")

		// Reject tokens that do not resolve before paying for an upgrade.
		if _, err := h.Service.Status(token); err != nil {
			if errors.Is(err, tv.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Session not found or expired"})
				return
			}
			logger.Error("Failed to resolve session for event stream",
				zap.String("token", token), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open event stream"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Error("WebSocket upgrade failed", zap.Error(err))
			return
		}

		events, cancel := channel.Subscribe(c.Request.Context(), token)
		defer cancel()
		defer conn.Close()

		// Drain the read side so close frames and pongs are processed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()

		for {
			select {
			case evt, ok := <-events:
				if !ok {
					return
				}
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteJSON(evt); err != nil {
					logger.Debug("Event stream write failed",
						zap.String("token", token), zap.Error(err))
					return
				}
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
