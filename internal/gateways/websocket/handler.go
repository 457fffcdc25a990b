package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWS upgrades the connection and keeps it registered until the
// peer goes away. The feed is write-only; client reads are drained
// until error.
func (h *Hub) ServeWS(c *gin.Context) {
	sessionKey := c.Query("session_key")
	if sessionKey == "" {
		h.logger.Warnw("WebSocket connection rejected: session_key missing",
			"client_ip", c.ClientIP(),
			"user_agent", c.GetHeader("User-Agent"),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_key is required"})
		return
	}

	session, err := h.sessionSvc.GetSessionByKey(sessionKey)
	if err != nil {
		h.logger.Warnw("WebSocket connection rejected: session not found",
			"client_ip", c.ClientIP(),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	player, err := h.sessionSvc.GetPlayerBySessionKey(sessionKey)
	if err != nil {
		h.logger.Warnw("WebSocket connection rejected: player not found",
			"session_id", session.ID,
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorw("Failed to upgrade connection",
			"session_id", session.ID,
			"error", err,
		)
		return
	}
	defer conn.Close()

	client := &Client{
		hub:        h,
		conn:       conn,
		ID:         generateClientID(),
		SessionID:  session.ID,
		PlayerID:   player.ID,
		SessionKey: sessionKey,
	}

	h.logger.Infow("WebSocket connection established",
		"client_id", client.ID,
		"player_id", client.PlayerID,
		"session_id", client.SessionID,
		"client_ip", c.ClientIP(),
		"user_agent", c.GetHeader("User-Agent"),
	)

	h.register <- client

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
	h.unregister <- client
}
