package session

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateSession(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Start an anonymous session
// @Description Issue a session key for the calling player, reusing the player record bound to the caller's IP
// @Tags Session
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/session [post]
func (h *handler) CreateSession(c *gin.Context) {
	userAgent := c.GetHeader("User-Agent")
	ip := extractIP(c)

	session, player, err := h.service.CreateSessionAndPlayer(userAgent, ip)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		PlayerID:   player.ID,
		Nickname:   player.Nickname,
		SessionKey: session.SessionKey,
		CreatedAt:  session.CreatedAt,
	})
}

func extractIP(c *gin.Context) string {
	clientIP := c.GetHeader("X-Forwarded-For")
	if clientIP != "" {
		ips := strings.Split(clientIP, ",")
		if len(ips) > 0 {
			netIP := net.ParseIP(strings.TrimSpace(ips[0]))
			if netIP != nil {
				return netIP.String()
			}
		}
	}

	clientIP = c.GetHeader("X-Real-IP")
	if clientIP != "" {
		netIP := net.ParseIP(clientIP)
		if netIP != nil {
			return netIP.String()
		}
	}

	ip, _, _ := net.SplitHostPort(c.Request.RemoteAddr)
	return ip
}
