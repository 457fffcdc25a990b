package game

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

var nicknamePattern = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

type Handler interface {
	GetBoard(c *gin.Context)
	ClaimBingo(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get the session's bingo board
// @Description Return the caller's board, dealing one on first access
// @Tags Game
// @Accept json
// @Produce json
// @Param session_key query string true "Session key"
// @Success 200 {object} BoardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /board [get]
func (h *handler) GetBoard(c *gin.Context) {
	sessionKey := c.Query("session_key")
	if sessionKey == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session_key is required"})
		return
	}

	board, err := h.service.GetBoard(c.Request.Context(), sessionKey)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get board"})
		return
	}

	c.JSON(http.StatusOK, BoardResponse{Board: board})
}

// @Summary Shout bingo
// @Description Record the caller's bingo claim in arrival order; adjudication happens outside this service
// @Tags Game
// @Accept json
// @Produce json
// @Param claim body ClaimRequest true "Claim"
// @Success 201 {object} ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bingo [post]
func (h *handler) ClaimBingo(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if req.Nickname != "" && !nicknamePattern.MatchString(req.Nickname) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nickname must contain only letters and digits"})
		return
	}

	claim, err := h.service.ClaimBingo(c.Request.Context(), req.SessionKey, req.Nickname, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session not found"})
		case errors.Is(err, ErrNoBoard):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "no board issued for session"})
		case errors.Is(err, ErrClaimCooldown):
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, ClaimResponse{
		ID:        claim.ID,
		Position:  claim.Position,
		ClaimedAt: claim.ClaimedAt,
		CreatedAt: claim.CreatedAt,
	})
}
