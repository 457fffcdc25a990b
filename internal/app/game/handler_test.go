package game

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeService struct {
	board    *Board
	claim    *Claim
	boardErr error
	claimErr error
}

func (f *fakeService) GetBoard(ctx context.Context, sessionKey string) (*Board, error) {
	return f.board, f.boardErr
}

func (f *fakeService) ClaimBingo(ctx context.Context, sessionKey, nickname string, note *string) (*Claim, error) {
	return f.claim, f.claimErr
}

func newTestEngine(svc Service) *gin.Engine {
	engine := gin.New()
	h := NewHandler(svc)
	engine.GET("/board", h.GetBoard)
	engine.POST("/bingo", h.ClaimBingo)
	return engine
}

func TestGetBoardRequiresSessionKey(t *testing.T) {
	engine := newTestEngine(&fakeService{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/board", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBoardUnknownSessionKey(t *testing.T) {
	engine := newTestEngine(&fakeService{boardErr: ErrSessionNotFound})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/board?session_key=abc", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetBoardReturnsBoard(t *testing.T) {
	board := &Board{ID: 1, SessionID: 2, PlayerID: 3, Cells: NewGrid()}
	engine := newTestEngine(&fakeService{board: board})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/board?session_key=abc", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, board.ID, resp.Board.ID)
	assert.Equal(t, board.Cells, resp.Board.Cells)
}

func postBingo(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bingo", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestClaimBingoRejectsMalformedBody(t *testing.T) {
	engine := newTestEngine(&fakeService{})

	w := postBingo(engine, `{"nickname":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postBingo(engine, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimBingoRejectsBadNickname(t *testing.T) {
	engine := newTestEngine(&fakeService{})

	w := postBingo(engine, `{"session_key":"abc","nickname":"spaced out"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClaimBingoStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown session", ErrSessionNotFound, http.StatusUnauthorized},
		{"no board", ErrNoBoard, http.StatusNotFound},
		{"cooldown", ErrClaimCooldown, http.StatusTooManyRequests},
		{"other", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestEngine(&fakeService{claimErr: tc.err})
			w := postBingo(engine, `{"session_key":"abc"}`)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestClaimBingoReturnsClaim(t *testing.T) {
	claim := &Claim{ID: 7, Position: 3, ClaimedAt: time.Now().UTC(), CreatedAt: time.Now().UTC()}
	engine := newTestEngine(&fakeService{claim: claim})

	w := postBingo(engine, `{"session_key":"abc","nickname":"Dauber","note":"row two"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.ID)
	assert.Equal(t, int64(3), resp.Position)
}
