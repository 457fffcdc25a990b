package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bingo-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// With no backing services wired the checker has nothing to probe and
// reports healthy.
func TestCheckWithoutServices(t *testing.T) {
	engine := gin.New()
	h := NewHandler(&utils.HealthChecker{})
	engine.GET("/api/health", h.Check)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var status utils.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Empty(t, status.Services)
	assert.False(t, status.Timestamp.IsZero())
}
