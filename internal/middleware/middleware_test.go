package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/inventory_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware_PutsLoggerInRequestContext(t *testing.T) {
	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))

	var requestID string
	var found bool
	var sameLogger bool
	router.GET("/ping", func(c *gin.Context) {
		requestID, found = middleware.GetRequestIDFromCtx(c.Request.Context())
		sameLogger = middleware.GetLoggerFromCtx(c.Request.Context()) == middleware.GetLoggerFromContext(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, found)
	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.True(t, sameLogger)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(req.Context()))
}

func TestRateLimit_BlocksAfterBudget(t *testing.T) {
	instance, err := middleware.NewRateLimiter("2-M", "")
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware.RateLimit(instance))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRateLimiter_RejectsBadInput(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots", "")
	assert.Error(t, err)

	_, err = middleware.NewRateLimiter("10-M", "not a url")
	assert.Error(t, err)
}
