//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"classpay/internal/handler/middleware"
	"classpay/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.LogConfig{
		Level:      "error",
		TimeZone:   "UTC",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	}

	var requestID string
	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(cfg))
	engine.GET("/bookings", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, requestID)
}
