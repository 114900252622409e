//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"classpay/internal/handler/httperr"
	"classpay/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performErrorRequest(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	engine.GET("/bookings", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_RendersRecordedPublicError(t *testing.T) {
	resp := httperr.Response{Status: http.StatusConflict}
	resp.Error.Message = "Transition conflict"

	// A handler that records the error but never writes; the middleware owns
	// the response.
	w := performErrorRequest(t, func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("lost the update race"),
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
		c.Abort()
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Transition conflict", body.Error.Message)
}

func TestErrorHandler_LeavesWrittenResponsesAlone(t *testing.T) {
	w := performErrorRequest(t, func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("no such booking"), "Booking not found", nil)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Booking not found", body.Error.Message)
}

func TestErrorHandler_FallsBackToInternalError(t *testing.T) {
	w := performErrorRequest(t, func(c *gin.Context) {
		_ = c.Error(errors.New("unannotated failure"))
		c.Abort()
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
