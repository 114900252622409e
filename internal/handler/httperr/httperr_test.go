//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"classpay/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError_WritesEnvelopeAndRecordsError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	cause := errors.New("booking lookup failed")
	httperr.AbortWithError(c, http.StatusNotFound, cause, "Booking not found", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Booking not found", body.Error.Message)

	// The original error must survive on the context for log enrichment.
	require.Len(t, c.Errors, 1)
	assert.Equal(t, cause, c.Errors[0].Err)
	assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
}

func TestAbortWithError_PanicsOnNilError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid request", nil)
	})
}
