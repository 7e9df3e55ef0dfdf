// handlers_health_test.go - Tests for health check handler
package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_HandleHealth(t *testing.T) {
	handler := NewHealthHandler("1.2.3")

	c, rec := newContext(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if assert.NoError(t, handler.HandleHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)
	}
}
