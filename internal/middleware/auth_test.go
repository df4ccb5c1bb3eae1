package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveWithAPIKeys(keys map[string]bool, setup func(*http.Request)) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(APIKeyAuth(keys))
	router.POST("/api/transfer/preview", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAPIKeyAuth(t *testing.T) {
	validKeys := map[string]bool{"terminal-key-1": true, "terminal-key-2": true}

	t.Run("valid key in header", func(t *testing.T) {
		w := serveWithAPIKeys(validKeys, func(req *http.Request) {
			req.Header.Set(APIKeyHeader, "terminal-key-1")
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid key in query string", func(t *testing.T) {
		w := serveWithAPIKeys(validKeys, func(req *http.Request) {
			req.URL.RawQuery = "api_key=terminal-key-2"
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		w := serveWithAPIKeys(validKeys, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "API key is required")
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		w := serveWithAPIKeys(validKeys, func(req *http.Request) {
			req.Header.Set(APIKeyHeader, "revoked-key")
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid API key")
	})

	t.Run("disabled when no keys configured", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, serveWithAPIKeys(nil, nil).Code)
		assert.Equal(t, http.StatusOK, serveWithAPIKeys(map[string]bool{}, nil).Code)
	})
}
