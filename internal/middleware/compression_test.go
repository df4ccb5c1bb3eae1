package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression_GzipAccepted(t *testing.T) {
	payload := strings.Repeat(`{"product_id":1,"to_quantity":12}`, 50)

	router := gin.New()
	router.Use(Compression())
	router.GET("/api/transfer/history", func(c *gin.Context) {
		c.String(http.StatusOK, payload)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transfer/history", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	reader, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, payload, string(decompressed))
}

func TestCompression_NotAccepted(t *testing.T) {
	router := gin.New()
	router.Use(Compression())
	router.GET("/api/transfer/history", func(c *gin.Context) {
		c.String(http.StatusOK, "plain")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/transfer/history", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", w.Body.String())
}
