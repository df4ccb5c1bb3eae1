package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func timeoutRouter(cfg TimeoutConfig, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(cfg))
	router.POST("/api/transfer/preview", handler)
	return router
}

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
}

func TestTimeout_CompletesInTime(t *testing.T) {
	router := timeoutRouter(TimeoutConfig{Timeout: time.Second, ErrorMessage: "timeout"}, func(c *gin.Context) {
		time.Sleep(10 * time.Millisecond)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout_SlowHandlerGetsGatewayTimeout(t *testing.T) {
	release := make(chan struct{})
	router := timeoutRouter(TimeoutConfig{Timeout: 20 * time.Millisecond, ErrorMessage: "timeout"}, func(c *gin.Context) {
		<-release
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil))
	close(release)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestTimeout_HandlerSeesDeadline(t *testing.T) {
	hasDeadline := false
	router := timeoutRouter(TimeoutConfig{Timeout: time.Second, ErrorMessage: "timeout"}, func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil))

	assert.True(t, hasDeadline)
}

func TestTimeoutWithDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TimeoutWithDuration(time.Second))
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
