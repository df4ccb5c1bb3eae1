//go:build !integration

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed2661994/glass-transfer-service/internal/circuitbreaker"
)

type checkerFunc func() error

func (f checkerFunc) Check() error { return f() }

func serveReadiness(handler *HealthHandler) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	return w
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness_NoCheckers(t *testing.T) {
	w := serveReadiness(NewHealthHandler())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"ok"`)
}

func TestHealthHandler_Readiness_HealthyDependencies(t *testing.T) {
	handler := NewHealthHandler()
	handler.RegisterChecker("mongodb", checkerFunc(func() error { return nil }))
	handler.RegisterCircuitBreaker("wholesale_upstream", circuitbreaker.New(circuitbreaker.DefaultConfig()))

	w := serveReadiness(handler)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string                 `json:"status"`
		Checks map[string]interface{} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Checks["mongodb"])
	assert.Equal(t, "closed", resp.Checks["wholesale_upstream_circuit"])
}

func TestHealthHandler_Readiness_FailingChecker(t *testing.T) {
	handler := NewHealthHandler()
	handler.RegisterChecker("mongodb", checkerFunc(func() error {
		return errors.New("connection refused")
	}))

	w := serveReadiness(handler)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHealthHandler_Readiness_OpenCircuit(t *testing.T) {
	cfg := circuitbreaker.DefaultConfig()
	cfg.FailureThreshold = 1
	cb := circuitbreaker.New(cfg)
	_ = cb.Execute(context.Background(), func() error {
		return errors.New("upstream down")
	})
	require.True(t, cb.IsOpen())

	handler := NewHealthHandler()
	handler.RegisterCircuitBreaker("wholesale_upstream", cb)

	w := serveReadiness(handler)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"wholesale_upstream_circuit":"open"`)
}
