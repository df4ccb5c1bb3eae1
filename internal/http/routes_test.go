//go:build !integration

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/mocks"
)

func routeSet(router *gin.Engine) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestNewAuthRoutes(t *testing.T) {
	authService := new(mocks.MockAuthService)
	routes := NewAuthRoutes(authService)

	assert.NotNil(t, routes)
	assert.NotNil(t, routes.handler)
}

func TestAuthRoutes_RegisterPublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")

	NewAuthRoutes(new(mocks.MockAuthService)).RegisterPublicRoutes(api)

	registered := routeSet(router)
	assert.True(t, registered["POST /api/auth/login"])
	assert.True(t, registered["POST /api/auth/refresh"])
}

func TestTransferRoutes_RegisterPublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")

	handler := newTestHandler(new(mocks.MockStockClient), nil)
	defer handler.Close()
	NewTransferRoutes(handler).RegisterPublicRoutes(api)

	registered := routeSet(router)
	assert.True(t, registered["POST /api/transfer/preview"])
	assert.True(t, registered["POST /api/transfer/execute"])
	assert.True(t, registered["POST /api/transfer/cancel"])
	assert.True(t, registered["GET /api/transfer/history"])
}

func TestTransferRoutes_ExecuteRequiresManagerRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	routerWithRoles := func(t *testing.T, roles []string) *gin.Engine {
		auth := new(mocks.MockAuthService)
		auth.On("ValidateToken", mock.Anything, "operator-token").Return(&dto.Claims{
			Email: "operator@localhost",
			Roles: roles,
		}, nil)

		router := gin.New()
		api := router.Group("/api")
		cfg := DefaultRouterConfig()

		stock := new(mocks.MockStockClient)
		stock.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{}, nil).Maybe()
		handler := newTestHandler(stock, nil)
		t.Cleanup(handler.Close)

		protected := NewAuthRoutes(auth).GetProtectedGroup(api, &cfg)
		NewTransferRoutes(handler).RegisterProtectedRoutes(protected, &cfg)
		return router
	}

	execute := func(router *gin.Engine) *httptest.ResponseRecorder {
		body := bytes.NewBufferString(`{"session_id":"2f1f3a2e-0000-4000-8000-000000000000"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/transfer/execute", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer operator-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("cashier is refused", func(t *testing.T) {
		router := routerWithRoles(t, []string{model.RoleCashier})

		w := execute(router)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), dto.ErrCodeForbidden)
	})

	t.Run("manager passes the role gate", func(t *testing.T) {
		router := routerWithRoles(t, []string{model.RoleManager})

		// The unknown session 404s in the handler, past the role check.
		w := execute(router)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("preview stays open to cashiers", func(t *testing.T) {
		router := routerWithRoles(t, []string{model.RoleCashier})

		body := bytes.NewBufferString(`{"items":[{"product_id":7,"quantity":1,"wholesale_package":"كرتونة"}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/transfer/preview", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer operator-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, http.StatusForbidden, w.Code)
	})
}

func TestTransferRoutes_RegisterProtectedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")

	cfg := DefaultRouterConfig()
	handler := newTestHandler(new(mocks.MockStockClient), nil)
	defer handler.Close()

	authRoutes := NewAuthRoutes(new(mocks.MockAuthService))
	protected := authRoutes.GetProtectedGroup(api, &cfg)
	NewTransferRoutes(handler).RegisterProtectedRoutes(protected, &cfg)

	registered := routeSet(router)
	assert.True(t, registered["POST /api/transfer/preview"])
	assert.True(t, registered["POST /api/transfer/execute"])
	assert.True(t, registered["POST /api/transfer/cancel"])
	assert.True(t, registered["GET /api/transfer/history"])
}
