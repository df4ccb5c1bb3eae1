package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/mocks"
	"github.com/Mohamed2661994/glass-transfer-service/internal/service"
)

func jwtRouter(auth *mocks.MockAuthService, handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(RequestID(), JWTAuth(auth))
	router.POST("/api/transfer/preview", handler)
	return router
}

func TestJWTAuth(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		setupMocks func(*mocks.MockAuthService)
		wantStatus int
	}{
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(auth *mocks.MockAuthService) {
				claims := &dto.Claims{
					UserID: primitive.NewObjectID(),
					Email:  "cashier@localhost",
					Name:   "Cashier One",
					Roles:  []string{"cashier"},
				}
				auth.On("ValidateToken", mock.Anything, "valid-token").Return(claims, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing authorization header",
			authHeader: "",
			setupMocks: func(auth *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			authHeader: "Token valid-token",
			setupMocks: func(auth *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			setupMocks: func(auth *mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "rejected token",
			authHeader: "Bearer expired-token",
			setupMocks: func(auth *mocks.MockAuthService) {
				auth.On("ValidateToken", mock.Anything, "expired-token").Return(nil, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			tt.setupMocks(auth)

			router := jwtRouter(auth, func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			})

			req := httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			auth.AssertExpectations(t)
		})
	}
}

func TestJWTAuth_OperatorIdentityOnContext(t *testing.T) {
	userID := primitive.NewObjectID()
	claims := &dto.Claims{
		UserID: userID,
		Email:  "manager@localhost",
		Name:   "Store Manager",
		Roles:  []string{"cashier", "manager"},
	}

	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", mock.Anything, "valid-token").Return(claims, nil)

	router := jwtRouter(auth, func(c *gin.Context) {
		gotID, _ := c.Get("user_id")
		assert.Equal(t, userID, gotID)
		gotEmail, _ := c.Get("user_email")
		assert.Equal(t, "manager@localhost", gotEmail)
		gotName, _ := c.Get("user_name")
		assert.Equal(t, "Store Manager", gotName)
		gotRoles, _ := c.Get("user_roles")
		assert.Equal(t, claims.Roles, gotRoles)
		gotClaims, _ := c.Get("user_claims")
		assert.Same(t, claims, gotClaims)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/transfer/preview", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	auth.AssertExpectations(t)
}
