// Package middleware provides role-based authorization middleware.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/i18n"
)

// RequireRoles lets the request through when the authenticated operator
// holds at least one of the given roles. With no roles given, any
// authenticated operator passes. Must run after JWTAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		deny := func(status int, code, errKey string) {
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(errKey, locale)
			errorResp := dto.NewError(code, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(status, errorResp)
		}

		claimsInterface, exists := c.Get("user_claims")
		if !exists {
			deny(http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		claims, ok := claimsInterface.(*dto.Claims)
		if !ok {
			deny(http.StatusUnauthorized, dto.ErrCodeUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		if len(roles) > 0 && !holdsAny(claims.Roles, roles) {
			deny(http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
			return
		}

		c.Next()
	}
}

func holdsAny(held, required []string) bool {
	for _, want := range required {
		for _, role := range held {
			if role == want {
				return true
			}
		}
	}
	return false
}
