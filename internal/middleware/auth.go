package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/i18n"
)

const (
	// APIKeyHeader is where POS terminals send their station key.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the fallback query parameter for clients that
	// cannot set headers.
	APIKeyQuery = "api_key"
)

// APIKeyAuth rejects requests that do not carry a known station key.
// The header wins over the query parameter. An empty validKeys map
// disables the check entirely.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		if key == "" {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyAPIKeyRequired, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if !validKeys[key] {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyInvalidAPIKey, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Next()
	}
}
