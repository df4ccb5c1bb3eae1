//go:build !integration

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
)

func bindContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/transfer/preview", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBuildRequest(t *testing.T) {
	c := bindContext(t, `{"session_id":"sess-1"}`)

	req, err := BuildRequest[dto.ExecuteTransferRequest](c)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", req.SessionID)
}

func TestBuildRequest_MalformedJSON(t *testing.T) {
	c := bindContext(t, `{invalid`)

	req, err := BuildRequest[dto.ExecuteTransferRequest](c)
	assert.Error(t, err)
	assert.Nil(t, req)
}

func TestBuildRequestAndValidate(t *testing.T) {
	t.Run("valid cart", func(t *testing.T) {
		c := bindContext(t, `{"items": [{"product_id": 1, "quantity": 2, "wholesale_package": "كرتونة 6 قطعة"}]}`)

		req, err := BuildRequestAndValidate[dto.TransferRequest](c)
		require.NoError(t, err)
		require.NotNil(t, req)
		assert.Len(t, req.Items, 1)
	})

	t.Run("duplicate product fails validation", func(t *testing.T) {
		c := bindContext(t, `{"items": [{"product_id": 1, "quantity": 2}, {"product_id": 1, "quantity": 1}]}`)

		_, err := BuildRequestAndValidate[dto.TransferRequest](c)
		assert.ErrorIs(t, err, dto.ErrDuplicateProduct)
	})

	t.Run("non-positive quantity fails binding", func(t *testing.T) {
		c := bindContext(t, `{"items": [{"product_id": 1, "quantity": 2}, {"product_id": 2, "quantity": -1}]}`)

		_, err := BuildRequestAndValidate[dto.TransferRequest](c)
		assert.Error(t, err)
	})
}
