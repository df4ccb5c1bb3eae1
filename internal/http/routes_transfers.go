package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/middleware"
)

// TransferRoutes handles transfer route registration.
type TransferRoutes struct {
	handler *Handler
}

// NewTransferRoutes creates a new TransferRoutes instance.
func NewTransferRoutes(handler *Handler) *TransferRoutes {
	return &TransferRoutes{handler: handler}
}

// RegisterPublicRoutes registers transfer routes without authentication.
func (r *TransferRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	transfer := rg.Group("/transfer")
	{
		transfer.POST("/preview", r.handler.PreviewTransfer)
		transfer.POST("/execute", r.handler.ExecuteTransfer)
		transfer.POST("/cancel", r.handler.CancelTransfer)
		transfer.GET("/history", r.handler.TransferHistory)
	}
}

// RegisterProtectedRoutes registers transfer routes behind JWT auth.
// Execution moves stock, so it additionally requires the manager role.
func (r *TransferRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	transfer := rg.Group("/transfer")
	{
		transfer.POST("/preview", r.handler.PreviewTransfer)
		transfer.POST("/execute",
			middleware.RequireRoles(model.RoleManager),
			r.handler.ExecuteTransfer)
		transfer.POST("/cancel", r.handler.CancelTransfer)
		transfer.GET("/history", r.handler.TransferHistory)
	}
}
