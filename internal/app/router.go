// Package app provides router configuration.
package app

import (
	"github.com/Mohamed2661994/glass-transfer-service/config"
	"github.com/Mohamed2661994/glass-transfer-service/internal/http"
	"github.com/Mohamed2661994/glass-transfer-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var receiptsService service.ReceiptsService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
		if dbComponents.ReceiptsRepo != nil {
			receiptsService = service.NewReceiptsService(dbComponents.ReceiptsRepo)
		}
	}

	handler := http.NewHandler(serviceComponents.Transfers, receiptsService)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if serviceComponents.StockCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("stock_service", serviceComponents.StockCircuitBreaker)
	}
	if dbComponents != nil {
		if dbComponents.ReceiptsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_receipts", dbComponents.ReceiptsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(dbComponents.UserRepo, cfg.Auth)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		AuthService:       authService,
		ReceiptsService:   receiptsService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
