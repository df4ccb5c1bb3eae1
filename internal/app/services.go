// Package app provides service initialization.
package app

import (
	"github.com/Mohamed2661994/glass-transfer-service/config"
	"github.com/Mohamed2661994/glass-transfer-service/internal/circuitbreaker"
	"github.com/Mohamed2661994/glass-transfer-service/internal/service"
	"github.com/Mohamed2661994/glass-transfer-service/internal/upstream"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Transfers           service.TransferService
	StockCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeServices initializes the stock client, the unit converter and
// the transfer service on top of them.
func InitializeServices(cfg config.Config) *ServiceComponents {
	clientOpts := []upstream.ClientOption{
		upstream.WithTimeout(cfg.Upstream.Timeout),
	}
	if cfg.Upstream.APIKey != "" {
		clientOpts = append(clientOpts, upstream.WithAPIKey(cfg.Upstream.APIKey))
	}
	client := upstream.NewClient(cfg.Upstream.BaseURL, clientOpts...)

	stockCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Upstream.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Upstream.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Upstream.CircuitBreakerTimeout,
		Name:             "stock-service",
	})
	protectedClient := upstream.NewClientWithCircuitBreaker(client, stockCB)

	var converterOpts []service.ConverterOption
	if cfg.Conversion.PiecesPerDozen > 0 {
		converterOpts = append(converterOpts, service.WithPiecesPerDozen(cfg.Conversion.PiecesPerDozen))
	}
	if cfg.Conversion.PiecesPerRetailSet > 0 {
		converterOpts = append(converterOpts, service.WithPiecesPerRetailUnit(cfg.Conversion.PiecesPerRetailSet))
	}
	converter := service.NewUnitConverterService(converterOpts...)

	transfers := service.NewTransferService(protectedClient, converter)

	return &ServiceComponents{
		Transfers:           transfers,
		StockCircuitBreaker: stockCB,
	}
}
