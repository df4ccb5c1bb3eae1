package upstream

import (
	"context"

	"github.com/Mohamed2661994/glass-transfer-service/internal/circuitbreaker"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
)

// ClientWithCircuitBreaker wraps a StockClient with circuit breaker
// protection. Only preview calls are short-circuited: an execute request
// must always reach the wire once issued, since refusing it locally is
// indistinguishable from an upstream failure to the caller and the
// operation is explicitly user-confirmed.
type ClientWithCircuitBreaker struct {
	client         StockClient
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClientWithCircuitBreaker creates a new client wrapper with circuit breaker.
func NewClientWithCircuitBreaker(client StockClient, cb *circuitbreaker.CircuitBreaker) *ClientWithCircuitBreaker {
	return &ClientWithCircuitBreaker{
		client:         client,
		circuitBreaker: cb,
	}
}

// Preview runs the read-only call with circuit breaker protection.
func (c *ClientWithCircuitBreaker) Preview(ctx context.Context, req *dto.TransferRequest) ([]model.PreviewResult, error) {
	var results []model.PreviewResult
	err := c.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		results, cbErr = c.client.Preview(ctx, req)
		return cbErr
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Execute forwards to the wrapped client unconditionally, bypassing the
// breaker state entirely.
func (c *ClientWithCircuitBreaker) Execute(ctx context.Context, req *dto.TransferRequest) (*model.ExecuteResult, error) {
	return c.client.Execute(ctx, req)
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (c *ClientWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}
