// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/Mohamed2661994/glass-transfer-service/internal/circuitbreaker"
)

// ReceiptsRepositoryWithCircuitBreaker wraps ReceiptsRepository with circuit breaker protection.
type ReceiptsRepositoryWithCircuitBreaker struct {
	repo           *ReceiptsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewReceiptsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewReceiptsRepositoryWithCircuitBreaker(repo *ReceiptsRepository, cb *circuitbreaker.CircuitBreaker) *ReceiptsRepositoryWithCircuitBreaker {
	return &ReceiptsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a receipt with circuit breaker protection. When the
// circuit is open the write is skipped: the upstream transfer already
// committed, so the receipt must not block the response.
func (r *ReceiptsRepositoryWithCircuitBreaker) Create(ctx context.Context, receipt *TransferReceipt) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, receipt)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// FindByTransferID looks up a receipt with circuit breaker protection.
func (r *ReceiptsRepositoryWithCircuitBreaker) FindByTransferID(ctx context.Context, transferID int64) (*TransferReceipt, error) {
	var result *TransferReceipt
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByTransferID(ctx, transferID)
		return cbErr
	})
	return result, err
}

// List returns recent receipts with circuit breaker protection.
func (r *ReceiptsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]TransferReceipt, error) {
	var result []TransferReceipt
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ReceiptsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// Logging is non-critical, so an open circuit fails silently.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the matching log entry count with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
