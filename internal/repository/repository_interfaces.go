// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
)

// ReceiptsRepositoryInterface defines transfer receipt repository operations.
type ReceiptsRepositoryInterface interface {
	Create(ctx context.Context, receipt *TransferReceipt) error
	FindByTransferID(ctx context.Context, transferID int64) (*TransferReceipt, error)
	List(ctx context.Context, limit int) ([]TransferReceipt, error)
}

// LogsRepositoryInterface defines logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

// UserRepositoryInterface defines user repository operations.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}
