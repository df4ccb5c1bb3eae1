// Package repository provides data access for transfer receipts.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReceiptLine is one executed line stored inside a receipt document.
type ReceiptLine struct {
	ProductID    int64   `bson:"product_id" json:"product_id"`
	ProductName  string  `bson:"product_name,omitempty" json:"product_name,omitempty"`
	FromQuantity int     `bson:"from_quantity" json:"from_quantity"`
	ToQuantity   int     `bson:"to_quantity" json:"to_quantity"`
	FinalPrice   float64 `bson:"final_price" json:"final_price"`
}

// TransferReceipt is the local record of an executed transfer. The
// upstream stock service remains the source of truth; receipts exist for
// the reporting screens and audit trail only.
type TransferReceipt struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TransferID  int64              `bson:"transfer_id" json:"transfer_id"`
	RequestID   string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Lines       []ReceiptLine      `bson:"lines" json:"lines"`
	TotalAmount float64            `bson:"total_amount" json:"total_amount"`
	ExecutedBy  string             `bson:"executed_by,omitempty" json:"executed_by,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// ReceiptsRepository provides methods for transfer receipt operations.
type ReceiptsRepository struct {
	collection *mongo.Collection
}

// NewReceiptsRepository creates a new receipts repository.
func NewReceiptsRepository(db *MongoDB) *ReceiptsRepository {
	return &ReceiptsRepository{
		collection: db.Receipts,
	}
}

// Create stores a receipt for an executed transfer.
func (r *ReceiptsRepository) Create(ctx context.Context, receipt *TransferReceipt) error {
	if receipt.ID.IsZero() {
		receipt.ID = primitive.NewObjectID()
	}
	if receipt.CreatedAt.IsZero() {
		receipt.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, receipt)
	return err
}

// FindByTransferID returns the receipt for the given upstream transfer id,
// nil when none exists.
func (r *ReceiptsRepository) FindByTransferID(ctx context.Context, transferID int64) (*TransferReceipt, error) {
	var receipt TransferReceipt
	err := r.collection.FindOne(ctx, bson.M{"transfer_id": transferID}).Decode(&receipt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// List returns the most recent receipts, newest first.
func (r *ReceiptsRepository) List(ctx context.Context, limit int) ([]TransferReceipt, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var receipts []TransferReceipt
	if err := cursor.All(ctx, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}
