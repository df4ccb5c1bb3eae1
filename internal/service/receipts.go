package service

import (
	"context"
	"errors"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a required repository is missing.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ReceiptsService provides access to executed-transfer receipts.
type ReceiptsService interface {
	Record(ctx context.Context, result *model.ExecuteResult, preview *model.TransferPreview, requestID, executedBy string) error
	Recent(ctx context.Context, limit int) ([]repository.TransferReceipt, error)
}

// ReceiptsServiceImpl implements ReceiptsService.
type ReceiptsServiceImpl struct {
	receiptsRepo repository.ReceiptsRepositoryInterface
}

// NewReceiptsService creates a new receipts service.
func NewReceiptsService(receiptsRepo repository.ReceiptsRepositoryInterface) ReceiptsService {
	return &ReceiptsServiceImpl{
		receiptsRepo: receiptsRepo,
	}
}

// Record stores a receipt for an executed transfer. Only transferable
// lines make it into the receipt; rejected lines were never part of the
// committed stock movement.
func (s *ReceiptsServiceImpl) Record(ctx context.Context, result *model.ExecuteResult, preview *model.TransferPreview, requestID, executedBy string) error {
	if s.receiptsRepo == nil {
		return ErrRepositoryNotConfigured
	}

	receipt := &repository.TransferReceipt{
		TransferID:  result.TransferID,
		RequestID:   requestID,
		TotalAmount: preview.TotalAmount,
		ExecutedBy:  executedBy,
	}
	for _, line := range preview.Lines {
		if !line.Transferable() {
			continue
		}
		receipt.Lines = append(receipt.Lines, repository.ReceiptLine{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			FromQuantity: line.FromQuantity,
			ToQuantity:   line.ToQuantity,
			FinalPrice:   line.FinalPrice,
		})
	}

	return s.receiptsRepo.Create(ctx, receipt)
}

// Recent returns the most recent receipts, newest first.
func (s *ReceiptsServiceImpl) Recent(ctx context.Context, limit int) ([]repository.TransferReceipt, error) {
	if s.receiptsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.receiptsRepo.List(ctx, limit)
}
