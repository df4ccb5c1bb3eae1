package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/metrics"
	"github.com/Mohamed2661994/glass-transfer-service/internal/upstream"
)

// Destination unit labels used in the human-readable conversion summaries.
const (
	cartonLabel     = "كرتونة"
	retailUnitLabel = "شيالة"
	pieceLabel      = "قطعة"
)

// TransferService orchestrates the two-phase wholesale-to-retail transfer:
// a read-only preview merged with local cart detail, and the side-effecting
// execute call against the authoritative stock service.
type TransferService interface {
	Preview(ctx context.Context, req *dto.TransferRequest) (*model.TransferPreview, error)
	Execute(ctx context.Context, req *dto.TransferRequest) (*model.ExecuteResult, error)
}

// TransferServiceImpl implements TransferService.
type TransferServiceImpl struct {
	client    upstream.StockClient
	converter UnitConverter
}

// NewTransferService creates a transfer service backed by the given stock client.
func NewTransferService(client upstream.StockClient, converter UnitConverter) *TransferServiceImpl {
	if converter == nil {
		converter = NewUnitConverterService()
	}
	return &TransferServiceImpl{
		client:    client,
		converter: converter,
	}
}

// Preview issues the read-only upstream call and merges the authoritative
// per-product rows with the cart. One line is produced per server row; the
// server's status and reason are carried unchanged.
func (s *TransferServiceImpl) Preview(ctx context.Context, req *dto.TransferRequest) (*model.TransferPreview, error) {
	rows, err := s.client.Preview(ctx, req)
	if err != nil {
		metrics.RecordPreview("error")
		return nil, fmt.Errorf("transfer preview: %w", err)
	}

	byProduct := make(map[int64]model.TransferCartItem, len(req.Items))
	for _, item := range req.Items {
		byProduct[item.ProductID] = item
	}

	preview := &model.TransferPreview{
		Lines: make([]model.TransferLineView, 0, len(rows)),
	}

	for _, row := range rows {
		line := s.buildLine(row, byProduct)
		if !line.Matched {
			// A preview row with no cart counterpart means the gateway and
			// the stock service disagree about the request. Keep the row so
			// the user sees everything the server reported, but flag it.
			metrics.TransferUnmatchedLines.Inc()
			log.Warn().
				Int64("product_id", row.ProductID).
				Msg("Preview row has no matching cart item")
		}
		if line.Status == model.LineRejected {
			metrics.TransferRejectedLines.Inc()
			preview.RejectedCount++
		}
		if line.Transferable() {
			preview.TransferableCount++
			preview.TotalAmount += line.FinalPrice * float64(line.ToQuantity)
		}
		preview.Lines = append(preview.Lines, line)
	}

	metrics.RecordPreview("success")
	return preview, nil
}

// Execute commits the transfer upstream. Callers are responsible for the
// confirmation protocol (see Workflow); this method only forwards the
// cart-derived payload and returns the authoritative transfer identifier.
func (s *TransferServiceImpl) Execute(ctx context.Context, req *dto.TransferRequest) (*model.ExecuteResult, error) {
	result, err := s.client.Execute(ctx, req)
	if err != nil {
		metrics.RecordExecution("error")
		return nil, fmt.Errorf("transfer execute: %w", err)
	}

	metrics.RecordExecution("success")
	log.Info().
		Int64("transfer_id", result.TransferID).
		Int("items", len(req.Items)).
		Msg("Transfer executed")
	return result, nil
}

// buildLine joins one server row with its cart item and applies the converter.
func (s *TransferServiceImpl) buildLine(row model.PreviewResult, byProduct map[int64]model.TransferCartItem) model.TransferLineView {
	line := model.TransferLineView{
		ProductID: row.ProductID,
		Status:    row.Status,
		Reason:    row.Reason,
	}

	item, ok := byProduct[row.ProductID]
	if !ok {
		// Enrichment degrades to zero values; Matched stays false.
		return line
	}

	desc := model.ParsePackage(item.WholesalePackage)
	conv := s.converter.Convert(desc, item.Quantity)

	line.Matched = true
	line.FromQuantity = item.Quantity
	line.ToQuantity = conv.ToQuantity
	line.FinalPrice = item.FinalPrice
	line.Manufacturer = item.Manufacturer
	line.ProductName = item.ProductName
	line.From, line.To = summarize(desc, conv, item.Quantity)
	return line
}

// summarize builds the human-readable from/to strings shown on the review
// screen. The formats mirror the POS front-end wording.
func summarize(desc model.PackageDescriptor, conv Conversion, cartons int) (from, to string) {
	if desc.UnitCount > 0 {
		from = fmt.Sprintf("%d %s %d", cartons, conv.UnitName, desc.UnitCount)
		to = fmt.Sprintf("%d %s", conv.ToQuantity, destinationLabel(desc))
		return from, to
	}
	from = fmt.Sprintf("من: %d %s", cartons, cartonLabel)
	to = fmt.Sprintf(" %d %s", conv.ToQuantity, conv.UnitName)
	return from, to
}

// destinationLabel names the unit the stock lands in after conversion.
func destinationLabel(desc model.PackageDescriptor) string {
	if desc.IsDozen() {
		return retailUnitLabel
	}
	return pieceLabel
}
