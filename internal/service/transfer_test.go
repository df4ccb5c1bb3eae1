//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/mocks"
)

func testCart() *dto.TransferRequest {
	return &dto.TransferRequest{
		Items: []model.TransferCartItem{
			{
				ProductID:        1,
				Quantity:         2,
				WholesalePackage: "كرتونة 6 قطعة",
				FinalPrice:       10,
				ProductName:      "كوب زجاج",
			},
			{
				ProductID:        2,
				Quantity:         1,
				WholesalePackage: "دستة 4",
				FinalPrice:       5,
				ProductName:      "طبق زجاج",
			},
		},
	}
}

func TestTransferService_Preview(t *testing.T) {
	t.Run("merges server rows with cart items", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{
			{ProductID: 1, Status: model.LineOK},
			{ProductID: 2, Status: model.LineOK},
		}, nil)

		svc := NewTransferService(client, nil)
		preview, err := svc.Preview(context.Background(), testCart())

		require.NoError(t, err)
		require.Len(t, preview.Lines, 2)

		first := preview.Lines[0]
		assert.True(t, first.Matched)
		assert.Equal(t, int64(1), first.ProductID)
		assert.Equal(t, 2, first.FromQuantity)
		assert.Equal(t, 12, first.ToQuantity)
		assert.Equal(t, "كوب زجاج", first.ProductName)

		second := preview.Lines[1]
		assert.True(t, second.Matched)
		assert.Equal(t, 16, second.ToQuantity) // 1 * 4 * 12 / 3

		assert.Equal(t, 2, preview.TransferableCount)
		assert.Equal(t, 0, preview.RejectedCount)
		// 12 * 10 + 16 * 5
		assert.InDelta(t, 200, preview.TotalAmount, 0.001)
		client.AssertExpectations(t)
	})

	t.Run("rejected lines carry the server reason and stay out of totals", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{
			{ProductID: 1, Status: model.LineOK},
			{ProductID: 2, Status: model.LineRejected, Reason: "المخزون غير كافٍ"},
		}, nil)

		svc := NewTransferService(client, nil)
		preview, err := svc.Preview(context.Background(), testCart())

		require.NoError(t, err)
		require.Len(t, preview.Lines, 2)

		rejected := preview.Lines[1]
		assert.Equal(t, model.LineRejected, rejected.Status)
		assert.Equal(t, "المخزون غير كافٍ", rejected.Reason)
		assert.True(t, rejected.Matched)
		// Conversion is still computed for display.
		assert.Equal(t, 16, rejected.ToQuantity)

		assert.Equal(t, 1, preview.TransferableCount)
		assert.Equal(t, 1, preview.RejectedCount)
		assert.InDelta(t, 120, preview.TotalAmount, 0.001)
	})

	t.Run("server row without cart counterpart is kept but unmatched", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{
			{ProductID: 1, Status: model.LineOK},
			{ProductID: 99, Status: model.LineOK},
		}, nil)

		svc := NewTransferService(client, nil)
		preview, err := svc.Preview(context.Background(), testCart())

		require.NoError(t, err)
		require.Len(t, preview.Lines, 2)

		orphan := preview.Lines[1]
		assert.False(t, orphan.Matched)
		assert.Equal(t, int64(99), orphan.ProductID)
		assert.Zero(t, orphan.FromQuantity)
		assert.Zero(t, orphan.ToQuantity)
		// Unmatched lines count as nothing: not transferable, not in totals.
		assert.Equal(t, 1, preview.TransferableCount)
		assert.InDelta(t, 120, preview.TotalAmount, 0.001)
	})

	t.Run("preview of only unmatched rows has nothing transferable", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{
			{ProductID: 98, Status: model.LineOK},
			{ProductID: 99, Status: model.LineOK},
		}, nil)

		svc := NewTransferService(client, nil)
		preview, err := svc.Preview(context.Background(), testCart())

		require.NoError(t, err)
		require.Len(t, preview.Lines, 2)
		assert.Zero(t, preview.TransferableCount)
		assert.Zero(t, preview.TotalAmount)
	})

	t.Run("empty server response yields empty preview", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{}, nil)

		svc := NewTransferService(client, nil)
		preview, err := svc.Preview(context.Background(), testCart())

		require.NoError(t, err)
		assert.Empty(t, preview.Lines)
		assert.Zero(t, preview.TransferableCount)
		assert.Zero(t, preview.TotalAmount)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Preview", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		svc := NewTransferService(client, nil)
		preview, err := svc.Preview(context.Background(), testCart())

		assert.Error(t, err)
		assert.Nil(t, preview)
		assert.ErrorContains(t, err, "transfer preview")
	})
}

func TestTransferService_Execute(t *testing.T) {
	t.Run("returns the authoritative transfer id", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Execute", mock.Anything, mock.Anything).Return(&model.ExecuteResult{TransferID: 4821}, nil)

		svc := NewTransferService(client, nil)
		result, err := svc.Execute(context.Background(), testCart())

		require.NoError(t, err)
		assert.Equal(t, int64(4821), result.TransferID)
		client.AssertExpectations(t)
	})

	t.Run("upstream error propagates", func(t *testing.T) {
		client := new(mocks.MockStockClient)
		client.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		svc := NewTransferService(client, nil)
		result, err := svc.Execute(context.Background(), testCart())

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorContains(t, err, "transfer execute")
	})
}

func TestTransferService_ConversionSummaries(t *testing.T) {
	client := new(mocks.MockStockClient)
	client.On("Preview", mock.Anything, mock.Anything).Return([]model.PreviewResult{
		{ProductID: 1, Status: model.LineOK},
		{ProductID: 2, Status: model.LineOK},
		{ProductID: 3, Status: model.LineOK},
	}, nil)

	req := &dto.TransferRequest{
		Items: []model.TransferCartItem{
			{ProductID: 1, Quantity: 2, WholesalePackage: "كرتونة 6 قطعة"},
			{ProductID: 2, Quantity: 1, WholesalePackage: "دستة 4"},
			{ProductID: 3, Quantity: 3, WholesalePackage: "كرتونة"},
		},
	}

	svc := NewTransferService(client, nil)
	preview, err := svc.Preview(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, preview.Lines, 3)

	// Piece package: destination unit is the piece.
	assert.Contains(t, preview.Lines[0].To, "قطعة")
	assert.Contains(t, preview.Lines[0].To, "12")

	// Dozen package: destination unit is the retail set.
	assert.Contains(t, preview.Lines[1].To, "شيالة")
	assert.Contains(t, preview.Lines[1].To, "16")

	// Pass-through package: carton wording on the from side.
	assert.Contains(t, preview.Lines[2].From, "كرتونة")
}
