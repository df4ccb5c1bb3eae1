// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/dto"
	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
)

type MockStockClient struct {
	mock.Mock
}

func (m *MockStockClient) Preview(ctx context.Context, req *dto.TransferRequest) ([]model.PreviewResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PreviewResult), args.Error(1)
}

func (m *MockStockClient) Execute(ctx context.Context, req *dto.TransferRequest) (*model.ExecuteResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExecuteResult), args.Error(1)
}
