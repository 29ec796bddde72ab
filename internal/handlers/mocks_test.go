package handlers_test

import (
	"context"

	"github.com/SscSPs/usdt_desk/internal/core/domain"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock QuoteService ---
type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Quote(ctx context.Context, amountText string) (domain.Conversion, error) {
	args := m.Called(ctx, amountText)
	return args.Get(0).(domain.Conversion), args.Error(1)
}

var _ portssvc.QuoteSvc = (*MockQuoteService)(nil)

// --- Mock LauncherService ---
type MockLauncherService struct {
	mock.Mock
}

func (m *MockLauncherService) Launch(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockLauncherService) URL() string {
	args := m.Called()
	return args.String(0)
}

var _ portssvc.LauncherSvc = (*MockLauncherService)(nil)

// --- Mock OperationService ---
type MockOperationService struct {
	mock.Mock
}

func (m *MockOperationService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

func (m *MockOperationService) CreateOperation(ctx context.Context, req dto.CreateOperationRequest) (*domain.Operation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationService) UpdateOperation(ctx context.Context, id int64, req dto.UpdateOperationRequest) (*domain.Operation, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationService) DeleteOperation(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOperationService) ExportBackup(ctx context.Context) ([][]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]any), args.Error(1)
}

func (m *MockOperationService) ImportBackup(ctx context.Context, req dto.ImportBackupRequest) (int, error) {
	args := m.Called(ctx, req)
	return args.Int(0), args.Error(1)
}

var _ portssvc.OperationSvcFacade = (*MockOperationService)(nil)
