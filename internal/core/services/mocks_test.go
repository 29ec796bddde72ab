package services_test

import (
	"context"

	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/SscSPs/usdt_desk/internal/core/ports"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchEURUSD(ctx context.Context) (ports.RateQuote, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.RateQuote), args.Error(1)
}

// --- Mock Dialog ---
type MockDialog struct {
	mock.Mock
}

func (m *MockDialog) Prompt(ctx context.Context, message string) (string, bool, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockDialog) Alert(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// --- Mock Clipboard ---
type MockClipboard struct {
	mock.Mock
}

func (m *MockClipboard) WriteText(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// --- Mock URLOpener ---
type MockURLOpener struct {
	mock.Mock
}

func (m *MockURLOpener) Open(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// --- Mock OperationRepository ---
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) FindOperationByID(ctx context.Context, id int64) (*domain.Operation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operation), args.Error(1)
}

func (m *MockOperationRepository) SaveOperation(ctx context.Context, op domain.Operation) (int64, error) {
	args := m.Called(ctx, op)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOperationRepository) UpdateOperation(ctx context.Context, op domain.Operation) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperationRepository) UpdateOperationStatus(ctx context.Context, id int64, status domain.OperationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOperationRepository) SaveOperations(ctx context.Context, ops []domain.Operation) (int, error) {
	args := m.Called(ctx, ops)
	return args.Int(0), args.Error(1)
}

var (
	_ ports.RateProvider                  = (*MockRateProvider)(nil)
	_ ports.Dialog                        = (*MockDialog)(nil)
	_ ports.Clipboard                     = (*MockClipboard)(nil)
	_ ports.URLOpener                     = (*MockURLOpener)(nil)
	_ portsrepo.OperationRepositoryFacade = (*MockOperationRepository)(nil)
)
