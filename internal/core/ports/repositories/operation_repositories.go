package repositories

import (
	"context"

	"github.com/SscSPs/usdt_desk/internal/core/domain"
)

// OperationReaderRepository defines read operations for desk operations.
type OperationReaderRepository interface {
	// ListOperations returns every operation, newest date first.
	ListOperations(ctx context.Context) ([]domain.Operation, error)
	FindOperationByID(ctx context.Context, id int64) (*domain.Operation, error)
}

// OperationWriterRepository defines write operations for desk operations.
type OperationWriterRepository interface {
	// SaveOperation inserts op and returns the generated ID.
	SaveOperation(ctx context.Context, op domain.Operation) (int64, error)
	// UpdateOperation overwrites the mutable columns. Returns apperrors.ErrNotFound
	// when no row has op.ID.
	UpdateOperation(ctx context.Context, op domain.Operation) error
	UpdateOperationStatus(ctx context.Context, id int64, status domain.OperationStatus) error
	// SaveOperations inserts all ops atomically.
	SaveOperations(ctx context.Context, ops []domain.Operation) (int, error)
}

// OperationRepositoryFacade combines all operation repository interfaces.
type OperationRepositoryFacade interface {
	OperationReaderRepository
	OperationWriterRepository
}
