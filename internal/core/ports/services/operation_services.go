package services

import (
	"context"

	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/SscSPs/usdt_desk/internal/dto"
)

// OperationReaderSvc defines read operations for desk operations
type OperationReaderSvc interface {
	ListOperations(ctx context.Context) ([]domain.Operation, error)
}

// OperationWriterSvc defines write operations for desk operations
type OperationWriterSvc interface {
	CreateOperation(ctx context.Context, req dto.CreateOperationRequest) (*domain.Operation, error)
	UpdateOperation(ctx context.Context, id int64, req dto.UpdateOperationRequest) (*domain.Operation, error)
	// DeleteOperation marks the operation as domain.StatusDeleted; nothing is removed.
	DeleteOperation(ctx context.Context, id int64) error
}

// BackupSvc exports and restores the operations table.
type BackupSvc interface {
	ExportBackup(ctx context.Context) ([][]any, error)
	ImportBackup(ctx context.Context, req dto.ImportBackupRequest) (int, error)
}

// OperationSvcFacade combines all operation-related service interfaces
type OperationSvcFacade interface {
	OperationReaderSvc
	OperationWriterSvc
	BackupSvc
}
