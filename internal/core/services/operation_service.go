package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/dto"
)

// operationService implements the OperationSvcFacade interface
type operationService struct {
	BaseService
	operationRepo portsrepo.OperationRepositoryFacade
	now           func() time.Time
}

// OperationServiceOption is a functional option for configuring the operation service
type OperationServiceOption func(*operationService)

// WithClock overrides the time source used for operation dates.
func WithClock(now func() time.Time) OperationServiceOption {
	return func(s *operationService) {
		s.now = now
	}
}

// NewOperationService creates a new operation service with the provided options
func NewOperationService(repo portsrepo.OperationRepositoryFacade, options ...OperationServiceOption) portssvc.OperationSvcFacade {
	svc := &operationService{
		operationRepo: repo,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.OperationSvcFacade = (*operationService)(nil)

func (s *operationService) timestamp() time.Time {
	return s.now().Truncate(time.Second)
}

func statusOrDefault(status domain.OperationStatus) domain.OperationStatus {
	if status == "" {
		return domain.StatusCompleted
	}
	return status
}

func (s *operationService) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	ops, err := s.operationRepo.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return ops, nil
}

func (s *operationService) CreateOperation(ctx context.Context, req dto.CreateOperationRequest) (*domain.Operation, error) {
	op := domain.Operation{
		Type:   req.Type,
		Client: req.Client,
		Amount: req.Amount,
		USDT:   req.USDT,
		Date:   s.timestamp(),
		Status: statusOrDefault(req.Status),
	}

	id, err := s.operationRepo.SaveOperation(ctx, op)
	if err != nil {
		s.LogError(ctx, err, "Failed to save operation", slog.String("client", op.Client))
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}
	op.ID = id

	s.LogInfo(ctx, "Operation created", slog.Int64("operation_id", id))
	return &op, nil
}

// UpdateOperation overwrites type, client, amount, usdt and status. The date is kept.
func (s *operationService) UpdateOperation(ctx context.Context, id int64, req dto.UpdateOperationRequest) (*domain.Operation, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("operation id must be positive")
	}

	op := domain.Operation{
		ID:     id,
		Type:   req.Type,
		Client: req.Client,
		Amount: req.Amount,
		USDT:   req.USDT,
		Status: req.Status,
	}
	if err := s.operationRepo.UpdateOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("failed to update operation %d: %w", id, err)
	}

	updated, err := s.operationRepo.FindOperationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload operation %d: %w", id, err)
	}
	return updated, nil
}

func (s *operationService) DeleteOperation(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("operation id must be positive")
	}
	if err := s.operationRepo.UpdateOperationStatus(ctx, id, domain.StatusDeleted); err != nil {
		return fmt.Errorf("failed to delete operation %d: %w", id, err)
	}
	s.LogInfo(ctx, "Operation marked as deleted", slog.Int64("operation_id", id))
	return nil
}

// ExportBackup returns every operation as a positional row, see domain.Operation.Row.
func (s *operationService) ExportBackup(ctx context.Context) ([][]any, error) {
	ops, err := s.operationRepo.ListOperations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export operations: %w", err)
	}
	rows := make([][]any, len(ops))
	for i, op := range ops {
		rows[i] = op.Row()
	}
	return rows, nil
}

func (s *operationService) ImportBackup(ctx context.Context, req dto.ImportBackupRequest) (int, error) {
	ops := make([]domain.Operation, 0, len(req.Operations))
	for i, item := range req.Operations {
		date, err := s.parseImportDate(item.Date)
		if err != nil {
			return 0, fmt.Errorf("%w: operation %d: %v", apperrors.ErrValidation, i, err)
		}
		ops = append(ops, domain.Operation{
			Type:   item.Type,
			Client: item.Client,
			Amount: item.Amount,
			USDT:   item.USDT,
			Date:   date,
			Status: statusOrDefault(item.Status),
		})
	}
	if len(ops) == 0 {
		return 0, nil
	}

	n, err := s.operationRepo.SaveOperations(ctx, ops)
	if err != nil {
		return 0, fmt.Errorf("failed to import backup: %w", err)
	}
	s.LogInfo(ctx, "Backup imported", slog.Int("operations", n))
	return n, nil
}

func (s *operationService) parseImportDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.timestamp(), nil
	}
	if t, err := time.ParseInLocation(domain.DateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return t, nil
}
