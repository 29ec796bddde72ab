package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxOperationRepository implements portsrepo.OperationRepositoryFacade using pgx.
type PgxOperationRepository struct {
	BaseRepository
}

// NewPgxOperationRepository creates a new PgxOperationRepository.
func NewPgxOperationRepository(db DB) *PgxOperationRepository {
	return &PgxOperationRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.OperationRepositoryFacade = (*PgxOperationRepository)(nil)

const operationColumns = `id, type, client, amount, usdt, date, status`

const insertOperationSQL = `
	INSERT INTO operations (type, client, amount, usdt, date, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id;
`

const importOperationSQL = `
	INSERT INTO operations (type, client, amount, usdt, date, status)
	VALUES ($1, $2, $3, $4, $5, $6);
`

func scanOperation(row pgx.Row) (domain.Operation, error) {
	var op domain.Operation
	var status string
	err := row.Scan(&op.ID, &op.Type, &op.Client, &op.Amount, &op.USDT, &op.Date, &status)
	op.Status = domain.OperationStatus(status)
	return op, err
}

// ListOperations returns every operation, newest first.
func (r *PgxOperationRepository) ListOperations(ctx context.Context) ([]domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations ORDER BY date DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list operations", err)
	}
	defer rows.Close()

	ops := []domain.Operation{}
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan operation", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating operations", err)
	}
	return ops, nil
}

// FindOperationByID retrieves an operation by its ID.
func (r *PgxOperationRepository) FindOperationByID(ctx context.Context, id int64) (*domain.Operation, error) {
	query := `SELECT ` + operationColumns + ` FROM operations WHERE id = $1;`

	op, err := scanOperation(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("operation with ID %d not found", id))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to get operation by ID", err)
	}
	return &op, nil
}

// SaveOperation inserts op and returns its new ID.
func (r *PgxOperationRepository) SaveOperation(ctx context.Context, op domain.Operation) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, insertOperationSQL,
		op.Type, op.Client, op.Amount, op.USDT, op.Date, string(op.Status),
	).Scan(&id)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to save operation", err)
	}
	return id, nil
}

// UpdateOperation overwrites type, client, amount, usdt and status.
func (r *PgxOperationRepository) UpdateOperation(ctx context.Context, op domain.Operation) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE operations
		SET client = $1, amount = $2, usdt = $3, status = $4, type = $5
		WHERE id = $6`,
		op.Client, op.Amount, op.USDT, string(op.Status), op.Type, op.ID,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update operation", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("operation with ID %d not found", op.ID))
	}
	return nil
}

// UpdateOperationStatus sets only the status column.
func (r *PgxOperationRepository) UpdateOperationStatus(ctx context.Context, id int64, status domain.OperationStatus) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE operations SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update operation status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("operation with ID %d not found", id))
	}
	return nil
}

// SaveOperations inserts all ops in one transaction. Nothing is stored
// unless every insert succeeds.
func (r *PgxOperationRepository) SaveOperations(ctx context.Context, ops []domain.Operation) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}

	for i, op := range ops {
		_, err := tx.Exec(ctx, importOperationSQL, op.Type, op.Client, op.Amount, op.USDT, op.Date, string(op.Status))
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to import operation %d", i), err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return len(ops), nil
}
