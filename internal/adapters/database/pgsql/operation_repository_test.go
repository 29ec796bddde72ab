package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeDB answers QueryRow and Exec; Begin and Query are not used here.
type fakeDB struct {
	lastSQL  string
	lastArgs []any
	row      pgx.Row
	tag      pgconn.CommandTag
	execErr  error
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return f.tag, f.execErr
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func TestSaveOperation_ReturnsID(t *testing.T) {
	db := &fakeDB{row: fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*int64)) = 42
		return nil
	}}}
	repo := NewPgxOperationRepository(db)

	id, err := repo.SaveOperation(context.Background(), domain.Operation{
		Type: "compra", Client: "Ana",
		Amount: decimal.NewFromInt(100), USDT: decimal.NewFromInt(108),
		Date: time.Now(), Status: domain.StatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "Finalizada", db.lastArgs[5])
}

func TestFindOperationByID_NotFound(t *testing.T) {
	db := &fakeDB{row: fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}}
	repo := NewPgxOperationRepository(db)

	_, err := repo.FindOperationByID(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindOperationByID_ScansStatus(t *testing.T) {
	date := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*int64)) = 3
		*(dest[1].(*string)) = "venta"
		*(dest[2].(*string)) = "Luis"
		*(dest[3].(*decimal.Decimal)) = decimal.NewFromInt(50)
		*(dest[4].(*decimal.Decimal)) = decimal.RequireFromString("53.5")
		*(dest[5].(*time.Time)) = date
		*(dest[6].(*string)) = "Pendiente"
		return nil
	}}}
	repo := NewPgxOperationRepository(db)

	op, err := repo.FindOperationByID(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, op.Status)
	assert.Equal(t, date, op.Date)
	assert.Equal(t, []any{int64(3)}, db.lastArgs)
}

func TestUpdateOperation_NoRowsIsNotFound(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 0")}
	repo := NewPgxOperationRepository(db)

	err := repo.UpdateOperation(context.Background(), domain.Operation{ID: 5, Status: domain.StatusCancelled})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateOperationStatus(t *testing.T) {
	db := &fakeDB{tag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewPgxOperationRepository(db)

	err := repo.UpdateOperationStatus(context.Background(), 5, domain.StatusDeleted)

	require.NoError(t, err)
	assert.Equal(t, []any{"Eliminada", int64(5)}, db.lastArgs)
}

func TestUpdateOperationStatus_ExecError(t *testing.T) {
	db := &fakeDB{execErr: errors.New("connection reset")}
	repo := NewPgxOperationRepository(db)

	err := repo.UpdateOperationStatus(context.Background(), 5, domain.StatusDeleted)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
}
