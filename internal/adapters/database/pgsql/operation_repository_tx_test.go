package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importFixture() []domain.Operation {
	date := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	return []domain.Operation{
		{Type: "compra", Client: "Ana", Amount: decimal.NewFromInt(100), USDT: decimal.NewFromInt(108), Date: date, Status: domain.StatusCompleted},
		{Type: "venta", Client: "Luis", Amount: decimal.NewFromInt(50), USDT: decimal.RequireFromString("53.5"), Date: date, Status: domain.StatusPending},
	}
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *PgxOperationRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPgxOperationRepository(mock)
}

func TestSaveOperations_Commits(t *testing.T) {
	mock, repo := newMockRepo(t)
	ops := importFixture()

	mock.ExpectBegin()
	for _, op := range ops {
		mock.ExpectExec("INSERT INTO operations").
			WithArgs(op.Type, op.Client, op.Amount, op.USDT, op.Date, string(op.Status)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	mock.ExpectCommit()

	n, err := repo.SaveOperations(context.Background(), ops)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOperations_InsertFailureRollsBack(t *testing.T) {
	mock, repo := newMockRepo(t)
	ops := importFixture()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO operations").
		WithArgs(pgxmock.AnyArg(), "Ana", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "Finalizada").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO operations").
		WithArgs(pgxmock.AnyArg(), "Luis", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), "Pendiente").
		WillReturnError(errors.New("value too long"))
	mock.ExpectRollback()

	n, err := repo.SaveOperations(context.Background(), ops)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "failed to import operation 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOperations_CommitFailure(t *testing.T) {
	mock, repo := newMockRepo(t)
	ops := importFixture()[:1]

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO operations").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

	n, err := repo.SaveOperations(context.Background(), ops)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "failed to commit transaction", appErr.Message)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveOperations_BeginFailure(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := repo.SaveOperations(context.Background(), importFixture())

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "failed to begin transaction", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOperation_Overwrites(t *testing.T) {
	mock, repo := newMockRepo(t)
	op := domain.Operation{ID: 5, Type: "venta", Client: "Eva", Amount: decimal.NewFromInt(5), USDT: decimal.RequireFromString("5.4"), Status: domain.StatusCancelled}

	mock.ExpectExec("UPDATE operations").
		WithArgs("Eva", op.Amount, op.USDT, "Cancelada", "venta", int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateOperation(context.Background(), op))
	assert.NoError(t, mock.ExpectationsWereMet())
}
