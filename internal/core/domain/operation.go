package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationStatus is the lifecycle label of a recorded desk operation.
type OperationStatus string

const (
	// StatusCompleted is the default status of a new operation.
	StatusCompleted OperationStatus = "Finalizada"
	StatusPending   OperationStatus = "Pendiente"
	StatusCancelled OperationStatus = "Cancelada"
	// StatusDeleted marks a soft-deleted operation; rows are never removed.
	StatusDeleted OperationStatus = "Eliminada"
)

// KnownStatuses lists every status accepted on write.
var KnownStatuses = []OperationStatus{StatusCompleted, StatusPending, StatusCancelled, StatusDeleted}

// IsKnown reports whether s is one of KnownStatuses.
func (s OperationStatus) IsKnown() bool {
	for _, k := range KnownStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// DateLayout is the storage and wire layout of Operation.Date.
const DateLayout = "2006-01-02 15:04:05"

// Operation is a EUR/USDT trade recorded at the desk.
type Operation struct {
	ID     int64           `json:"id"`
	Type   string          `json:"tipo"`
	Client string          `json:"cliente"`
	Amount decimal.Decimal `json:"importe"` // EUR
	USDT   decimal.Decimal `json:"usdt"`
	Date   time.Time       `json:"fecha"`
	Status OperationStatus `json:"estado"`
}

// Row flattens the operation into backup column order:
// id, type, client, amount, usdt, date, status.
func (o Operation) Row() []any {
	return []any{
		o.ID,
		o.Type,
		o.Client,
		o.Amount.InexactFloat64(),
		o.USDT.InexactFloat64(),
		o.Date.Format(DateLayout),
		string(o.Status),
	}
}
