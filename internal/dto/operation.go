package dto

import (
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOperationRequest defines the data needed to record an operation.
// Missing numbers default to zero and a missing status to domain.StatusCompleted.
type CreateOperationRequest struct {
	Type   string                 `json:"tipo"`
	Client string                 `json:"cliente"`
	Amount decimal.Decimal        `json:"importe"`
	USDT   decimal.Decimal        `json:"usdt"`
	Status domain.OperationStatus `json:"estado" binding:"omitempty,operation_status"`
}

// UpdateOperationRequest overwrites every mutable column of an operation.
type UpdateOperationRequest struct {
	Type   string                 `json:"tipo"`
	Client string                 `json:"cliente"`
	Amount decimal.Decimal        `json:"importe"`
	USDT   decimal.Decimal        `json:"usdt"`
	Status domain.OperationStatus `json:"estado" binding:"omitempty,operation_status"`
}

// OperationResponse defines the data returned for an operation.
// Amounts are plain JSON numbers, as ledger clients expect.
type OperationResponse struct {
	ID     int64   `json:"id"`
	Type   string  `json:"tipo"`
	Client string  `json:"cliente"`
	Amount float64 `json:"importe"`
	USDT   float64 `json:"usdt"`
	Date   string  `json:"fecha"`
	Status string  `json:"estado"`
}

// CreateOperationResponse is returned after a successful insert.
type CreateOperationResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToOperationResponse converts a domain.Operation to OperationResponse DTO
func ToOperationResponse(op *domain.Operation) OperationResponse {
	return OperationResponse{
		ID:     op.ID,
		Type:   op.Type,
		Client: op.Client,
		Amount: op.Amount.InexactFloat64(),
		USDT:   op.USDT.InexactFloat64(),
		Date:   op.Date.Format(domain.DateLayout),
		Status: string(op.Status),
	}
}

// ToListOperationResponse converts a slice of domain.Operation to a slice of OperationResponse DTOs
func ToListOperationResponse(ops []domain.Operation) []OperationResponse {
	res := make([]OperationResponse, len(ops))
	for i := range ops {
		res[i] = ToOperationResponse(&ops[i])
	}
	return res
}
