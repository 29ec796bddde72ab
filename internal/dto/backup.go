package dto

import (
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ImportOperation is one operation inside a backup payload.
// Date accepts domain.DateLayout or RFC 3339; empty means "now".
type ImportOperation struct {
	Type   string                 `json:"tipo"`
	Client string                 `json:"cliente"`
	Amount decimal.Decimal        `json:"importe"`
	USDT   decimal.Decimal        `json:"usdt"`
	Date   string                 `json:"fecha"`
	Status domain.OperationStatus `json:"estado" binding:"omitempty,operation_status"`
}

// ImportBackupRequest is the body of POST /backup/import. Keys follow the
// backup files of the original ledger.
type ImportBackupRequest struct {
	Operations []ImportOperation `json:"operaciones" binding:"dive"`
}

// ImportBackupResponse reports how many operations were restored.
type ImportBackupResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}
