package dto

import "github.com/SscSPs/usdt_desk/internal/core/domain"

// ConversionResponse is the HTTP rendition of the converter result dialog.
type ConversionResponse struct {
	Amount        float64 `json:"amount"`
	Rate          float64 `json:"rate"`
	Result        float64 `json:"result"`
	UsedFallback  bool    `json:"usedFallback"`
	Message       string  `json:"message"`
	ClipboardText string  `json:"clipboardText"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Amount:        c.Amount,
		Rate:          c.Rate,
		Result:        c.Result,
		UsedFallback:  c.UsedFallback,
		Message:       c.Message(),
		ClipboardText: c.ClipboardText(),
	}
}
