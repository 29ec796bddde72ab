package handlers

import (
	"sync"

	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations installs the custom binding rules used by the request DTOs.
func RegisterValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("operation_status", validateOperationStatus)
		}
	})
}

func validateOperationStatus(fl validator.FieldLevel) bool {
	return domain.OperationStatus(fl.Field().String()).IsKnown()
}
