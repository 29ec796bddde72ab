package services

import (
	"context"

	"github.com/SscSPs/usdt_desk/internal/core/domain"
)

// QuoteSvc runs the non-interactive part of a conversion: parse, fetch, compute.
type QuoteSvc interface {
	// Quote converts the localized Euro amount text.
	// Errors match apperrors.ErrInvalidAmount or apperrors.ErrRateUnavailable.
	Quote(ctx context.Context, amountText string) (domain.Conversion, error)
}

// LauncherSvc opens the external currency-converter site.
type LauncherSvc interface {
	Launch(ctx context.Context)
	URL() string
}

// ConverterSvc runs the full interactive converter flow against a dialog host.
type ConverterSvc interface {
	// Run reports every outcome, errors included, through the dialog.
	// The returned error only tells callers how the run ended.
	Run(ctx context.Context) error
}
