package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/SscSPs/usdt_desk/internal/core/ports"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
)

// converterService drives the interactive converter: prompt, quote, alert, copy.
type converterService struct {
	BaseService
	quotes    portssvc.QuoteSvc
	dialog    ports.Dialog
	clipboard ports.Clipboard
}

// NewConverterService creates a ConverterSvc bound to one dialog host.
// clipboard may be nil, in which case nothing is copied.
func NewConverterService(quotes portssvc.QuoteSvc, dialog ports.Dialog, clipboard ports.Clipboard) portssvc.ConverterSvc {
	return &converterService{
		quotes:    quotes,
		dialog:    dialog,
		clipboard: clipboard,
	}
}

var _ portssvc.ConverterSvc = (*converterService)(nil)

// Run executes one converter invocation. It returns
// apperrors.ErrCancelled, apperrors.ErrInvalidAmount or
// apperrors.ErrRateUnavailable for the abort paths, after the user has been
// told whatever the path requires.
func (s *converterService) Run(ctx context.Context) error {
	text, ok, err := s.dialog.Prompt(ctx, domain.PromptAmount)
	if err != nil {
		return fmt.Errorf("failed to prompt for amount: %w", err)
	}
	if !ok {
		return apperrors.ErrCancelled
	}

	conv, err := s.quotes.Quote(ctx, text)
	if err != nil {
		msg := domain.MsgRateFetchError
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			msg = domain.MsgInvalidAmount
		}
		if alertErr := s.dialog.Alert(ctx, msg); alertErr != nil {
			s.LogError(ctx, alertErr, "Failed to show converter alert")
		}
		return err
	}

	if err := s.dialog.Alert(ctx, conv.Message()); err != nil {
		return fmt.Errorf("failed to show conversion result: %w", err)
	}

	if s.clipboard != nil {
		// Best effort only.
		_ = s.clipboard.WriteText(ctx, conv.ClipboardText())
	}

	s.LogDebug(ctx, "Conversion completed",
		slog.Float64("amount", conv.Amount),
		slog.Float64("rate", conv.Rate),
		slog.Bool("used_fallback", conv.UsedFallback))
	return nil
}
