package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/SscSPs/usdt_desk/internal/core/ports"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
)

// quoteService parses an amount, fetches the live rate and computes the result.
// It keeps no state between calls and is safe for concurrent use.
type quoteService struct {
	BaseService
	rates ports.RateProvider
}

// NewQuoteService creates a new QuoteSvc backed by the given rate source.
func NewQuoteService(rates ports.RateProvider) portssvc.QuoteSvc {
	return &quoteService{rates: rates}
}

var _ portssvc.QuoteSvc = (*quoteService)(nil)

func (s *quoteService) Quote(ctx context.Context, amountText string) (domain.Conversion, error) {
	amount, ok := domain.ParseAmount(amountText)
	if !ok {
		return domain.Conversion{}, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, amountText)
	}

	quote, err := s.rates.FetchEURUSD(ctx)
	if err != nil {
		s.LogDebug(ctx, "Rate lookup failed", slog.String("error", err.Error()))
		return domain.Conversion{}, fmt.Errorf("%w: %w", apperrors.ErrRateUnavailable, err)
	}

	rate := quote.Rate
	if !quote.Found {
		// Well-formed answer without a USD rate.
		s.LogDebug(ctx, "Rate source returned no USD rate, using fallback",
			slog.Float64("fallback_rate", domain.FallbackRate))
		rate = domain.FallbackRate
	}

	return domain.NewConversion(amount, rate, !quote.Found), nil
}
