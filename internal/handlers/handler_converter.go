package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/dto"
	"github.com/SscSPs/usdt_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests for the EUR→USDT converter.
type converterHandler struct {
	quoteService portssvc.QuoteSvc
}

func newConverterHandler(qs portssvc.QuoteSvc) *converterHandler {
	return &converterHandler{quoteService: qs}
}

func registerConverterRoutes(rg *gin.RouterGroup, quoteService portssvc.QuoteSvc) {
	h := newConverterHandler(quoteService)
	rg.GET("/convert", h.convert)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// convert godoc
// @Summary Convert EUR to USDT at the live rate
// @Description Parses the amount (comma or dot decimals), fetches the EUR→USD rate and returns the result
// @Tags converter
// @Produce  json
// @Param   amount query string true "Amount in EUR"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Missing or invalid amount"
// @Failure 502 {object} map[string]string "Rate could not be fetched"
// @Router /convert [get]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	amountText, ok := c.GetQuery("amount")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount query parameter is required"})
		return
	}

	// JSON cannot carry ±Inf; refuse such amounts before the rate lookup.
	if amount, ok := domain.ParseAmount(amountText); ok && !isFinite(amount) {
		logger.Warn("Non-finite amount for conversion", slog.String("amount", amountText))
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.MsgInvalidAmount})
		return
	}

	conv, err := h.quoteService.Quote(c.Request.Context(), amountText)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidAmount) {
			logger.Warn("Invalid amount for conversion", slog.String("amount", amountText))
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.MsgInvalidAmount})
		} else {
			logger.Error("Failed to fetch exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": domain.MsgRateFetchError})
		}
		return
	}

	// amount × rate may still overflow.
	if !isFinite(conv.Result) {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.MsgInvalidAmount})
		return
	}

	if conv.UsedFallback {
		logger.Warn("Rate source returned no USD rate, fallback applied", slog.Float64("rate", conv.Rate))
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(conv))
}
