// Package rates fetches live exchange rates from public HTTP sources.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	"github.com/SscSPs/usdt_desk/internal/core/domain"
	"github.com/SscSPs/usdt_desk/internal/core/ports"
)

// DefaultURL is the exchangerate.host endpoint for the EUR→USD pair.
const DefaultURL = "https://api.exchangerate.host/latest?base=" + domain.BaseCurrency + "&symbols=" + domain.QuoteCurrency

// maxBodySize caps how much of a response is read.
const maxBodySize = 1 << 20

// ExchangeRateHostClient implements ports.RateProvider against exchangerate.host.
// The HTTP status is not inspected: whatever body comes back is decoded.
type ExchangeRateHostClient struct {
	httpClient *http.Client
	url        string
}

// NewExchangeRateHostClient creates a client. An empty url means DefaultURL and
// a zero timeout leaves the transport default in place.
func NewExchangeRateHostClient(url string, timeout time.Duration) *ExchangeRateHostClient {
	if url == "" {
		url = DefaultURL
	}
	return &ExchangeRateHostClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

var _ ports.RateProvider = (*ExchangeRateHostClient)(nil)

// FetchEURUSD performs one GET and decodes rates.USD from the body.
func (c *ExchangeRateHostClient) FetchEURUSD(ctx context.Context) (ports.RateQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return ports.RateQuote{}, fmt.Errorf("%w: build request: %w", apperrors.ErrRateUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RateQuote{}, fmt.Errorf("%w: %w", apperrors.ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return ports.RateQuote{}, fmt.Errorf("%w: read body: %w", apperrors.ErrRateUnavailable, err)
	}

	quote, err := DecodeQuote(body, domain.QuoteCurrency)
	if err != nil {
		return ports.RateQuote{}, fmt.Errorf("%w: %s: %w", apperrors.ErrRateUnavailable, resp.Status, err)
	}
	return quote, nil
}

var (
	errNotJSON      = errors.New("response is not valid JSON")
	errNullPayload  = errors.New("response payload is null")
	errNotNumerical = errors.New("rate is not a number")
)

// DecodeQuote extracts rates[symbol] from a JSON payload shaped like
// {"rates": {"USD": 1.08}}.
//
// Absent, null, false, zero or empty-string values at either level count as
// "no rate" and yield Found=false. A present rate of any other non-numeric
// kind is an error, as are non-JSON bodies and a top-level null.
func DecodeQuote(body []byte, symbol string) (ports.RateQuote, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ports.RateQuote{}, fmt.Errorf("%w: %w", errNotJSON, err)
	}
	if payload == nil {
		return ports.RateQuote{}, errNullPayload
	}

	root, ok := payload.(map[string]any)
	if !ok {
		return ports.RateQuote{}, nil
	}
	rates, ok := root["rates"].(map[string]any)
	if !ok {
		return ports.RateQuote{}, nil
	}

	switch v := rates[symbol].(type) {
	case nil:
		return ports.RateQuote{}, nil
	case float64:
		if v == 0 {
			return ports.RateQuote{}, nil
		}
		return ports.RateQuote{Rate: v, Found: true}, nil
	case bool:
		if !v {
			return ports.RateQuote{}, nil
		}
	case string:
		if v == "" {
			return ports.RateQuote{}, nil
		}
	}
	return ports.RateQuote{}, fmt.Errorf("%w: %s=%v", errNotNumerical, symbol, rates[symbol])
}
