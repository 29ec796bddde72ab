package domain

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

const (
	// BaseCurrency and QuoteCurrency form the only supported pair.
	BaseCurrency  = "EUR"
	QuoteCurrency = "USD"

	// FallbackRate is used when the rate source answers without a USD rate.
	FallbackRate = 1.07

	// ResultLabel is a display label only, no stablecoin is involved.
	ResultLabel = "USDT"
)

// User-facing texts shown by the converter.
const (
	PromptAmount      = "Cantidad en €:"
	MsgInvalidAmount  = "Cantidad inválida"
	MsgRateFetchError = "No se pudo obtener la tasa online. Intenta de nuevo."
)

// numericPrefix matches the longest leading decimal literal, the way lenient
// float parsing on user input does: "12abc" reads as 12 and "1.2.3" as 1.2.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// NormalizeAmountText swaps the first comma decimal separator for a dot.
func NormalizeAmountText(text string) string {
	return strings.Replace(text, ",", ".", 1)
}

// ParseAmount turns localized user text into a Euro quantity.
// It returns false when no number can be read from the start of the text.
// Zero and negative amounts are accepted.
func ParseAmount(text string) (float64, bool) {
	s := strings.TrimLeftFunc(NormalizeAmountText(text), isLeadingSpace)
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	if strings.TrimLeft(m, "+-") == "Infinity" {
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Overflow still yields a usable ±Inf.
		if errors.Is(err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// isLeadingSpace reports the runes skipped before a number: Unicode
// whitespace and the byte order mark, but not NEL.
func isLeadingSpace(r rune) bool {
	return r == '\ufeff' || (r != '\u0085' && unicode.IsSpace(r))
}

// Conversion is the transient outcome of a single converter run.
type Conversion struct {
	Amount       float64 `json:"amount"`
	Rate         float64 `json:"rate"`
	Result       float64 `json:"result"`
	UsedFallback bool    `json:"usedFallback"`
}

// NewConversion computes Amount × Rate.
func NewConversion(amount, rate float64, usedFallback bool) Conversion {
	return Conversion{
		Amount:       amount,
		Rate:         rate,
		Result:       amount * rate,
		UsedFallback: usedFallback,
	}
}

// Message renders the result dialog text.
func (c Conversion) Message() string {
	return fmt.Sprintf("€%s = $%s %s\n(Tasa: %s)",
		FormatFixed(c.Amount, 2), FormatFixed(c.Result, 2), ResultLabel, FormatFixed(c.Rate, 4))
}

// ClipboardText is what gets copied after a successful conversion.
func (c Conversion) ClipboardText() string {
	return FormatFixed(c.Result, 2) + " " + ResultLabel
}

// FormatFixed prints v with the given number of decimals, rounding the exact
// binary value half away from zero. A negative value keeps its sign even when
// it rounds to zero; -0 prints unsigned. Magnitudes from 1e21 up use the
// shortest exponent form. Infinities print as "Infinity" / "-Infinity" and
// NaN as "NaN".
func FormatFixed(v float64, decimals int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs >= 1e21 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := decimal.NewFromBigRat(new(big.Rat).SetFloat64(abs), exactDigits).StringFixed(int32(decimals))
	if v < 0 {
		return "-" + s
	}
	return s
}

// exactDigits is enough fractional digits to keep every tie of a float64
// below 1e21 intact before the final rounding.
const exactDigits = 40
