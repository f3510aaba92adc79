package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency codes used across the service. Codes are stored uppercase;
// NormalizeCurrency is applied to every value crossing the HTTP boundary.
const (
	NGN  = "NGN"
	USD  = "USD"
	UGX  = "UGX"
	EUR  = "EUR"
	GBP  = "GBP"
	KES  = "KES"
	USDT = "USDT"
	BTC  = "BTC"
)

// ErrInvalidAmount is returned when an amount string does not parse as a
// positive decimal.
var ErrInvalidAmount = errors.New("amount must be a positive decimal")

// NormalizeCurrency uppercases and trims a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseAmount parses a decimal string and rejects non-positive values.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}

// CurrencyPair is a directed currency pair. (A,B) and (B,A) are distinct:
// no layer assumes rate(B,A) == 1/rate(A,B).
type CurrencyPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewCurrencyPair builds a pair with both codes normalized.
func NewCurrencyPair(from, to string) CurrencyPair {
	return CurrencyPair{
		From: NormalizeCurrency(from),
		To:   NormalizeCurrency(to),
	}
}

// Key returns the canonical "FROM_TO" form used for cache keys, margin
// tables and the fallback table.
func (p CurrencyPair) Key() string {
	return p.From + "_" + p.To
}

// Inverse returns the pair in the opposite direction.
func (p CurrencyPair) Inverse() CurrencyPair {
	return CurrencyPair{From: p.To, To: p.From}
}
