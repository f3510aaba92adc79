package repositories

import (
	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// fallbackEntry is one hardcoded last-resort rate. Divisor entries encode
// the inverse direction by convention: the stored value is what the source
// amount is divided by, so the effective rate is 1/value.
type fallbackEntry struct {
	value   decimal.Decimal
	divisor bool
}

// FallbackTable is a static, read-only table of last-resort rates shipped
// with the binary. Used only when cache, store and every provider have
// failed.
type FallbackTable struct {
	rates map[string]fallbackEntry
}

// NewFallbackTable returns the built-in table.
func NewFallbackTable() *FallbackTable {
	return &FallbackTable{
		rates: map[string]fallbackEntry{
			"NGN_USD": {value: decimal.NewFromInt(1610), divisor: true},
			"USD_NGN": {value: decimal.NewFromInt(1550)},
			"UGX_NGN": {value: decimal.RequireFromString("2.35")},
			"NGN_UGX": {value: decimal.RequireFromString("2.27")},
			"USD_UGX": {value: decimal.NewFromInt(3700)},
			"UGX_USD": {value: decimal.NewFromInt(3800), divisor: true},
		},
	}
}

// Lookup returns the effective fallback rate for a pair, inverting divisor
// entries.
func (t *FallbackTable) Lookup(pair models.CurrencyPair) (decimal.Decimal, bool) {
	entry, ok := t.rates[pair.Key()]
	if !ok {
		return decimal.Decimal{}, false
	}
	if entry.divisor {
		return decimal.NewFromInt(1).Div(entry.value), true
	}
	return entry.value, true
}

// Pairs returns every pair the table covers.
func (t *FallbackTable) Pairs() []models.CurrencyPair {
	pairs := make([]models.CurrencyPair, 0, len(t.rates))
	for key := range t.rates {
		for i := 0; i < len(key); i++ {
			if key[i] == '_' {
				pairs = append(pairs, models.CurrencyPair{From: key[:i], To: key[i+1:]})
				break
			}
		}
	}
	return pairs
}
