package repositories

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapengine/gw-exchange-rates/internal/models"
)

func TestFallbackTable_Lookup(t *testing.T) {
	table := NewFallbackTable()

	t.Run("direct entry", func(t *testing.T) {
		rate, ok := table.Lookup(models.CurrencyPair{From: "USD", To: "NGN"})
		require.True(t, ok)
		assert.True(t, rate.Equal(decimal.NewFromInt(1550)))
	})

	t.Run("divisor entry is inverted", func(t *testing.T) {
		rate, ok := table.Lookup(models.CurrencyPair{From: "NGN", To: "USD"})
		require.True(t, ok)

		want := decimal.NewFromInt(1).Div(decimal.NewFromInt(1610))
		diff := rate.Sub(want).Abs()
		assert.True(t, diff.LessThan(decimal.New(1, -12)), "inverted rate off by %s", diff)
	})

	t.Run("unknown pair", func(t *testing.T) {
		_, ok := table.Lookup(models.CurrencyPair{From: "EUR", To: "KES"})
		assert.False(t, ok)
	})
}

func TestFallbackTable_Pairs(t *testing.T) {
	table := NewFallbackTable()

	pairs := table.Pairs()
	assert.Len(t, pairs, 6)

	keys := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		keys[p.Key()] = true
	}
	for _, want := range []string{"NGN_USD", "USD_NGN", "UGX_NGN", "NGN_UGX", "USD_UGX", "UGX_USD"} {
		assert.True(t, keys[want], "missing pair %s", want)
	}
}
