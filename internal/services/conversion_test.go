package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

func TestConversionCalculator_Convert(t *testing.T) {
	calc := NewConversionCalculator()

	tests := []struct {
		name          string
		amount        string
		finalRate     string
		wantRate      string
		wantConverted string
	}{
		{
			name:          "rate rounds half-up at 6 places",
			amount:        "100",
			finalRate:     "1550.1234565",
			wantRate:      "1550.123457",
			wantConverted: "155012.35",
		},
		{
			name:          "amount rounds half-up at 2 places",
			amount:        "1",
			finalRate:     "2.005",
			wantRate:      "2.005",
			wantConverted: "2.01",
		},
		{
			name:          "no rounding needed",
			amount:        "100",
			finalRate:     "1581",
			wantRate:      "1581",
			wantConverted: "158100",
		},
		{
			name:          "sub-unit rate",
			amount:        "2500",
			finalRate:     "0.00062",
			wantRate:      "0.00062",
			wantConverted: "1.55",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, converted, err := calc.Convert(
				decimal.RequireFromString(tt.amount),
				decimal.RequireFromString(tt.finalRate),
			)
			require.NoError(t, err)

			assert.True(t, rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"effective rate = %s, want %s", rate, tt.wantRate)
			assert.True(t, converted.Equal(decimal.RequireFromString(tt.wantConverted)),
				"converted = %s, want %s", converted, tt.wantConverted)
		})
	}
}

func TestConversionCalculator_Convert_Errors(t *testing.T) {
	calc := NewConversionCalculator()

	_, _, err := calc.Convert(decimal.RequireFromString("100"), decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, _, err = calc.Convert(decimal.Zero, decimal.RequireFromString("1550"))
	assert.ErrorIs(t, err, models.ErrInvalidAmount)

	_, _, err = calc.Convert(decimal.RequireFromString("-5"), decimal.RequireFromString("1550"))
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}
