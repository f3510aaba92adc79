package services

import (
	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// Fixed-precision rounding contract for financial quotes: rates round
// half-up to 6 places, amounts to 2. These are quotes, not display
// approximations, and must reproduce bit-for-bit.
const (
	ratePrecision   = 6
	amountPrecision = 2
)

// ConversionCalculator multiplies an amount by a final rate under the
// fixed rounding contract.
type ConversionCalculator struct{}

func NewConversionCalculator() *ConversionCalculator {
	return &ConversionCalculator{}
}

// Convert rounds the final rate to 6 places half-up, multiplies, and
// rounds the product to 2 places half-up.
func (c *ConversionCalculator) Convert(amount, finalRate decimal.Decimal) (effectiveRate, convertedAmount decimal.Decimal, err error) {
	if !finalRate.IsPositive() {
		return decimal.Decimal{}, decimal.Decimal{}, ErrInvalidRate
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, decimal.Decimal{}, models.ErrInvalidAmount
	}

	effectiveRate = finalRate.Round(ratePrecision)
	convertedAmount = amount.Mul(effectiveRate).Round(amountPrecision)
	return effectiveRate, convertedAmount, nil
}
