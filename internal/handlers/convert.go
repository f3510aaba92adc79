package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// Converter defines the interface that the service must implement.
type Converter interface {
	Convert(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*models.ConvertedQuote, error)
}

// NewConvertHandler returns an HTTP handler for converting an amount
// between currencies at the priced rate.
// @Summary Convert an amount
// @Description Resolves the pair, applies margin and volume pricing, and converts the amount under the fixed rounding rules.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param amount query string true "Amount in the source currency"
// @Success 200 {object} models.ConvertResponse "Conversion result"
// @Failure 400 {object} models.RateErrorResponse "Invalid currency pair or amount"
// @Failure 404 {object} models.RateErrorResponse "No rate available"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /api/v1/rates/convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeRateError(w, http.StatusBadRequest, "from and to currencies are required")
			return
		}

		amount, err := models.ParseAmount(r.URL.Query().Get("amount"))
		if err != nil {
			writeRateError(w, http.StatusBadRequest, "amount must be a positive number")
			return
		}

		quote, err := svc.Convert(ctx, from, to, amount)
		if err != nil {
			writeResolveError(w, err)
			return
		}

		resp := models.ConvertResponse{
			FromCurrency:    quote.Pair.From,
			ToCurrency:      quote.Pair.To,
			AmountSent:      quote.AmountSent.String(),
			ConvertedAmount: quote.ConvertedAmount.String(),
			EffectiveRate:   quote.EffectiveRate.String(),
			MarginApplied:   quote.MarginApplied.String(),
			VolumeDiscount:  quote.VolumeDiscount.String(),
			Source:          quote.Source,
			Timestamp:       quote.ComputedAt.Format(time.RFC3339),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
