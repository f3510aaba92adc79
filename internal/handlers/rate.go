package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
	"github.com/swapengine/gw-exchange-rates/internal/services"
)

// RateGetter defines the interface that the service must implement.
type RateGetter interface {
	GetRate(ctx context.Context, fromCurrency, toCurrency string, amount *decimal.Decimal) (*models.PricedQuote, error)
}

// NewGetRateHandler returns an HTTP handler for resolving a priced
// exchange rate.
// @Summary Get exchange rate
// @Description Resolves the current exchange rate for a currency pair. When an amount is given the rate includes margin and volume pricing; without one the raw rate is returned.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param amount query string false "Amount in the source currency"
// @Success 200 {object} models.RateResponse "Resolved rate"
// @Failure 400 {object} models.RateErrorResponse "Invalid currency pair or amount"
// @Failure 404 {object} models.RateErrorResponse "No rate available"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /api/v1/rates [get]
func NewGetRateHandler(svc RateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeRateError(w, http.StatusBadRequest, "from and to currencies are required")
			return
		}

		var amount *decimal.Decimal
		if raw := r.URL.Query().Get("amount"); raw != "" {
			parsed, err := models.ParseAmount(raw)
			if err != nil {
				writeRateError(w, http.StatusBadRequest, "amount must be a positive number")
				return
			}
			amount = &parsed
		}

		quote, err := svc.GetRate(ctx, from, to, amount)
		if err != nil {
			writeResolveError(w, err)
			return
		}

		resp := models.RateResponse{
			FromCurrency:   quote.Pair.From,
			ToCurrency:     quote.Pair.To,
			RawRate:        quote.RawRate.String(),
			Rate:           quote.FinalRate.String(),
			MarginApplied:  quote.MarginApplied.String(),
			VolumeDiscount: quote.VolumeDiscount.String(),
			Source:         quote.Source,
			Timestamp:      quote.ResolvedAt.Format(time.RFC3339),
		}
		if amount != nil {
			resp.Amount = amount.String()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writeRateError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.RateErrorResponse{Error: msg})
}

// writeResolveError maps service errors shared by the rate and convert
// handlers onto HTTP statuses.
func writeResolveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSameCurrency):
		writeRateError(w, http.StatusBadRequest, "from and to currencies must differ")
	case errors.Is(err, models.ErrInvalidAmount), errors.Is(err, services.ErrInvalidRate):
		writeRateError(w, http.StatusBadRequest, "invalid amount or rate")
	case errors.Is(err, services.ErrNoRateAvailable):
		writeRateError(w, http.StatusNotFound, "no rate available for this pair")
	default:
		writeRateError(w, http.StatusInternalServerError, "internal server error")
	}
}
