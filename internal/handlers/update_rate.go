package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
	"github.com/swapengine/gw-exchange-rates/internal/services"
)

// RateUpdater defines the interface that the service must implement.
type RateUpdater interface {
	UpdateRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal, lowRate, lowLimit *decimal.Decimal) (*models.StoredRate, error)
}

// NewUpdateRateHandler returns an HTTP handler for the privileged rate
// update operation.
// @Summary Update an exchange rate
// @Description Persists a new rate for a pair and invalidates its cached quotes. Optionally sets a low-amount tier rate and threshold.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.UpdateRateRequest true "Update Rate Request"
// @Success 200 {object} models.UpdateRateResponse "Stored rate"
// @Failure 400 {object} models.RateErrorResponse "Invalid request"
// @Failure 401 {object} models.RateErrorResponse "Unauthorized"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /api/v1/rates [post]
// @Security BearerAuth
func NewUpdateRateHandler(svc RateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req models.UpdateRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeRateError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.FromCurrency == "" || req.ToCurrency == "" {
			writeRateError(w, http.StatusBadRequest, "from_currency and to_currency are required")
			return
		}

		rate, err := models.ParseAmount(req.Rate)
		if err != nil {
			writeRateError(w, http.StatusBadRequest, "rate must be a positive number")
			return
		}

		// The low-amount tier comes as a pair or not at all.
		if (req.LowAmountThreshold == "") != (req.LowAmountThresholdRate == "") {
			writeRateError(w, http.StatusBadRequest, "low_amount_threshold and low_amount_threshold_rate must be set together")
			return
		}

		var lowRate, lowLimit *decimal.Decimal
		if req.LowAmountThreshold != "" {
			limit, err := models.ParseAmount(req.LowAmountThreshold)
			if err != nil {
				writeRateError(w, http.StatusBadRequest, "low_amount_threshold must be a positive number")
				return
			}
			tierRate, err := models.ParseAmount(req.LowAmountThresholdRate)
			if err != nil {
				writeRateError(w, http.StatusBadRequest, "low_amount_threshold_rate must be a positive number")
				return
			}
			lowLimit = &limit
			lowRate = &tierRate
		}

		stored, err := svc.UpdateRate(ctx, req.FromCurrency, req.ToCurrency, rate, lowRate, lowLimit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSameCurrency), errors.Is(err, services.ErrInvalidRate):
				writeRateError(w, http.StatusBadRequest, "invalid currency pair or rate")
			default:
				writeRateError(w, http.StatusInternalServerError, "internal server error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.UpdateRateResponse{StoredRate: *stored})
	}
}
