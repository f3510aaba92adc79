package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/swapengine/gw-exchange-rates/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryGetter defines the interface that the service must implement.
type HistoryGetter interface {
	GetHistory(ctx context.Context, fromCurrency, toCurrency string, limit int) ([]models.StoredRate, error)
}

// NewGetHistoryHandler returns an HTTP handler for listing stored rate
// history, newest first.
// @Summary Get rate history
// @Description Lists recent stored rates for a currency pair.
// @Tags admin
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param limit query int false "Maximum rows, default 20, capped at 100"
// @Success 200 {object} models.HistoryResponse "Rate history"
// @Failure 400 {object} models.RateErrorResponse "Invalid currency pair"
// @Failure 401 {object} models.RateErrorResponse "Unauthorized"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /api/v1/rates/history [get]
// @Security BearerAuth
func NewGetHistoryHandler(svc HistoryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := r.URL.Query().Get("from")
		to := r.URL.Query().Get("to")
		if from == "" || to == "" {
			writeRateError(w, http.StatusBadRequest, "from and to currencies are required")
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeRateError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = parsed
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}

		rates, err := svc.GetHistory(r.Context(), from, to, limit)
		if err != nil {
			writeRateError(w, http.StatusInternalServerError, "failed to load rate history")
			return
		}

		pair := models.NewCurrencyPair(from, to)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.HistoryResponse{
			FromCurrency: pair.From,
			ToCurrency:   pair.To,
			Rates:        rates,
		})
	}
}
