package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// PairsLister defines the interface that the service must implement.
type PairsLister interface {
	ListSupportedPairs(ctx context.Context) ([]models.CurrencyPair, error)
}

// NewListPairsHandler returns an HTTP handler for listing supported
// currency pairs.
// @Summary List supported pairs
// @Description Lists every currency pair the service can quote.
// @Tags rates
// @Produce json
// @Success 200 {object} models.PairsResponse "Supported pairs"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /api/v1/rates/pairs [get]
func NewListPairsHandler(svc PairsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs, err := svc.ListSupportedPairs(r.Context())
		if err != nil {
			writeRateError(w, http.StatusInternalServerError, "failed to list supported pairs")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.PairsResponse{Pairs: pairs})
	}
}
