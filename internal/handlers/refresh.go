package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// Refresher defines the interface that the service must implement.
type Refresher interface {
	RefreshAll(ctx context.Context) (*models.RefreshResult, error)
}

// NewRefreshHandler returns an HTTP handler that forces re-resolution of
// the configured pair set from external providers.
// @Summary Refresh all rates
// @Description Invalidates cached quotes and re-fetches the configured pairs from external providers, persisting what succeeds.
// @Tags admin
// @Produce json
// @Success 200 {object} models.RefreshResponse "Refresh outcome per pair"
// @Failure 401 {object} models.RateErrorResponse "Unauthorized"
// @Failure 500 {object} models.RateErrorResponse "Internal server error"
// @Router /api/v1/rates/refresh [post]
// @Security BearerAuth
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.RefreshAll(r.Context())
		if err != nil {
			writeRateError(w, http.StatusInternalServerError, "refresh failed")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.RefreshResponse{
			Refreshed: result.Refreshed,
			Failed:    result.Failed,
		})
	}
}
