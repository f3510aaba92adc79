package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/swapengine/gw-exchange-rates/internal/handlers"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRefresher := handlers.NewMockRefresher(ctrl)
	handler := handlers.NewRefreshHandler(mockRefresher)

	t.Run("success", func(t *testing.T) {
		mockRefresher.EXPECT().
			RefreshAll(gomock.Any()).
			Return(&models.RefreshResult{
				Refreshed: []models.CurrencyPair{{From: "USD", To: "NGN"}},
				Failed:    []models.CurrencyPair{{From: "UGX", To: "USD"}},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got models.RefreshResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Equal(t, []models.CurrencyPair{{From: "USD", To: "NGN"}}, got.Refreshed)
		require.Equal(t, []models.CurrencyPair{{From: "UGX", To: "USD"}}, got.Failed)
	})

	t.Run("internal_error", func(t *testing.T) {
		mockRefresher.EXPECT().
			RefreshAll(gomock.Any()).
			Return(nil, context.Canceled)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
