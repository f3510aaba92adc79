package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/swapengine/gw-exchange-rates/internal/handlers"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

func TestGetHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGetter := handlers.NewMockHistoryGetter(ctrl)
	handler := handlers.NewGetHistoryHandler(mockGetter)

	t.Run("success_with_default_limit", func(t *testing.T) {
		mockGetter.EXPECT().
			GetHistory(gomock.Any(), "USD", "NGN", 20).
			Return([]models.StoredRate{
				{CurrencyFrom: "USD", CurrencyTo: "NGN", Rate: decimal.RequireFromString("1550")},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/history?from=USD&to=NGN", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got models.HistoryResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Equal(t, "USD", got.FromCurrency)
		require.Equal(t, "NGN", got.ToCurrency)
		require.Len(t, got.Rates, 1)
	})

	t.Run("limit_is_capped", func(t *testing.T) {
		mockGetter.EXPECT().
			GetHistory(gomock.Any(), "USD", "NGN", 100).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/history?from=USD&to=NGN&limit=500", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("invalid_limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/history?from=USD&to=NGN&limit=abc", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("missing_currencies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/history?from=USD", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})
}
