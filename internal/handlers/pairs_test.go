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

func TestListPairsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLister := handlers.NewMockPairsLister(ctrl)
	handler := handlers.NewListPairsHandler(mockLister)

	t.Run("success", func(t *testing.T) {
		mockLister.EXPECT().
			ListSupportedPairs(gomock.Any()).
			Return([]models.CurrencyPair{
				{From: "NGN", To: "USD"},
				{From: "USD", To: "NGN"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/pairs", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got models.PairsResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Equal(t, []models.CurrencyPair{
			{From: "NGN", To: "USD"},
			{From: "USD", To: "NGN"},
		}, got.Pairs)
	})

	t.Run("internal_error", func(t *testing.T) {
		mockLister.EXPECT().
			ListSupportedPairs(gomock.Any()).
			Return(nil, context.Canceled)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/pairs", nil)
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
