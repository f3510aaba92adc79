package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/swapengine/gw-exchange-rates/internal/handlers"
	"github.com/swapengine/gw-exchange-rates/internal/models"
	"github.com/swapengine/gw-exchange-rates/internal/services"
)

func TestUpdateRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := handlers.NewMockRateUpdater(ctrl)
	handler := handlers.NewUpdateRateHandler(mockUpdater)

	stored := &models.StoredRate{
		RateID:       uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
		CurrencyFrom: "USD",
		CurrencyTo:   "NGN",
		Rate:         decimal.RequireFromString("1548.50"),
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		mockUpdater.EXPECT().
			UpdateRate(gomock.Any(), "USD", "NGN", gomock.Any(), nil, nil).
			Return(stored, nil)

		body := `{"from_currency":"USD","to_currency":"NGN","rate":"1548.50"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rates", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		res := w.Result()
		defer res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)

		var got models.UpdateRateResponse
		require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
		require.Equal(t, stored.RateID, got.StoredRate.RateID)
		require.Equal(t, stored.CurrencyFrom, got.StoredRate.CurrencyFrom)
		require.Equal(t, stored.CurrencyTo, got.StoredRate.CurrencyTo)
		require.True(t, got.StoredRate.Rate.Equal(stored.Rate))
		require.True(t, got.StoredRate.CreatedAt.Equal(stored.CreatedAt))
	})

	t.Run("success_with_low_amount_tier", func(t *testing.T) {
		mockUpdater.EXPECT().
			UpdateRate(gomock.Any(), "USD", "NGN", gomock.Any(), gomock.Not(gomock.Nil()), gomock.Not(gomock.Nil())).
			Return(stored, nil)

		body := `{"from_currency":"USD","to_currency":"NGN","rate":"1548.50","low_amount_threshold":"1000","low_amount_threshold_rate":"1530"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rates", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler(w, req)

		require.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
		wantError string
	}{
		{
			name:      "malformed_body",
			body:      `{not json`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantError: "invalid request body",
		},
		{
			name:      "missing_currencies",
			body:      `{"rate":"1548.50"}`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantError: "from_currency and to_currency are required",
		},
		{
			name:      "non_positive_rate",
			body:      `{"from_currency":"USD","to_currency":"NGN","rate":"0"}`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantError: "rate must be a positive number",
		},
		{
			name:      "low_tier_fields_must_come_together",
			body:      `{"from_currency":"USD","to_currency":"NGN","rate":"1548.50","low_amount_threshold":"1000"}`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantError: "low_amount_threshold and low_amount_threshold_rate must be set together",
		},
		{
			name: "same_currency",
			body: `{"from_currency":"USD","to_currency":"usd","rate":"1"}`,
			mockSetup: func() {
				mockUpdater.EXPECT().
					UpdateRate(gomock.Any(), "USD", "usd", gomock.Any(), nil, nil).
					Return(nil, services.ErrSameCurrency)
			},
			wantCode:  http.StatusBadRequest,
			wantError: "invalid currency pair or rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/rates", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()
			require.Equal(t, tt.wantCode, res.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			require.Equal(t, tt.wantError, body["error"])
		})
	}
}
