package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/swapengine/gw-exchange-rates/internal/handlers"
	"github.com/swapengine/gw-exchange-rates/internal/models"
	"github.com/swapengine/gw-exchange-rates/internal/services"
)

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConverter := handlers.NewMockConverter(ctrl)
	handler := handlers.NewConvertHandler(mockConverter)

	computedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		target    string
		mockSetup func()
		wantCode  int
		wantBody  map[string]interface{}
	}{
		{
			name:   "success",
			target: "/api/v1/rates/convert?from=USD&to=NGN&amount=100",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), "USD", "NGN", gomock.Any()).
					Return(&models.ConvertedQuote{
						Pair:            models.CurrencyPair{From: "USD", To: "NGN"},
						AmountSent:      decimal.RequireFromString("100"),
						ConvertedAmount: decimal.RequireFromString("158100"),
						EffectiveRate:   decimal.RequireFromString("1581"),
						MarginApplied:   decimal.RequireFromString("0.02"),
						VolumeDiscount:  decimal.Zero,
						Source:          models.SourceStore,
						ComputedAt:      computedAt,
					}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]interface{}{
				"from_currency":    "USD",
				"to_currency":      "NGN",
				"amount_sent":      "100",
				"converted_amount": "158100",
				"effective_rate":   "1581",
				"margin_applied":   "0.02",
				"volume_discount":  "0",
				"source":           "store",
				"timestamp":        "2025-06-01T12:00:00Z",
			},
		},
		{
			name:      "missing_amount",
			target:    "/api/v1/rates/convert?from=USD&to=NGN",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "amount must be a positive number"},
		},
		{
			name:      "missing_currencies",
			target:    "/api/v1/rates/convert?amount=100",
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]interface{}{"error": "from and to currencies are required"},
		},
		{
			name:   "no_rate_available",
			target: "/api/v1/rates/convert?from=EUR&to=KES&amount=100",
			mockSetup: func() {
				mockConverter.EXPECT().
					Convert(gomock.Any(), "EUR", "KES", gomock.Any()).
					Return(nil, services.ErrNoRateAvailable)
			},
			wantCode: http.StatusNotFound,
			wantBody: map[string]interface{}{"error": "no rate available for this pair"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.wantCode, res.StatusCode)

			var body map[string]interface{}
			err := json.NewDecoder(res.Body).Decode(&body)
			require.NoError(t, err)
			require.Equal(t, tt.wantBody, body)
		})
	}
}
