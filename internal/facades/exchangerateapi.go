package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

const exchangeRateAPIDefaultURL = "https://v6.exchangerate-api.com/v6"

// ExchangeRateAPIProvider fetches rates from exchangerate-api.com. The API
// key is part of the URL path.
type ExchangeRateAPIProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewExchangeRateAPIProvider(baseURL, apiKey string) *ExchangeRateAPIProvider {
	if baseURL == "" {
		baseURL = exchangeRateAPIDefaultURL
	}
	return &ExchangeRateAPIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (p *ExchangeRateAPIProvider) Name() string { return "exchangerate_api" }

type exchangeRateAPIResponse struct {
	Result          string                     `json:"result"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

func (p *ExchangeRateAPIProvider) FetchRate(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", p.baseURL, p.apiKey, pair.From)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("exchangerate-api returned status %d", resp.StatusCode)
	}

	var body exchangeRateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, err
	}
	if body.Result != "success" {
		return decimal.Decimal{}, fmt.Errorf("exchangerate-api result %q", body.Result)
	}

	rate, ok := body.ConversionRates[pair.To]
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedPair
	}

	return rate, nil
}
