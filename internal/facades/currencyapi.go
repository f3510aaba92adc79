package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

const currencyAPIDefaultURL = "https://api.currencyapi.com/v3/latest"

// CurrencyAPIProvider fetches rates from currencyapi.com. The API key
// travels in the apikey request header.
type CurrencyAPIProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCurrencyAPIProvider(baseURL, apiKey string) *CurrencyAPIProvider {
	if baseURL == "" {
		baseURL = currencyAPIDefaultURL
	}
	return &CurrencyAPIProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (p *CurrencyAPIProvider) Name() string { return "currencyapi" }

type currencyAPIResponse struct {
	Data map[string]struct {
		Value decimal.Decimal `json:"value"`
	} `json:"data"`
}

func (p *CurrencyAPIProvider) FetchRate(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("base_currency", pair.From)
	params.Set("currencies", pair.To)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return decimal.Decimal{}, err
	}
	req.Header.Set("apikey", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("currencyapi returned status %d", resp.StatusCode)
	}

	var body currencyAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, err
	}

	entry, ok := body.Data[pair.To]
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedPair
	}

	return entry.Value, nil
}
