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

const fixerDefaultURL = "http://data.fixer.io/api/latest"

// FixerProvider fetches rates from fixer.io. The API key travels as the
// access_key query parameter.
type FixerProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewFixerProvider(baseURL, apiKey string) *FixerProvider {
	if baseURL == "" {
		baseURL = fixerDefaultURL
	}
	return &FixerProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (p *FixerProvider) Name() string { return "fixer" }

type fixerResponse struct {
	Success bool                       `json:"success"`
	Rates   map[string]decimal.Decimal `json:"rates"`
}

func (p *FixerProvider) FetchRate(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("access_key", p.apiKey)
	params.Set("base", pair.From)
	params.Set("symbols", pair.To)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return decimal.Decimal{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("fixer returned status %d", resp.StatusCode)
	}

	var body fixerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, err
	}
	if !body.Success {
		return decimal.Decimal{}, fmt.Errorf("fixer request unsuccessful")
	}

	rate, ok := body.Rates[pair.To]
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedPair
	}

	return rate, nil
}
