package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

const quidaxDefaultURL = "https://www.quidax.com/api/v1"

// quidaxMarket maps a fiat pair to the synthetic crypto market used to
// approximate it, plus whether the ticker price needs inverting.
type quidaxMarket struct {
	symbol string
	invert bool
}

// USD/NGN is approximated through the USDT/NGN market. Other pairs have no
// direct Quidax market and are reported unsupported.
var quidaxMarkets = map[string]quidaxMarket{
	"USD_NGN": {symbol: "USDTNGN"},
	"NGN_USD": {symbol: "USDTNGN", invert: true},
}

// QuidaxProvider fetches rates from the Quidax market-ticker endpoint.
type QuidaxProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewQuidaxProvider(baseURL, apiKey string) *QuidaxProvider {
	if baseURL == "" {
		baseURL = quidaxDefaultURL
	}
	return &QuidaxProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
	}
}

func (p *QuidaxProvider) Name() string { return "quidax" }

type quidaxTickerResponse struct {
	Data struct {
		LastPrice decimal.Decimal `json:"last_price"`
	} `json:"data"`
}

func (p *QuidaxProvider) FetchRate(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, error) {
	market, ok := quidaxMarkets[pair.Key()]
	if !ok {
		return decimal.Decimal{}, ErrUnsupportedPair
	}

	url := fmt.Sprintf("%s/markets/%s/tickers", p.baseURL, market.symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Decimal{}, err
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("quidax returned status %d", resp.StatusCode)
	}

	var body quidaxTickerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, err
	}

	price := body.Data.LastPrice
	if !price.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("quidax ticker for %s has no last price", market.symbol)
	}

	if market.invert {
		return decimal.NewFromInt(1).Div(price), nil
	}
	return price, nil
}
