package models

// PairsResponse lists every currency pair the service can quote: the union
// of pairs present in the rate store and in the fallback table.
// swagger:model PairsResponse
type PairsResponse struct {
	Pairs []CurrencyPair `json:"pairs"`
}

// RefreshResponse reports a RefreshAll run.
// swagger:model RefreshResponse
type RefreshResponse struct {
	Refreshed []CurrencyPair `json:"refreshed"`
	Failed    []CurrencyPair `json:"failed"`
}
