package models

// UpdateRateRequest is the JSON body for the privileged rate update
// operation.
// swagger:model UpdateRateRequest
type UpdateRateRequest struct {
	// Source currency
	// required: true
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// required: true
	// example: NGN
	ToCurrency string `json:"to_currency"`

	// New rate as a decimal string
	// required: true
	// example: 1548.50
	Rate string `json:"rate"`

	// Amount below which the tiered rate applies
	// example: 1000
	LowAmountThreshold string `json:"low_amount_threshold,omitempty"`

	// Rate applied below the threshold
	// example: 1530.00
	LowAmountThresholdRate string `json:"low_amount_threshold_rate,omitempty"`
}

// UpdateRateResponse returns the stored row after an update.
// swagger:model UpdateRateResponse
type UpdateRateResponse struct {
	StoredRate StoredRate `json:"stored_rate"`
}

// HistoryResponse lists recent stored rates for a pair, newest first.
// swagger:model HistoryResponse
type HistoryResponse struct {
	FromCurrency string       `json:"from_currency"`
	ToCurrency   string       `json:"to_currency"`
	Rates        []StoredRate `json:"rates"`
}
