package models

// RateResponse is a successful GetRate response. All numeric fields are
// exact-precision decimal strings.
// swagger:model RateResponse
type RateResponse struct {
	// Source currency
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// example: NGN
	ToCurrency string `json:"to_currency"`

	// Amount used for tiered pricing, echoed back when supplied
	// example: 250.00
	Amount string `json:"amount,omitempty"`

	// Raw rate before margin and discounts
	// example: 1550
	RawRate string `json:"raw_rate"`

	// Customer-facing rate after margin and volume discount
	// example: 1581
	Rate string `json:"rate"`

	// Margin fraction applied
	// example: 0.02
	MarginApplied string `json:"margin_applied,omitempty"`

	// Volume discount fraction applied
	// example: 0.005
	VolumeDiscount string `json:"volume_discount,omitempty"`

	// Where the raw rate came from
	// example: fallback
	Source string `json:"source"`

	// Resolution timestamp, RFC 3339
	Timestamp string `json:"timestamp"`
}

// RateErrorResponse is an error response for rate endpoints
// swagger:model RateErrorResponse
type RateErrorResponse struct {
	// Error message
	// example: exchange rate not available for USD to NGN
	Error string `json:"error"`
}
