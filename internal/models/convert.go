package models

// ConvertResponse is a successful conversion response. Decimal values cross
// the wire as strings to avoid floating-point drift.
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Source currency
	// example: USD
	FromCurrency string `json:"from_currency"`

	// Target currency
	// example: NGN
	ToCurrency string `json:"to_currency"`

	// Amount sent, in the source currency
	// example: 100.00
	AmountSent string `json:"amount_sent"`

	// Converted amount, rounded half-up to 2 decimal places
	// example: 155012.35
	ConvertedAmount string `json:"converted_amount"`

	// Effective rate, rounded half-up to 6 decimal places
	// example: 1550.123456
	EffectiveRate string `json:"effective_rate"`

	// Margin fraction applied
	// example: 0.02
	MarginApplied string `json:"margin_applied"`

	// Volume discount fraction applied
	// example: 0.002
	VolumeDiscount string `json:"volume_discount"`

	// Where the raw rate came from
	// example: store
	Source string `json:"source"`

	// Calculation timestamp, RFC 3339
	Timestamp string `json:"timestamp"`
}
