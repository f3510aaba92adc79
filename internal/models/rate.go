package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rate quote provenance. Provider-sourced quotes carry the provider name
// instead of one of these constants.
const (
	SourceCache    = "cache"
	SourceStore    = "store"
	SourceFallback = "fallback"
)

// Amount tier buckets used in cache keys. Stored rates can carry a
// low-amount tier, so the raw rate itself is amount-dependent; bucketing the
// cache key keeps one tier from being served to another.
const (
	TierBase = "base"
	TierLow  = "low"
	TierMid  = "mid"
	TierHigh = "high"
)

var (
	midTierThreshold  = decimal.NewFromInt(5000)
	highTierThreshold = decimal.NewFromInt(10000)
)

// AmountTiers lists every tier bucket, used when invalidating a pair.
var AmountTiers = []string{TierBase, TierLow, TierMid, TierHigh}

// TierForAmount maps an optional amount to its cache tier bucket.
func TierForAmount(amount *decimal.Decimal) string {
	switch {
	case amount == nil:
		return TierBase
	case amount.GreaterThanOrEqual(highTierThreshold):
		return TierHigh
	case amount.GreaterThanOrEqual(midTierThreshold):
		return TierMid
	default:
		return TierLow
	}
}

// RateQuote is a raw (pre-margin, pre-discount) rate with provenance.
// Immutable once constructed; this is what the cache stores.
type RateQuote struct {
	Pair       CurrencyPair      `json:"pair"`
	RawRate    decimal.Decimal   `json:"raw_rate"`
	Source     string            `json:"source"`
	ResolvedAt time.Time         `json:"resolved_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// StoredRate is one dated row of the exchange_rates table. The read path
// always takes the most recent row per pair.
type StoredRate struct {
	RateID         uuid.UUID           `db:"rate_id" json:"rate_id"`
	CurrencyFrom   string              `db:"currency_from" json:"currency_from"`
	CurrencyTo     string              `db:"currency_to" json:"currency_to"`
	Rate           decimal.Decimal     `db:"rate" json:"rate"`
	LowAmountRate  decimal.NullDecimal `db:"low_amount_rate" json:"low_amount_rate,omitempty"`
	LowAmountLimit decimal.NullDecimal `db:"low_amount_limit" json:"low_amount_limit,omitempty"`
	CreatedAt      time.Time           `db:"created_at" json:"created_at"`
}

// Pair returns the directed pair of the row.
func (r StoredRate) Pair() CurrencyPair {
	return CurrencyPair{From: r.CurrencyFrom, To: r.CurrencyTo}
}

// PricedRate is the output of the pricing policy: the customer-facing rate
// together with the adjustments that produced it.
type PricedRate struct {
	RawRate        decimal.Decimal `json:"raw_rate"`
	FinalRate      decimal.Decimal `json:"final_rate"`
	MarginApplied  decimal.Decimal `json:"margin_applied"`
	VolumeDiscount decimal.Decimal `json:"volume_discount"`
}

// PricedQuote is a resolved and priced rate, returned by GetRate.
type PricedQuote struct {
	Pair           CurrencyPair    `json:"pair"`
	RawRate        decimal.Decimal `json:"raw_rate"`
	FinalRate      decimal.Decimal `json:"final_rate"`
	MarginApplied  decimal.Decimal `json:"margin_applied"`
	VolumeDiscount decimal.Decimal `json:"volume_discount"`
	Source         string          `json:"source"`
	ResolvedAt     time.Time       `json:"resolved_at"`
}

// ConvertedQuote is the result of a full conversion. Transient; never
// mutated after construction.
type ConvertedQuote struct {
	Pair            CurrencyPair    `json:"pair"`
	AmountSent      decimal.Decimal `json:"amount_sent"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	EffectiveRate   decimal.Decimal `json:"effective_rate"`
	MarginApplied   decimal.Decimal `json:"margin_applied"`
	VolumeDiscount  decimal.Decimal `json:"volume_discount"`
	Source          string          `json:"source"`
	ComputedAt      time.Time       `json:"computed_at"`
}

// RefreshResult reports the outcome of a RefreshAll run.
type RefreshResult struct {
	Refreshed []CurrencyPair `json:"refreshed"`
	Failed    []CurrencyPair `json:"failed"`
}

// RateEvent is published to Kafka after a successful rate update.
type RateEvent struct {
	Pair         string    `json:"pair"`
	CurrencyFrom string    `json:"currency_from"`
	CurrencyTo   string    `json:"currency_to"`
	Rate         string    `json:"rate"`
	Source       string    `json:"source"`
	UpdatedAt    time.Time `json:"updated_at"`
}
