package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// ErrInvalidRate is returned for non-positive raw rates; this is a
// programming or input error, not an operational one.
var ErrInvalidRate = errors.New("rate must be positive")

// MarginConfig holds the house spread for one pair, as fractions.
type MarginConfig struct {
	Buy  decimal.Decimal
	Sell decimal.Decimal
}

// VolumeTier grants a multiplicative rate improvement at or above a
// threshold. Thresholds are compared against the raw amount in the source
// currency's units regardless of denomination; deployments quoting pairs
// with very different unit sizes should inject their own tiers.
type VolumeTier struct {
	Threshold  decimal.Decimal
	Multiplier decimal.Decimal
}

// PricingConfig parameterizes the pricing policy. Injected at construction
// so tests can swap margin tables without process-wide state.
type PricingConfig struct {
	// Margins keyed by pair key ("USD_NGN"). Pairs without an entry use
	// DefaultMargin.
	Margins       map[string]MarginConfig
	DefaultMargin MarginConfig

	// LocalCurrencies is the set of house base currencies. When the
	// source currency is local the customer is selling it to the house.
	LocalCurrencies map[string]bool

	// VolumeTiers in descending threshold order; the first matching tier
	// applies.
	VolumeTiers []VolumeTier
}

// DefaultPricingConfig mirrors the production margin table: 2% on NGN/USD,
// 3% on UGX/NGN, 2.5% on USD/UGX, 2% everywhere else.
func DefaultPricingConfig() PricingConfig {
	two := decimal.RequireFromString("0.02")
	twoHalf := decimal.RequireFromString("0.025")
	three := decimal.RequireFromString("0.03")

	return PricingConfig{
		Margins: map[string]MarginConfig{
			"NGN_USD": {Buy: two, Sell: two},
			"USD_NGN": {Buy: two, Sell: two},
			"UGX_NGN": {Buy: three, Sell: three},
			"NGN_UGX": {Buy: three, Sell: three},
			"USD_UGX": {Buy: twoHalf, Sell: twoHalf},
			"UGX_USD": {Buy: twoHalf, Sell: twoHalf},
		},
		DefaultMargin: MarginConfig{Buy: two, Sell: two},
		LocalCurrencies: map[string]bool{
			models.NGN: true,
			models.UGX: true,
		},
		VolumeTiers: []VolumeTier{
			{Threshold: decimal.NewFromInt(10000), Multiplier: decimal.RequireFromString("0.995")},
			{Threshold: decimal.NewFromInt(5000), Multiplier: decimal.RequireFromString("0.998")},
		},
	}
}

// PricingPolicy applies margin and volume adjustments to a raw rate.
// Pure: identical inputs always produce identical output.
type PricingPolicy struct {
	cfg PricingConfig
}

func NewPricingPolicy(cfg PricingConfig) *PricingPolicy {
	return &PricingPolicy{cfg: cfg}
}

// Apply prices a raw rate for a pair and optional amount. A nil amount is
// quote-only mode: the raw rate passes through untouched.
func (p *PricingPolicy) Apply(rawRate decimal.Decimal, pair models.CurrencyPair, amount *decimal.Decimal) (models.PricedRate, error) {
	if !rawRate.IsPositive() {
		return models.PricedRate{}, ErrInvalidRate
	}
	if amount != nil && !amount.IsPositive() {
		return models.PricedRate{}, models.ErrInvalidAmount
	}

	one := decimal.NewFromInt(1)

	if amount == nil {
		return models.PricedRate{
			RawRate:        rawRate,
			FinalRate:      rawRate,
			MarginApplied:  decimal.Zero,
			VolumeDiscount: decimal.Zero,
		}, nil
	}

	margins, ok := p.cfg.Margins[pair.Key()]
	if !ok {
		margins = p.cfg.DefaultMargin
	}

	// Customer selling local currency: the house buys, the rate moves
	// down. Customer buying local currency: the house sells, the rate
	// moves up.
	var margin decimal.Decimal
	var adjusted decimal.Decimal
	if p.cfg.LocalCurrencies[pair.From] {
		margin = margins.Buy
		adjusted = rawRate.Mul(one.Sub(margin))
	} else {
		margin = margins.Sell
		adjusted = rawRate.Mul(one.Add(margin))
	}

	multiplier := one
	for _, tier := range p.cfg.VolumeTiers {
		if amount.GreaterThanOrEqual(tier.Threshold) {
			multiplier = tier.Multiplier
			break
		}
	}

	return models.PricedRate{
		RawRate:        rawRate,
		FinalRate:      adjusted.Mul(multiplier),
		MarginApplied:  margin,
		VolumeDiscount: one.Sub(multiplier),
	}, nil
}
