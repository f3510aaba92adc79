package facades

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/logger"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

var (
	// ErrUnsupportedPair is returned by a provider that has no market for
	// the requested pair. The pool treats it exactly like a network failure.
	ErrUnsupportedPair = errors.New("currency pair not supported by provider")

	// ErrNoProviderRate is returned by the pool when every provider failed.
	ErrNoProviderRate = errors.New("no provider returned a rate")
)

// DefaultProviderTimeout bounds a single provider call.
const DefaultProviderTimeout = 10 * time.Second

// RateProvider is the capability every external rate source implements.
// Implementations differ only in wire protocol; a provider must return a
// positive rate or an error, never both.
type RateProvider interface {
	Name() string
	FetchRate(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, error)
}

// ProviderPool queries providers sequentially in configured priority order.
// The first provider returning a valid rate wins. Every failure is
// swallowed and logged; each call gets its own timeout so a hung provider
// cannot eat the next one's deadline.
type ProviderPool struct {
	providers []RateProvider
	timeout   time.Duration
}

// NewProviderPool creates a pool. A non-positive timeout falls back to
// DefaultProviderTimeout.
func NewProviderPool(timeout time.Duration, providers ...RateProvider) *ProviderPool {
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	return &ProviderPool{providers: providers, timeout: timeout}
}

// FetchFirst returns the first successfully fetched rate and the name of
// the provider that produced it, or ErrNoProviderRate.
func (p *ProviderPool) FetchFirst(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, string, error) {
	for _, provider := range p.providers {
		callCtx, cancel := context.WithTimeout(ctx, p.timeout)
		rate, err := provider.FetchRate(callCtx, pair)
		cancel()

		if err != nil {
			logger.Log.Warnw("provider unavailable",
				"provider", provider.Name(),
				"pair", pair.Key(),
				"error", err,
			)
			continue
		}
		if !rate.IsPositive() {
			logger.Log.Warnw("provider returned non-positive rate",
				"provider", provider.Name(),
				"pair", pair.Key(),
				"rate", rate,
			)
			continue
		}

		return rate, provider.Name(), nil
	}

	return decimal.Decimal{}, "", ErrNoProviderRate
}
