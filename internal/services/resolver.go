package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/logger"
	"github.com/swapengine/gw-exchange-rates/internal/metrics"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

var (
	// ErrSameCurrency rejects resolution of a pair with from == to.
	ErrSameCurrency = errors.New("cannot exchange the same currency")

	// ErrNoRateAvailable means every tier of the waterfall was exhausted.
	ErrNoRateAvailable = errors.New("exchange rate not available")
)

// RateCache is the raw-quote cache owned by the resolver.
type RateCache interface {
	Get(ctx context.Context, pair models.CurrencyPair, tier string) (*models.RateQuote, error)
	Set(ctx context.Context, pair models.CurrencyPair, tier string, quote *models.RateQuote, ttl time.Duration) error
	Invalidate(ctx context.Context, pair models.CurrencyPair) error
}

// StoredRateReader reads the durable rate store.
type StoredRateReader interface {
	GetLatest(ctx context.Context, pair models.CurrencyPair) (*models.StoredRate, error)
	GetHistory(ctx context.Context, pair models.CurrencyPair, limit int) ([]models.StoredRate, error)
	ListPairs(ctx context.Context) ([]models.CurrencyPair, error)
}

// StoredRateWriter persists rates. Only explicit update operations write.
type StoredRateWriter interface {
	Save(ctx context.Context, pair models.CurrencyPair, rate decimal.Decimal, lowRate, lowLimit *decimal.Decimal) (*models.StoredRate, error)
}

// ProviderFetcher queries external rate providers in priority order.
type ProviderFetcher interface {
	FetchFirst(ctx context.Context, pair models.CurrencyPair) (decimal.Decimal, string, error)
}

// FallbackRates is the static last-resort table.
type FallbackRates interface {
	Lookup(pair models.CurrencyPair) (decimal.Decimal, bool)
	Pairs() []models.CurrencyPair
}

// RateEventPublisher announces committed rate updates. Best-effort: a
// publish failure never fails the update.
type RateEventPublisher interface {
	Publish(ctx context.Context, event models.RateEvent) error
}

// ResolverConfig carries the waterfall timing policy and the pair set the
// refresh operation covers.
type ResolverConfig struct {
	CacheTTL         time.Duration
	FallbackCacheTTL time.Duration
	StalenessWindow  time.Duration
	RefreshPairs     []models.CurrencyPair
}

// DefaultResolverConfig: 5m live cache, 1h for degraded-confidence
// fallback data, 1h store staleness window, and the six production pairs.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		CacheTTL:         5 * time.Minute,
		FallbackCacheTTL: time.Hour,
		StalenessWindow:  time.Hour,
		RefreshPairs: []models.CurrencyPair{
			{From: models.NGN, To: models.USD},
			{From: models.USD, To: models.NGN},
			{From: models.UGX, To: models.NGN},
			{From: models.NGN, To: models.UGX},
			{From: models.USD, To: models.UGX},
			{From: models.UGX, To: models.USD},
		},
	}
}

// RateResolverService implements the lookup waterfall
// cache -> store -> providers -> fallback and the explicit update, refresh
// and listing operations. It owns the cache and store exclusively.
type RateResolverService struct {
	cache     RateCache
	reader    StoredRateReader
	writer    StoredRateWriter
	providers ProviderFetcher
	fallback  FallbackRates
	pricing   *PricingPolicy
	calc      *ConversionCalculator
	publisher RateEventPublisher
	metrics   *metrics.RateMetrics
	cfg       ResolverConfig
}

// NewRateResolverService creates the resolver. publisher and m may be nil.
func NewRateResolverService(
	cache RateCache,
	reader StoredRateReader,
	writer StoredRateWriter,
	providers ProviderFetcher,
	fallback FallbackRates,
	pricing *PricingPolicy,
	calc *ConversionCalculator,
	publisher RateEventPublisher,
	m *metrics.RateMetrics,
	cfg ResolverConfig,
) *RateResolverService {
	return &RateResolverService{
		cache:     cache,
		reader:    reader,
		writer:    writer,
		providers: providers,
		fallback:  fallback,
		pricing:   pricing,
		calc:      calc,
		publisher: publisher,
		metrics:   m,
		cfg:       cfg,
	}
}

func newQuote(pair models.CurrencyPair, rate decimal.Decimal, source string, md map[string]string) *models.RateQuote {
	return &models.RateQuote{
		Pair:       pair,
		RawRate:    rate,
		Source:     source,
		ResolvedAt: time.Now().UTC(),
		Metadata:   md,
	}
}

// Resolve walks the waterfall and returns a raw quote with provenance.
// Short-circuits on the first tier that produces a rate; provider and
// store failures are absorbed, only total failure surfaces as
// ErrNoRateAvailable. Pricing is NOT applied here; callers re-derive it on
// every resolution, including cache hits, so a cached quote can never
// carry another tier's margin or discount.
func (svc *RateResolverService) Resolve(ctx context.Context, pair models.CurrencyPair, amount *decimal.Decimal) (*models.RateQuote, error) {
	start := time.Now()

	if pair.From == pair.To {
		svc.metrics.RecordResolutionError("same_currency")
		return nil, ErrSameCurrency
	}

	tier := models.TierForAmount(amount)

	if cached, err := svc.cache.Get(ctx, pair, tier); err == nil {
		quote := *cached
		md := map[string]string{}
		for k, v := range cached.Metadata {
			md[k] = v
		}
		if _, ok := md["origin"]; !ok {
			md["origin"] = cached.Source
		}
		quote.Source = models.SourceCache
		quote.Metadata = md

		svc.metrics.RecordResolution(models.SourceCache, time.Since(start).Seconds())
		return &quote, nil
	}

	if quote := svc.resolveFromStore(ctx, pair, amount, tier); quote != nil {
		svc.metrics.RecordResolution(models.SourceStore, time.Since(start).Seconds())
		return quote, nil
	}

	if rate, name, err := svc.providers.FetchFirst(ctx, pair); err == nil {
		quote := newQuote(pair, rate, name, map[string]string{"provider": name})
		if err := svc.cache.Set(ctx, pair, tier, quote, svc.cfg.CacheTTL); err != nil {
			logger.Log.Warnw("failed to cache provider rate", "pair", pair.Key(), "error", err)
		}
		svc.metrics.RecordResolution(name, time.Since(start).Seconds())
		return quote, nil
	}
	svc.metrics.RecordProviderMiss()

	if rate, ok := svc.fallback.Lookup(pair); ok {
		quote := newQuote(pair, rate, models.SourceFallback, nil)
		if err := svc.cache.Set(ctx, pair, tier, quote, svc.cfg.FallbackCacheTTL); err != nil {
			logger.Log.Warnw("failed to cache fallback rate", "pair", pair.Key(), "error", err)
		}
		svc.metrics.RecordResolution(models.SourceFallback, time.Since(start).Seconds())
		return quote, nil
	}

	logger.Log.Errorw("no rate available", "pair", pair.Key())
	svc.metrics.RecordResolutionError("no_rate")
	return nil, ErrNoRateAvailable
}

// resolveFromStore reads the latest stored rate, skipping stale rows and
// substituting the low-amount tier rate when the amount falls below the
// stored threshold. Returns nil when the store cannot serve the pair.
func (svc *RateResolverService) resolveFromStore(ctx context.Context, pair models.CurrencyPair, amount *decimal.Decimal, tier string) *models.RateQuote {
	stored, err := svc.reader.GetLatest(ctx, pair)
	if err != nil {
		logger.Log.Errorw("store lookup failed", "pair", pair.Key(), "error", err)
		return nil
	}
	if stored == nil {
		return nil
	}

	if time.Since(stored.CreatedAt) > svc.cfg.StalenessWindow {
		logger.Log.Warnw("stored rate is stale, skipping",
			"pair", pair.Key(),
			"created_at", stored.CreatedAt,
		)
		return nil
	}

	raw := stored.Rate
	if amount != nil && stored.LowAmountLimit.Valid && stored.LowAmountRate.Valid &&
		amount.LessThan(stored.LowAmountLimit.Decimal) {
		raw = stored.LowAmountRate.Decimal
	}

	quote := newQuote(pair, raw, models.SourceStore, nil)
	if err := svc.cache.Set(ctx, pair, tier, quote, svc.cfg.CacheTTL); err != nil {
		logger.Log.Warnw("failed to cache stored rate", "pair", pair.Key(), "error", err)
	}
	return quote
}

// GetRate resolves a pair and applies pricing. A nil amount returns the
// raw rate unchanged (quote-only mode).
func (svc *RateResolverService) GetRate(ctx context.Context, fromCurrency, toCurrency string, amount *decimal.Decimal) (*models.PricedQuote, error) {
	pair := models.NewCurrencyPair(fromCurrency, toCurrency)

	quote, err := svc.Resolve(ctx, pair, amount)
	if err != nil {
		return nil, err
	}

	priced, err := svc.pricing.Apply(quote.RawRate, pair, amount)
	if err != nil {
		return nil, err
	}

	return &models.PricedQuote{
		Pair:           pair,
		RawRate:        priced.RawRate,
		FinalRate:      priced.FinalRate,
		MarginApplied:  priced.MarginApplied,
		VolumeDiscount: priced.VolumeDiscount,
		Source:         quote.Source,
		ResolvedAt:     quote.ResolvedAt,
	}, nil
}

// Convert resolves, prices and converts an amount under the fixed
// rounding contract.
func (svc *RateResolverService) Convert(ctx context.Context, fromCurrency, toCurrency string, amount decimal.Decimal) (*models.ConvertedQuote, error) {
	pair := models.NewCurrencyPair(fromCurrency, toCurrency)

	quote, err := svc.Resolve(ctx, pair, &amount)
	if err != nil {
		return nil, err
	}

	priced, err := svc.pricing.Apply(quote.RawRate, pair, &amount)
	if err != nil {
		return nil, err
	}

	effectiveRate, convertedAmount, err := svc.calc.Convert(amount, priced.FinalRate)
	if err != nil {
		return nil, err
	}

	return &models.ConvertedQuote{
		Pair:            pair,
		AmountSent:      amount,
		ConvertedAmount: convertedAmount,
		EffectiveRate:   effectiveRate,
		MarginApplied:   priced.MarginApplied,
		VolumeDiscount:  priced.VolumeDiscount,
		Source:          quote.Source,
		ComputedAt:      time.Now().UTC(),
	}, nil
}

// UpdateRate persists a new rate row and then clears the pair's cache
// entries. Store commit strictly precedes invalidation so a racing
// resolution can only repopulate the cache from the already-visible row.
func (svc *RateResolverService) UpdateRate(ctx context.Context, fromCurrency, toCurrency string, rate decimal.Decimal, lowRate, lowLimit *decimal.Decimal) (*models.StoredRate, error) {
	pair := models.NewCurrencyPair(fromCurrency, toCurrency)
	if pair.From == pair.To {
		return nil, ErrSameCurrency
	}
	if !rate.IsPositive() {
		return nil, ErrInvalidRate
	}

	stored, err := svc.writer.Save(ctx, pair, rate, lowRate, lowLimit)
	if err != nil {
		logger.Log.Errorw("failed to save rate", "pair", pair.Key(), "error", err)
		return nil, err
	}

	if err := svc.cache.Invalidate(ctx, pair); err != nil {
		logger.Log.Warnw("cache invalidation failed after update", "pair", pair.Key(), "error", err)
	}

	svc.metrics.RecordRateUpdate(pair.Key())
	svc.publishEvent(ctx, pair, rate, "manual_update")

	return stored, nil
}

// GetHistory returns recent stored rates for a pair, newest first.
func (svc *RateResolverService) GetHistory(ctx context.Context, fromCurrency, toCurrency string, limit int) ([]models.StoredRate, error) {
	pair := models.NewCurrencyPair(fromCurrency, toCurrency)
	return svc.reader.GetHistory(ctx, pair, limit)
}

// ListSupportedPairs returns the union of stored and fallback pairs.
func (svc *RateResolverService) ListSupportedPairs(ctx context.Context) ([]models.CurrencyPair, error) {
	stored, err := svc.reader.ListPairs(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list stored pairs", "error", err)
		return nil, err
	}

	seen := make(map[string]bool, len(stored))
	pairs := make([]models.CurrencyPair, 0, len(stored))
	for _, p := range append(stored, svc.fallback.Pairs()...) {
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		pairs = append(pairs, p)
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Key() < pairs[j].Key() })
	return pairs, nil
}

// RefreshAll forces cache invalidation and provider re-resolution for the
// configured pair set, persisting fresh rates via the same upsert
// primitive the manual update uses. Pairs whose providers all fail are
// reported, not fatal.
func (svc *RateResolverService) RefreshAll(ctx context.Context) (*models.RefreshResult, error) {
	result := &models.RefreshResult{
		Refreshed: []models.CurrencyPair{},
		Failed:    []models.CurrencyPair{},
	}

	for _, pair := range svc.cfg.RefreshPairs {
		if err := svc.cache.Invalidate(ctx, pair); err != nil {
			logger.Log.Warnw("cache invalidation failed during refresh", "pair", pair.Key(), "error", err)
		}

		rate, name, err := svc.providers.FetchFirst(ctx, pair)
		if err != nil {
			logger.Log.Warnw("refresh failed, no provider rate", "pair", pair.Key())
			svc.metrics.RecordRefresh(false)
			result.Failed = append(result.Failed, pair)
			continue
		}

		if _, err := svc.writer.Save(ctx, pair, rate, nil, nil); err != nil {
			logger.Log.Errorw("refresh failed to persist rate", "pair", pair.Key(), "error", err)
			svc.metrics.RecordRefresh(false)
			result.Failed = append(result.Failed, pair)
			continue
		}

		quote := newQuote(pair, rate, name, map[string]string{"provider": name})
		if err := svc.cache.Set(ctx, pair, models.TierBase, quote, svc.cfg.CacheTTL); err != nil {
			logger.Log.Warnw("failed to cache refreshed rate", "pair", pair.Key(), "error", err)
		}

		svc.metrics.RecordRefresh(true)
		svc.publishEvent(ctx, pair, rate, name)
		result.Refreshed = append(result.Refreshed, pair)
	}

	logger.Log.Infow("refresh completed",
		"refreshed", len(result.Refreshed),
		"failed", len(result.Failed),
	)
	return result, nil
}

func (svc *RateResolverService) publishEvent(ctx context.Context, pair models.CurrencyPair, rate decimal.Decimal, source string) {
	if svc.publisher == nil {
		return
	}
	event := models.RateEvent{
		Pair:         pair.Key(),
		CurrencyFrom: pair.From,
		CurrencyTo:   pair.To,
		Rate:         rate.String(),
		Source:       source,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := svc.publisher.Publish(ctx, event); err != nil {
		logger.Log.Warnw("rate event publish failed", "pair", pair.Key(), "error", err)
	}
}
