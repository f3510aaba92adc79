package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/swapengine/gw-exchange-rates/internal/logger"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// ErrRateNotCached is returned when no unexpired quote exists for a
// pair/tier key.
var ErrRateNotCached = errors.New("rate not found in cache")

// RateCacheRepository stores raw rate quotes in Redis with TTL-based
// expiry. Keys carry the amount tier bucket so a low-amount raw rate is
// never served to a high-amount request.
type RateCacheRepository struct {
	client *redis.Client
}

// NewRateCacheRepository creates a new cache repository.
func NewRateCacheRepository(client *redis.Client) *RateCacheRepository {
	return &RateCacheRepository{client: client}
}

func cacheKey(pair models.CurrencyPair, tier string) string {
	return fmt.Sprintf("rate:%s:%s:%s", pair.From, pair.To, tier)
}

// Get fetches a cached quote. Returns ErrRateNotCached when the key is
// absent or expired; Redis enforces expiry, the caller never re-checks
// timestamps.
func (r *RateCacheRepository) Get(ctx context.Context, pair models.CurrencyPair, tier string) (*models.RateQuote, error) {
	key := cacheKey(pair, tier)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRateNotCached
		}
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var quote models.RateQuote
	if err := json.Unmarshal([]byte(val), &quote); err != nil {
		logger.Log.Errorw("cache entry corrupt", "key", key, "value", val, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache hit", "key", key, "source", quote.Source)
	return &quote, nil
}

// Set caches a quote under the pair/tier key with the given TTL.
func (r *RateCacheRepository) Set(ctx context.Context, pair models.CurrencyPair, tier string, quote *models.RateQuote, ttl time.Duration) error {
	key := cacheKey(pair, tier)

	payload, err := json.Marshal(quote)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, payload, ttl).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"source", quote.Source,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Invalidate removes every tier bucket for the pair. Used by the explicit
// update operation after the store row is committed.
func (r *RateCacheRepository) Invalidate(ctx context.Context, pair models.CurrencyPair) error {
	keys := make([]string, 0, len(models.AmountTiers))
	for _, tier := range models.AmountTiers {
		keys = append(keys, cacheKey(pair, tier))
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("cache invalidate", "pair", pair.Key(), "error", err)

	return err
}
