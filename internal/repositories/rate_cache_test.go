package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/swapengine/gw-exchange-rates/internal/models"
)

func TestRateCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewRateCacheRepository(rdb)
	pair := models.CurrencyPair{From: "USD", To: "NGN"}

	quote := &models.RateQuote{
		Pair:       pair,
		RawRate:    decimal.RequireFromString("1550.123456"),
		Source:     "fixer",
		ResolvedAt: time.Now().UTC().Truncate(time.Second),
	}

	t.Run("Set and Get roundtrip preserves precision", func(t *testing.T) {
		err := repo.Set(ctx, pair, models.TierBase, quote, time.Minute)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, pair, models.TierBase)
		assert.NoError(t, err)
		assert.True(t, got.RawRate.Equal(quote.RawRate))
		assert.Equal(t, "fixer", got.Source)
	})

	t.Run("tier buckets are isolated", func(t *testing.T) {
		lowQuote := &models.RateQuote{Pair: pair, RawRate: decimal.RequireFromString("1530"), Source: models.SourceStore}
		err := repo.Set(ctx, pair, models.TierLow, lowQuote, time.Minute)
		assert.NoError(t, err)

		gotLow, err := repo.Get(ctx, pair, models.TierLow)
		assert.NoError(t, err)
		assert.True(t, gotLow.RawRate.Equal(lowQuote.RawRate))

		gotBase, err := repo.Get(ctx, pair, models.TierBase)
		assert.NoError(t, err)
		assert.True(t, gotBase.RawRate.Equal(quote.RawRate))
	})

	t.Run("Get missing key returns ErrRateNotCached", func(t *testing.T) {
		_, err := repo.Get(ctx, models.CurrencyPair{From: "EUR", To: "KES"}, models.TierBase)
		assert.ErrorIs(t, err, ErrRateNotCached)
	})

	t.Run("Invalidate clears every tier bucket", func(t *testing.T) {
		for _, tier := range models.AmountTiers {
			err := repo.Set(ctx, pair, tier, quote, time.Minute)
			require.NoError(t, err)
		}

		err := repo.Invalidate(ctx, pair)
		assert.NoError(t, err)

		for _, tier := range models.AmountTiers {
			_, err := repo.Get(ctx, pair, tier)
			assert.ErrorIs(t, err, ErrRateNotCached)
		}
	})

	t.Run("cached value expires", func(t *testing.T) {
		err := repo.Set(ctx, pair, models.TierMid, quote, 2*time.Second)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, pair, models.TierMid)
		assert.ErrorIs(t, err, ErrRateNotCached)
	})
}
