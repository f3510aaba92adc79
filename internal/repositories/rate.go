package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/swapengine/gw-exchange-rates/internal/logger"
	"github.com/swapengine/gw-exchange-rates/internal/models"
)

// RateReadRepository reads stored exchange rates.
type RateReadRepository struct {
	db *sqlx.DB
}

func NewRateReadRepository(db *sqlx.DB) *RateReadRepository {
	return &RateReadRepository{db: db}
}

// GetLatest returns the most recent stored rate for a directed pair, or
// nil when the pair has never been stored. Staleness is judged by the
// caller.
func (r *RateReadRepository) GetLatest(ctx context.Context, pair models.CurrencyPair) (*models.StoredRate, error) {
	const query = `
		SELECT rate_id, currency_from, currency_to, rate, low_amount_rate, low_amount_limit, created_at
		FROM exchange_rates
		WHERE currency_from = $1 AND currency_to = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var rate models.StoredRate
	err := r.db.GetContext(ctx, &rate, query, pair.From, pair.To)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pair.From, pair.To},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &rate, nil
}

// GetHistory returns up to limit rows for a pair, newest first.
func (r *RateReadRepository) GetHistory(ctx context.Context, pair models.CurrencyPair, limit int) ([]models.StoredRate, error) {
	const query = `
		SELECT rate_id, currency_from, currency_to, rate, low_amount_rate, low_amount_limit, created_at
		FROM exchange_rates
		WHERE currency_from = $1 AND currency_to = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	var rates []models.StoredRate
	err := r.db.SelectContext(ctx, &rates, query, pair.From, pair.To, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pair.From, pair.To, limit},
		"result", len(rates),
		"error", err,
	)

	return rates, err
}

// ListPairs returns every distinct directed pair present in the store.
func (r *RateReadRepository) ListPairs(ctx context.Context) ([]models.CurrencyPair, error) {
	const query = `
		SELECT DISTINCT currency_from AS "from", currency_to AS "to"
		FROM exchange_rates
		ORDER BY currency_from, currency_to
	`

	var pairs []models.CurrencyPair
	err := r.db.SelectContext(ctx, &pairs, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(pairs),
		"error", err,
	)

	return pairs, err
}

// RateWriteRepository persists exchange rates.
type RateWriteRepository struct {
	db *sqlx.DB
}

func NewRateWriteRepository(db *sqlx.DB) *RateWriteRepository {
	return &RateWriteRepository{db: db}
}

// Save inserts a new dated row for the pair and returns it. The read path
// orders by recency, so inserting is an upsert from the resolver's point of
// view while keeping full rate history.
func (r *RateWriteRepository) Save(ctx context.Context, pair models.CurrencyPair, rate decimal.Decimal, lowRate, lowLimit *decimal.Decimal) (*models.StoredRate, error) {
	const query = `
		INSERT INTO exchange_rates (rate_id, currency_from, currency_to, rate, low_amount_rate, low_amount_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING rate_id, currency_from, currency_to, rate, low_amount_rate, low_amount_limit, created_at
	`

	var lowRateArg, lowLimitArg decimal.NullDecimal
	if lowRate != nil {
		lowRateArg = decimal.NullDecimal{Decimal: *lowRate, Valid: true}
	}
	if lowLimit != nil {
		lowLimitArg = decimal.NullDecimal{Decimal: *lowLimit, Valid: true}
	}

	args := []any{uuid.New(), pair.From, pair.To, rate, lowRateArg, lowLimitArg}

	var stored models.StoredRate
	err := r.db.GetContext(ctx, &stored, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &stored, nil
}
