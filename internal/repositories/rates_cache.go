package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// ratesCacheKey is the Redis key holding the latest exchange rates snapshot.
const ratesCacheKey = "exchange_rates:latest"

// ErrRatesNotCached is returned when no rates snapshot is present in the cache.
var ErrRatesNotCached = errors.New("exchange rates not found in cache")

// RatesCacheRepository caches the latest exchange rates snapshot in Redis.
type RatesCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewRatesCacheRepository creates a new repository instance with the given TTL.
func NewRatesCacheRepository(client *redis.Client, expiration time.Duration) *RatesCacheRepository {
	return &RatesCacheRepository{client: client, exp: expiration}
}

// GetRates returns the cached rates snapshot.
func (r *RatesCacheRepository) GetRates(ctx context.Context) (map[string]float64, error) {
	val, err := r.client.Get(ctx, ratesCacheKey).Result()

	logger.Log.Infow("rates cache get",
		"key", ratesCacheKey,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, ErrRatesNotCached
	}
	if err != nil {
		return nil, err
	}

	var rates map[string]float64
	if err := json.Unmarshal([]byte(val), &rates); err != nil {
		return nil, fmt.Errorf("corrupt rates cache entry: %w", err)
	}
	return rates, nil
}

// SetRates caches a rates snapshot with the configured expiration.
func (r *RatesCacheRepository) SetRates(ctx context.Context, rates map[string]float64) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, ratesCacheKey, data, r.exp).Err()

	logger.Log.Infow("rates cache set",
		"key", ratesCacheKey,
		"currencies", len(rates),
		"error", err,
	)

	return err
}
