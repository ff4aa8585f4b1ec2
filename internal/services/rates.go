package services

import (
	"context"

	"github.com/sbilibin2017/gw-trading-hub/internal/logger"
)

// RatesProvider fetches current exchange rates from the external feed.
type RatesProvider interface {
	GetLatestRates(ctx context.Context) (map[string]float64, error)
}

// RatesCache caches exchange rate snapshots.
type RatesCache interface {
	GetRates(ctx context.Context) (map[string]float64, error)
	SetRates(ctx context.Context, rates map[string]float64) error
}

// RatesService serves exchange rates, preferring the cache over the feed.
type RatesService struct {
	provider RatesProvider
	cache    RatesCache
}

// NewRatesService creates a new RatesService.
func NewRatesService(provider RatesProvider, cache RatesCache) *RatesService {
	return &RatesService{provider: provider, cache: cache}
}

// GetRates returns the latest exchange rates keyed by currency code.
// A cache miss falls through to the feed; a cache write failure is logged
// but does not fail the request.
func (svc *RatesService) GetRates(ctx context.Context) (map[string]float64, error) {
	rates, err := svc.cache.GetRates(ctx)
	if err == nil {
		return rates, nil
	}

	rates, err = svc.provider.GetLatestRates(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get exchange rates", "error", err)
		return nil, err
	}

	if err := svc.cache.SetRates(ctx, rates); err != nil {
		logger.Log.Errorw("failed to cache exchange rates", "error", err)
	}

	return rates, nil
}
