// Package cache provides a read-through cache for fetched price
// series, keyed by symbol and range, so repeated analyses of the same
// asset do not hammer the upstream provider.
package cache

import (
	"context"

	"github.com/cyclesight/cyclesight/internal/analytics"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/logging"
)

// SeriesCache stores and retrieves fetched price series.
// Implementations treat every failure as a miss; callers never see
// cache errors.
type SeriesCache interface {
	// Get returns the cached series for symbol+range, if present.
	Get(ctx context.Context, symbol, rangeLabel string) (analytics.Series, bool)

	// Set stores a series for symbol+range.
	Set(ctx context.Context, symbol, rangeLabel string, series analytics.Series)

	// Close releases any underlying connections.
	Close() error
}

// New creates a series cache from configuration: a Redis-backed cache
// when enabled, otherwise a no-op cache.
func New(logger *logging.Logger, cfg config.CacheConfig) (SeriesCache, error) {
	if !cfg.Enabled {
		return NewNoop(), nil
	}
	return NewRedis(logger, cfg)
}

// NoopCache is a SeriesCache that stores nothing.
type NoopCache struct{}

// NewNoop creates a no-op series cache
func NewNoop() *NoopCache {
	return &NoopCache{}
}

// Get always misses
func (n *NoopCache) Get(context.Context, string, string) (analytics.Series, bool) {
	return nil, false
}

// Set discards the series
func (n *NoopCache) Set(context.Context, string, string, analytics.Series) {}

// Close is a no-op
func (n *NoopCache) Close() error { return nil }
