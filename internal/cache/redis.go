package cache

import (
	"context"
	"fmt"

	"github.com/cyclesight/cyclesight/internal/analytics"
	"github.com/cyclesight/cyclesight/internal/config"
	"github.com/cyclesight/cyclesight/internal/logging"
	"github.com/cyclesight/cyclesight/internal/utils"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements SeriesCache on Redis with snappy-compressed
// JSON values and a TTL.
type RedisCache struct {
	logger *logging.Logger
	client *redis.Client
	cfg    config.CacheConfig
}

// NewRedis creates a Redis-backed series cache and verifies the
// connection with a ping.
func NewRedis(logger *logging.Logger, cfg config.CacheConfig) (*RedisCache, error) {
	// Parse URL or fall back to treating it as a plain address
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		opts = &redis.Options{
			Addr:     cfg.URL,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), utils.CacheConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "cyclesight"
	}

	return &RedisCache{
		logger: logger,
		client: client,
		cfg:    cfg,
	}, nil
}

func (r *RedisCache) key(symbol, rangeLabel string) string {
	return fmt.Sprintf("%s:series:%s:%s", r.cfg.KeyPrefix, symbol, rangeLabel)
}

// Get returns the cached series for symbol+range. Any Redis or decode
// failure is logged and reported as a miss.
func (r *RedisCache) Get(ctx context.Context, symbol, rangeLabel string) (analytics.Series, bool) {
	payload, err := r.client.Get(ctx, r.key(symbol, rangeLabel)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn("Cache read failed", "symbol", symbol, "range", rangeLabel, "error", err)
		}
		return nil, false
	}

	series, err := decodeSeries(payload)
	if err != nil {
		r.logger.Warn("Cache payload corrupt", "symbol", symbol, "range", rangeLabel, "error", err)
		return nil, false
	}
	return series, true
}

// Set stores a series for symbol+range with the configured TTL.
// Failures are logged and otherwise ignored.
func (r *RedisCache) Set(ctx context.Context, symbol, rangeLabel string, series analytics.Series) {
	payload, err := encodeSeries(series)
	if err != nil {
		r.logger.Warn("Cache encode failed", "symbol", symbol, "range", rangeLabel, "error", err)
		return
	}

	if err := r.client.Set(ctx, r.key(symbol, rangeLabel), payload, r.cfg.TTL).Err(); err != nil {
		r.logger.Warn("Cache write failed", "symbol", symbol, "range", rangeLabel, "error", err)
	}
}

// Close closes the Redis client
func (r *RedisCache) Close() error {
	return r.client.Close()
}
