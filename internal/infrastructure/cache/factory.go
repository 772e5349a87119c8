package cache

import (
	"go.uber.org/zap"

	"github.com/littleshop/backend/internal/application/reporting"
	"github.com/littleshop/backend/internal/infrastructure/config"
)

// NewRevenueCache builds the revenue cache the configuration asks for.
// With Redis disabled, or unreachable, it falls back to the in-memory
// cache so a cache outage never takes reporting down with it.
func NewRevenueCache(cfg config.RedisConfig, logger *zap.Logger) reporting.RevenueCache {
	if !cfg.Enabled {
		return NewInMemoryRevenueCache(cfg.TTL)
	}

	redisCache, err := NewRedisRevenueCache(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory revenue cache", zap.Error(err))
		return NewInMemoryRevenueCache(cfg.TTL)
	}
	logger.Info("using redis revenue cache", zap.String("addr", cfg.Addr))
	return redisCache
}
