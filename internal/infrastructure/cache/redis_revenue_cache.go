package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/littleshop/backend/internal/application/reporting"
	"github.com/littleshop/backend/internal/infrastructure/config"
)

// RedisRevenueCache is a reporting.RevenueCache backed by Redis. Cache
// failures are logged and treated as misses, never surfaced to callers.
type RedisRevenueCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisRevenueCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisRevenueCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisRevenueCache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger.Named("revenue_cache"),
	}, nil
}

func (c *RedisRevenueCache) Get(ctx context.Context, merchantID uuid.UUID, kind reporting.RevenueKind) (decimal.Decimal, bool) {
	raw, err := c.client.Get(ctx, revenueKey(merchantID, kind)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache get failed", zap.Error(err))
		}
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.logger.Warn("cache holds unparseable amount", zap.String("value", raw))
		return decimal.Zero, false
	}
	return amount, true
}

func (c *RedisRevenueCache) Set(ctx context.Context, merchantID uuid.UUID, kind reporting.RevenueKind, amount decimal.Decimal) {
	if err := c.client.Set(ctx, revenueKey(merchantID, kind), amount.String(), c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.Error(err))
	}
}

func (c *RedisRevenueCache) Invalidate(ctx context.Context, merchantID uuid.UUID) {
	keys := []string{
		revenueKey(merchantID, reporting.RevenueTotal),
		revenueKey(merchantID, reporting.RevenueDiscounted),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", zap.Error(err))
	}
}

func (c *RedisRevenueCache) Close() error {
	return c.client.Close()
}

var _ reporting.RevenueCache = (*RedisRevenueCache)(nil)
