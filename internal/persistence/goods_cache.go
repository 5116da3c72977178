package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	goodsListKey = "goods:list"
	goodsListTTL = 30 * time.Second
)

// GoodsCache caches the goods list projection in Redis. All methods are
// best-effort: a cache fault is logged and treated as a miss, never
// surfaced to the caller.
type GoodsCache struct {
	redis  *Redis
	logger *zap.Logger
}

// NewGoodsCache builds the cache. A nil or unreachable Redis degrades to
// pass-through behavior.
func NewGoodsCache(r *Redis, logger *zap.Logger) *GoodsCache {
	return &GoodsCache{redis: r, logger: logger}
}

// GetList returns the cached list projection and whether it was present.
func (c *GoodsCache) GetList(ctx context.Context, dest any) bool {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return false
	}
	payload, err := c.redis.Client.Get(ctx, goodsListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("goods cache get failed", zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Debug("goods cache decode failed", zap.Error(err))
		return false
	}
	return true
}

// SetList stores the list projection.
func (c *GoodsCache) SetList(ctx context.Context, value any) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Debug("goods cache encode failed", zap.Error(err))
		return
	}
	if err := c.redis.Client.Set(ctx, goodsListKey, payload, goodsListTTL).Err(); err != nil {
		c.logger.Debug("goods cache set failed", zap.Error(err))
	}
}

// Invalidate drops the cached list after any goods mutation.
func (c *GoodsCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, goodsListKey).Err(); err != nil {
		c.logger.Debug("goods cache invalidate failed", zap.Error(err))
	}
}
