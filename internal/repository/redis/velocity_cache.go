package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"plateRank/business/recommend"
	"plateRank/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// VelocityCache wraps a VelocityProvider with a short-lived Redis cache so
// the grouped order aggregation is not run on every request. Cache failures
// fall through to the source.
type VelocityCache struct {
	client *redis.Client
	source recommend.VelocityProvider
	ttl    time.Duration
}

var _ recommend.VelocityProvider = (*VelocityCache)(nil)

func NewVelocityCache(client *redis.Client, source recommend.VelocityProvider, ttl time.Duration) *VelocityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &VelocityCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func velocityKey(windowHours int) string {
	return fmt.Sprintf("reco:velocity:%dh", windowHours)
}

func (c *VelocityCache) Velocities(ctx context.Context, windowHours int) (map[uint64]float64, error) {
	key := velocityKey(windowHours)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var cached map[uint64]float64
		if err := json.Unmarshal([]byte(val), &cached); err == nil {
			return cached, nil
		}
		// corrupt entry, refresh from source
		logger.Warn("velocity cache entry unreadable, refreshing", "key", key)
	} else if err != redis.Nil {
		logger.Warn("velocity cache read failed", "key", key, "error", err)
	}

	fresh, err := c.source.Velocities(ctx, windowHours)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(fresh)
	if err != nil {
		return fresh, nil
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.Warn("velocity cache write failed", "key", key, "error", err)
	}

	return fresh, nil
}

// Invalidate drops the cached window, forcing the next read to re-aggregate.
func (c *VelocityCache) Invalidate(ctx context.Context, windowHours int) error {
	return c.client.Del(ctx, velocityKey(windowHours)).Err()
}
