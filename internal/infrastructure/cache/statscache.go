package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatsCache provides Redis-based caching for dashboard statistics.
// Entries carry a short TTL so the dashboard stays close to live counts
// without hitting the database on every request. A nil client disables
// caching entirely and every lookup misses.
type StatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStatsCache creates a new StatsCache instance.
func NewStatsCache(client *redis.Client, prefix string, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get retrieves a cached payload. The second return value reports whether
// the key was present.
func (c *StatsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, c.buildKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read stats from redis: %w", err)
	}

	return data, true, nil
}

// Set stores a payload with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, key string, payload []byte) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Set(ctx, c.buildKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store stats in redis: %w", err)
	}

	return nil
}

func (c *StatsCache) buildKey(key string) string {
	return c.prefix + key
}
