package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hotelhub/booking-system/internal/core/ports"
)

const statsKey = "dashboard:stats"

// StatsCache is a short-TTL cache for the admin dashboard rollup.
// A miss or any Redis error just falls through to the database.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache wraps the given Redis client. TTL should be a few seconds;
// the dashboard tolerates stale numbers for that long.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// GetStats returns the cached rollup, or (nil, false) on miss or error.
func (c *StatsCache) GetStats(ctx context.Context) (*ports.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

// SetStats stores the rollup, expiring after the configured TTL.
// Errors are dropped; the cache is advisory.
func (c *StatsCache) SetStats(ctx context.Context, stats *ports.DashboardStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	c.client.Set(ctx, statsKey, raw, c.ttl)
}
