package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/models"

	"github.com/go-redis/redis/v8"
)

const dashboardKey = "dashboard:stats"

// Cache wraps redis for the dashboard summary. A nil *Cache is valid and
// disables caching, so tests and cache-less deployments skip redis entirely.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// GetDashboardStats returns the cached stats, or (nil, nil) on a miss.
func (c *Cache) GetDashboardStats() (*models.DashboardStats, error) {
	if c == nil {
		return nil, nil
	}
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, dashboardKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	var stats models.DashboardStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard stats: %w", err)
	}
	return &stats, nil
}

func (c *Cache) SetDashboardStats(stats *models.DashboardStats) error {
	if c == nil {
		return nil
	}
	ctx := context.Background()
	jsonData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}
	return c.rdb.Set(ctx, dashboardKey, jsonData, c.ttl).Err()
}

// InvalidateDashboard drops the cached stats. Called after every client or
// work order write. Errors are swallowed: a stale miss only costs one
// recomputation.
func (c *Cache) InvalidateDashboard() {
	if c == nil {
		return
	}
	ctx := context.Background()
	c.rdb.Del(ctx, dashboardKey)
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
