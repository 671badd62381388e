package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the dashboard report payloads. Invalidated as a group
// whenever an incident is created, updated or deleted.
const (
	CacheKeyDistrictStats   = "dashboard:district_stats"
	CacheKeyHotspots        = "dashboard:hotspots"
	CacheKeyTopCrimeTypes   = "dashboard:top_crime_types"
	CacheKeyRecentIncidents = "dashboard:recent_incidents"
)

var dashboardCacheKeys = []string{
	CacheKeyDistrictStats,
	CacheKeyHotspots,
	CacheKeyTopCrimeTypes,
	CacheKeyRecentIncidents,
}

// DashboardCache stores serialized report payloads in Redis with a
// short TTL so dashboard refreshes do not re-run the aggregates.
type DashboardCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDashboardCache(redisClient *redis.Client, ttl time.Duration) *DashboardCache {
	return &DashboardCache{redisClient: redisClient, ttl: ttl}
}

// Get unmarshals the cached payload for key into dest. Reports false
// on a cache miss.
func (c *DashboardCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached %s: %w", key, err)
	}
	return true, nil
}

// Set stores the payload for key with the configured TTL.
func (c *DashboardCache) Set(ctx context.Context, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := c.redisClient.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}

// Invalidate drops every dashboard payload.
func (c *DashboardCache) Invalidate(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, dashboardCacheKeys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate dashboard cache: %w", err)
	}
	return nil
}
