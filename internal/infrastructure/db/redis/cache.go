package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RaafaGarcia/smartadmin-api/internal/api/metrics"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

const snapshotKey = "dashboard:snapshot"

// SnapshotCache stores the assembled dashboard payload in Redis for a short
// TTL so repeated dashboard loads skip the aggregate queries.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a SnapshotCache wrapping the given Redis client.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

// Get loads the cached payload into out; the second return is false on a miss.
func (c *SnapshotCache) Get(ctx context.Context, out *ports.DashboardData) (bool, error) {
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		return false, fmt.Errorf("snapshot get: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("snapshot decode: %w", err)
	}
	metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores the payload, replacing any previous snapshot.
func (c *SnapshotCache) Set(ctx context.Context, data *ports.DashboardData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	return c.client.Set(ctx, snapshotKey, raw, c.ttl).Err()
}
