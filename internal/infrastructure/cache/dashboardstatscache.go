package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hilla/internal/domain/ticket"
	"hilla/internal/shared/logger"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 30 * time.Second
)

// RedisDashboardStatsCache caches the dashboard aggregate as a JSON
// blob with a short TTL. The dashboard tolerates slightly stale data.
type RedisDashboardStatsCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisDashboardStatsCache(client *redis.Client, log logger.Interface) *RedisDashboardStatsCache {
	return &RedisDashboardStatsCache{
		client: client,
		logger: log,
	}
}

// Get returns the cached aggregate, or (nil, nil) on a miss.
func (c *RedisDashboardStatsCache) Get(ctx context.Context) (*ticket.DashboardStats, error) {
	data, err := c.client.Get(ctx, dashboardStatsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stats cache: %w", err)
	}

	var stats ticket.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		// Treat a corrupt entry as a miss and let a recompute overwrite it.
		c.logger.Warnw("discarding corrupt stats cache entry", "error", err)
		return nil, nil
	}

	return &stats, nil
}

func (c *RedisDashboardStatsCache) Set(ctx context.Context, stats *ticket.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := c.client.Set(ctx, dashboardStatsKey, data, dashboardStatsTTL).Err(); err != nil {
		return fmt.Errorf("failed to write stats cache: %w", err)
	}

	return nil
}
