package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"delivery-ops-service/internal/domain"
)

const latestSnapshotKey = "simulation:latest"

// Redis-backed cache for the latest simulation snapshot, the hot read of
// the dashboard. Written through after every run; the database remains the
// source of truth, so the entry carries a TTL and a miss just falls back.
type RedisHistoryCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisHistoryCache(client *redis.Client, ttl time.Duration) *RedisHistoryCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisHistoryCache{Client: client, TTL: ttl}
}

// Fetch the cached latest snapshot. A missing key is (nil, nil).
func (c *RedisHistoryCache) GetLatest(ctx context.Context) (*domain.HistorySnapshot, error) {
	payload, err := c.Client.Get(ctx, latestSnapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history cache: get latest: %w", err)
	}

	var snap domain.HistorySnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten on
		// the next run.
		return nil, nil
	}

	return &snap, nil
}

// Store the latest snapshot with the configured TTL.
func (c *RedisHistoryCache) PutLatest(ctx context.Context, snap *domain.HistorySnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("history cache: marshal snapshot id=%d: %w", snap.ID, err)
	}

	if err := c.Client.Set(ctx, latestSnapshotKey, payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("history cache: put latest: %w", err)
	}

	return nil
}
