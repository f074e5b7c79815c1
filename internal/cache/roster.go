package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"intouch/internal/domain"
)

// RosterCache holds the joined specialist roster for a short TTL so listing
// and search requests do not hit the database on every keystroke-driven
// refetch. Invalidated on any profile write.
type RosterCache interface {
	Get(ctx context.Context) ([]domain.Specialist, bool)
	Set(ctx context.Context, roster []domain.Specialist)
	Invalidate(ctx context.Context)
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

const rosterKey = "intouch:roster"

type RedisRosterCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRosterCache(rdb *redis.Client, ttl time.Duration) *RedisRosterCache {
	return &RedisRosterCache{rdb: rdb, ttl: ttl}
}

func (c *RedisRosterCache) Get(ctx context.Context) ([]domain.Specialist, bool) {
	// Any cache failure is a miss; the caller falls back to the database.
	data, err := c.rdb.Get(ctx, rosterKey).Bytes()
	if err != nil {
		return nil, false
	}

	var roster []domain.Specialist
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, false
	}

	return roster, true
}

func (c *RedisRosterCache) Set(ctx context.Context, roster []domain.Specialist) {
	data, err := json.Marshal(roster)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, rosterKey, data, c.ttl)
}

func (c *RedisRosterCache) Invalidate(ctx context.Context) {
	c.rdb.Del(ctx, rosterKey)
}
