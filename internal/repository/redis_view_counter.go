package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCounter defines the interface for the hot view counter. Counts land in
// Redis first so the redirect path never waits on Postgres; a background
// flush moves them into the tracking_links table.
type ViewCounter interface {
	// Increment bumps the hot counter for a link
	Increment(ctx context.Context, linkID string) error
	// Drain atomically reads and resets a link's hot counter
	Drain(ctx context.Context, linkID string) (int64, error)
	// PendingIDs lists link IDs with undrained counts
	PendingIDs(ctx context.Context) ([]string, error)
}

const (
	viewKeyPrefix = "link:views:"
	viewKeyTTL    = 24 * time.Hour
)

// RedisViewCounter implements ViewCounter using Redis
type RedisViewCounter struct {
	client *redis.Client
}

// NewRedisViewCounter creates a new RedisViewCounter
func NewRedisViewCounter(client *redis.Client) *RedisViewCounter {
	return &RedisViewCounter{client: client}
}

// Increment bumps the hot counter for a link
func (c *RedisViewCounter) Increment(ctx context.Context, linkID string) error {
	key := viewKeyPrefix + linkID
	pipe := c.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, viewKeyTTL)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment view counter: %w", err)
	}
	return nil
}

// Drain atomically reads and resets a link's hot counter
func (c *RedisViewCounter) Drain(ctx context.Context, linkID string) (int64, error) {
	val, err := c.client.GetDel(ctx, viewKeyPrefix+linkID).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}

// PendingIDs lists link IDs with undrained counts
func (c *RedisViewCounter) PendingIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	iter := c.client.Scan(ctx, 0, viewKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(viewKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
