package ratelimit

import (
	"context"
	"fmt"

	"ridgeline_roofing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps fixed-window counters in Redis so multiple instances
// share one view of a client's submission count.
//
// INCR is atomic server-side, which serializes same-identity increments
// without any coordination here. Expiry is handled by the key TTL; no sweep
// is needed.
type RedisStore struct {
	client *redis.Client
}

var _ interfaces.IRateLimitStore = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Allow(ctx context.Context, bucket, identity string, limit interfaces.Limit) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", bucket, identity)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis incr %q: %w", key, err)
	}
	if count == 1 {
		// First submission of the window starts the clock.
		if err := s.client.Expire(ctx, key, limit.Window).Err(); err != nil {
			return false, fmt.Errorf("redis expire %q: %w", key, err)
		}
	}
	return count <= int64(limit.Max), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
