package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// RedisStore keeps cached pages in Redis; TTL handling is delegated to the
// server, so there is no expiry bookkeeping on our side.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(key string) ([]byte, bool) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (s *RedisStore) Set(key string, value []byte, ttl time.Duration) {
	s.client.Set(ctx, key, value, ttl)
}

func (s *RedisStore) Delete(key string) {
	s.client.Del(ctx, key)
}

func (s *RedisStore) Purge() {
	s.client.FlushDB(ctx)
}
