package cache

import (
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a key-value cache with per-item TTL. Values are rendered page
// bytes, so the same contract works for the in-process LRU store and Redis.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	Purge()
}

var storeInstance Store

// Default returns the process-wide cache store. When REDIS_URL is set the
// cache lives in Redis, otherwise in a local LRU.
func Default() Store {
	if storeInstance == nil {
		if addr := os.Getenv("REDIS_URL"); addr != "" {
			opt, err := redis.ParseURL(addr)
			if err != nil {
				log.Fatalf("Invalid REDIS_URL: %v", err)
			}
			storeInstance = NewRedisStore(redis.NewClient(opt))
			log.Println("Page cache backed by Redis")
		} else {
			storeInstance = NewLRUStore(500)
		}
	}
	return storeInstance
}
