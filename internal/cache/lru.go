package cache

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// item wraps cached bytes with their expiry.
type item struct {
	value     []byte
	expiresAt time.Time
}

// LRUStore is an in-process Store bounded by entry count; expired entries
// are dropped lazily on read.
type LRUStore struct {
	lruCache *lru.Cache[string, item]
}

func NewLRUStore(size int) *LRUStore {
	l, err := lru.New[string, item](size)
	if err != nil {
		log.Fatalf("Failed to create LRU cache: %v", err)
	}
	return &LRUStore{lruCache: l}
}

func (s *LRUStore) Get(key string) ([]byte, bool) {
	val, ok := s.lruCache.Get(key)
	if !ok {
		return nil, false
	}
	if time.Now().After(val.expiresAt) {
		s.lruCache.Remove(key)
		return nil, false
	}
	return val.value, true
}

func (s *LRUStore) Set(key string, value []byte, ttl time.Duration) {
	s.lruCache.Add(key, item{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
}

func (s *LRUStore) Delete(key string) {
	s.lruCache.Remove(key)
}

func (s *LRUStore) Purge() {
	s.lruCache.Purge()
}
