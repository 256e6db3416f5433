package cache

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is the key-value backend in front of expensive read paths. All
// implementations swallow backend failures: a broken cache reads as a miss
// and never fails the request that touched it.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
	DeletePrefix(prefix string)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects using a redis URL (redis://host:port/db).
func NewRedisCache(url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts)}, nil
}

func (r *RedisCache) Get(key string) ([]byte, bool) {
	val, err := r.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		log.Printf("CACHE GET %s -> MISS", key)
		return nil, false
	}
	if err != nil {
		log.Printf("⚠️ CACHE GET %s failed: %v", key, err)
		return nil, false
	}
	log.Printf("CACHE GET %s -> HIT", key)
	return val, true
}

func (r *RedisCache) Set(key string, value []byte, ttl time.Duration) {
	if err := r.client.Set(context.Background(), key, value, ttl).Err(); err != nil {
		log.Printf("⚠️ CACHE SET %s failed: %v", key, err)
		return
	}
	log.Printf("CACHE SET %s (ttl=%s)", key, ttl)
}

func (r *RedisCache) Delete(key string) {
	if err := r.client.Del(context.Background(), key).Err(); err != nil {
		log.Printf("⚠️ CACHE DELETE %s failed: %v", key, err)
		return
	}
	log.Printf("CACHE DELETE %s", key)
}

func (r *RedisCache) DeletePrefix(prefix string) {
	ctx := context.Background()
	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("⚠️ CACHE DELETE_PREFIX %s scan failed: %v", prefix, err)
		return
	}
	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			log.Printf("⚠️ CACHE DELETE_PREFIX %s failed: %v", prefix, err)
			return
		}
	}
	log.Printf("CACHE DELETE_PREFIX %s (%d keys)", prefix, len(keys))
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local Cache used when no REDIS_URL is configured
// and as the test double. Expiry is checked lazily on read.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry)}
}

func (m *MemoryCache) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		m.Delete(key)
		return nil, false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(key string, value []byte, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
}

func (m *MemoryCache) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *MemoryCache) DeletePrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
}
