package topics

import (
	"sync"
	"time"
)

// Cache stores semantic classification results keyed by normalized
// problem text. The cache is an optimization: a miss simply recomputes,
// so no ordering guarantee is required between concurrent calls.
type Cache interface {
	Get(key string) (Topic, bool)
	Set(key string, t Topic)
	Clear()
}

// DefaultCacheTTL is how long a semantic classification stays valid.
const DefaultCacheTTL = 24 * time.Hour

type cacheEntry struct {
	topic   Topic
	expires time.Time
}

// TTLCache is a mutex-guarded in-memory cache with per-entry expiry.
// Safe for concurrent use.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewTTLCache creates a cache with the given TTL. A non-positive TTL
// falls back to DefaultCacheTTL.
func NewTTLCache(ttl time.Duration) *TTLCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &TTLCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *TTLCache) Get(key string) (Topic, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return TopicUnknown, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return TopicUnknown, false
	}
	return e.topic, true
}

func (c *TTLCache) Set(key string, t Topic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{topic: t, expires: c.now().Add(c.ttl)}
}

func (c *TTLCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of entries, expired ones included.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
