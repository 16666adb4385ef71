package llm

import (
	"maps"
	"sync"
	"time"

	"github.com/Veraticus/lifedash/internal/model"
)

const (
	defaultCacheTTL     = 15 * time.Minute
	defaultCacheEntries = 512
)

type cacheEntry struct {
	expiry time.Time
	intent model.Intent
}

// intentCache remembers remote classifications by normalized text.
// Expired entries are swept in the background and whenever the cache is full.
type intentCache struct {
	entries    map[string]cacheEntry
	now        func() time.Time
	stopCh     chan struct{}
	stopOnce   sync.Once
	ttl        time.Duration
	maxEntries int
	mu         sync.RWMutex
}

func newIntentCache(ttl time.Duration) *intentCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	c := &intentCache{
		entries:    make(map[string]cacheEntry),
		now:        time.Now,
		ttl:        ttl,
		maxEntries: defaultCacheEntries,
		stopCh:     make(chan struct{}),
	}
	go c.sweepEvery(min(ttl, 5*time.Minute))
	return c
}

// get returns a copy of the cached intent so callers cannot alter the entry.
func (c *intentCache) get(key string) (model.Intent, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiry) {
		return model.Intent{}, false
	}
	in := entry.intent
	in.Parameters = maps.Clone(in.Parameters)
	return in, true
}

// set stores in under key. When the cache is full and nothing has expired,
// the entry closest to expiry makes room.
func (c *intentCache) set(key string, in model.Intent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.sweepLocked()
		if len(c.entries) >= c.maxEntries {
			c.evictOldestLocked()
		}
	}
	in.Parameters = maps.Clone(in.Parameters)
	c.entries[key] = cacheEntry{intent: in, expiry: c.now().Add(c.ttl)}
}

func (c *intentCache) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			c.sweepLocked()
			c.mu.Unlock()
		}
	}
}

func (c *intentCache) sweepLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, key)
		}
	}
}

func (c *intentCache) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expiry.Before(oldest) {
			oldestKey, oldest = key, entry.expiry
		}
	}
	delete(c.entries, oldestKey)
}

func (c *intentCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// close stops the background sweep. Calling it twice is safe.
func (c *intentCache) close() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}
