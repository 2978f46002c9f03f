// internal/cache/memory.go
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryCache keeps values in process memory. Values are stored as JSON so
// callers never share mutable state with the cache.
type MemoryCache struct {
	mu       sync.Mutex
	now      func() time.Time
	entries  map[string]memoryEntry
	counters map[string]int64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		now:      time.Now,
		entries:  make(map[string]memoryEntry),
		counters: make(map[string]int64),
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(entry.data, dest)
}

func (c *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	now := c.now()
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expires = now.Add(ttl)
	}

	c.mu.Lock()
	c.sweep(now)
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// sweep drops every expired entry. Keys that are never read again, such as
// those of an old cache generation, would otherwise stay forever.
// c.mu must be held.
func (c *MemoryCache) sweep(now time.Time) {
	for key, entry := range c.entries {
		if !entry.expires.IsZero() && !now.Before(entry.expires) {
			delete(c.entries, key)
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) Counter(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[key], nil
}

func (c *MemoryCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[key]++
	return c.counters[key], nil
}
