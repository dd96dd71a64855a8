package cache

import (
	"sync"
	"time"

	"github.com/xosoviet/xoso-backend/internal/models"
)

// Defaults applied when the constructor receives non-positive values
const (
	DefaultCapacity = 100
	DefaultTTL      = 5 * time.Minute
)

type entry struct {
	value    models.ResultSet
	storedAt time.Time
}

// ResultCache is a bounded in-memory store for resolved result sets.
// Eviction is FIFO by insertion order; there is no access-recency
// tracking. Expired entries are purged lazily on read, never by a
// background sweeper. Capacity and TTL are fixed at construction.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]entry

	// queue keeps keys in insertion order. The front (index 0) is the
	// oldest key and the next eviction candidate.
	queue []string
}

// Stats is a point-in-time snapshot of the cache for the admin surface
type Stats struct {
	Size     int           `json:"size"`
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
	Keys     []string      `json:"keys"` // insertion order, oldest first
}

// New creates a ResultCache with the given capacity and TTL
func New(capacity int, ttl time.Duration) *ResultCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ResultCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]entry),
		queue:    make([]string, 0, capacity),
	}
}

// Set stores a value under key. At capacity it first evicts the single
// oldest-inserted entry, which may drop unrelated data. Overwriting an
// existing key refreshes its value and timestamp but keeps its position
// in the eviction order.
func (c *ResultCache) Set(key string, value models.ResultSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry{value: value, storedAt: time.Now()}
		return
	}
	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = entry{value: value, storedAt: time.Now()}
	c.queue = append(c.queue, key)
}

// Get returns the value stored under key if it is present and younger
// than the TTL. A present-but-expired entry is removed on this read.
// Absence is a normal result, not an error.
func (c *ResultCache) Get(key string) (models.ResultSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

// Has reports whether Get would return a value for key
func (c *ResultCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.get(key)
	return ok
}

// Clear removes all entries immediately
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.queue = c.queue[:0]
}

// Len returns the number of entries currently stored, expired or not
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Snapshot returns current size, limits and keys in insertion order
func (c *ResultCache) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]string, len(c.queue))
	copy(keys, c.queue)
	return Stats{
		Size:     len(c.entries),
		Capacity: c.capacity,
		TTL:      c.ttl,
		Keys:     keys,
	}
}

// get assumes c.mu is held
func (c *ResultCache) get(key string) (models.ResultSet, bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.storedAt) > c.ttl {
		delete(c.entries, key)
		c.removeFromQueue(key)
		return nil, false
	}
	return e.value, true
}

// evictOldest assumes c.mu is held
func (c *ResultCache) evictOldest() {
	for len(c.queue) > 0 {
		k := c.queue[0]
		c.queue = c.queue[1:]
		if _, ok := c.entries[k]; ok {
			delete(c.entries, k)
			return
		}
	}
}

// removeFromQueue assumes c.mu is held; order is preserved
func (c *ResultCache) removeFromQueue(key string) {
	for i, k := range c.queue {
		if k == key {
			c.queue = append(c.queue[:i], c.queue[i+1:]...)
			return
		}
	}
}
