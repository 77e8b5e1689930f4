package hashing

import (
	"sync"
)

// ThreadSafePerftCache wraps PerftCache with mutex protection for concurrent access.
type ThreadSafePerftCache struct {
	cache *PerftCache
	mu    sync.RWMutex
}

// NewThreadSafePerftCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafePerftCache(maxCapacity int) *ThreadSafePerftCache {
	return &ThreadSafePerftCache{
		cache: NewPerftCache(maxCapacity),
	}
}

// Lookup returns the stored node count for hash at depth.
// It takes the write lock because lookups update the hit counters.
func (c *ThreadSafePerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(hash, depth)
}

// Store records a node count.
func (c *ThreadSafePerftCache) Store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafePerftCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Hits returns the number of successful lookups.
func (c *ThreadSafePerftCache) Hits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Hits()
}

// IsFull returns true if the cache has reached its capacity limit.
func (c *ThreadSafePerftCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}
