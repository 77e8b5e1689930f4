package hashing

// cacheKey pairs a position key with the remaining depth.
type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache remembers perft node counts by position key and depth.
type PerftCache struct {
	// table stores node counts
	table map[cacheKey]uint64
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftCache creates a new cache. maxCapacity of 0 means unlimited.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		table:       make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for hash at depth.
func (c *PerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.table[cacheKey{hash, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records a node count. Once the cache is full new entries are
// dropped.
func (c *PerftCache) Store(hash uint64, depth int, nodes uint64) {
	if c.IsFull() {
		return
	}
	c.table[cacheKey{hash, depth}] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.table)
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *PerftCache) Misses() int {
	return c.misses
}

// Reset clears the cache and its counters.
func (c *PerftCache) Reset() {
	c.table = make(map[cacheKey]uint64)
	c.hits = 0
	c.misses = 0
}
