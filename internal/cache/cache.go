package cache

import (
	"sort"
	"strings"
	"sync"
)

// NameCache maps unit names to values. Keys are case-insensitive so that
// "Atlas AS7-D" and "atlas as7-d" resolve to the same entry.
type NameCache[V any] struct {
	mu     sync.RWMutex
	items  map[string]V
	hits   SafeCounter
	misses SafeCounter
}

func NewNameCache[V any]() *NameCache[V] {
	return &NameCache[V]{
		items: make(map[string]V),
	}
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *NameCache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]V)
	c.hits.Set(0)
	c.misses.Set(0)
}

func (c *NameCache[V]) Get(name string) (V, bool) {
	c.mu.RLock()
	v, ok := c.items[key(name)]
	c.mu.RUnlock()
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return v, ok
}

func (c *NameCache[V]) Add(name string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key(name)] = v
}

func (c *NameCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Keys returns the normalized keys in sorted order.
func (c *NameCache[V]) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stats returns the number of lookups that hit and missed.
func (c *NameCache[V]) Stats() (hits, misses int) {
	return c.hits.Value(), c.misses.Value()
}

// SafeCounter is a thread-safe counter
type SafeCounter struct {
	mu sync.Mutex
	v  int
}

func (c *SafeCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

func (c *SafeCounter) Set(v int) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

func (c *SafeCounter) Inc() {
	c.mu.Lock()
	c.v++
	c.mu.Unlock()
}
