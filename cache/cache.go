package cache

import (
	"sync"
	"sync/atomic"
)

// Cache is a concurrency-safe map whose size is bounded by an
// EvictionPolicy. The zero value is not usable; call New.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	store   map[K]V
	policy  EvictionPolicy[K]
	onEvict func(K, V)

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithPolicy sets the eviction policy. The default is an LRU of
// DefaultCapacity entries.
func WithPolicy[K comparable, V any](p EvictionPolicy[K]) Option[K, V] {
	return func(c *Cache[K, V]) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithStore supplies the backing map. Entries already in it are
// registered with the policy in map order.
func WithStore[K comparable, V any](m map[K]V) Option[K, V] {
	return func(c *Cache[K, V]) {
		if m != nil {
			c.store = m
		}
	}
}

// WithEvictFunc registers a callback run, under the cache lock, for
// every entry the policy evicts.
func WithEvictFunc[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a cache.
func New[K comparable, V any](opts ...Option[K, V]) *Cache[K, V] {
	c := &Cache[K, V]{}
	for _, opt := range opts {
		opt(c)
	}
	if c.policy == nil {
		c.policy = NewLRU[K](DefaultCapacity)
	}
	if c.store == nil {
		c.store = make(map[K]V)
	}
	for k := range c.store {
		c.policy.Added(k)
	}
	c.mu.Lock()
	c.evictLocked()
	c.mu.Unlock()
	return c
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	if !ok {
		c.misses.Add(1)
		return v, false
	}
	c.policy.Accessed(key)
	c.hits.Add(1)
	return v, true
}

// Set stores value under key, evicting as the policy requires.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

// GetOrCreate returns the value under key, creating and storing it if
// absent. create runs under the cache lock so concurrent callers never
// create the same key twice; keep it fast.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	v, _ := c.GetOrLoad(key, func() (V, error) { return create(), nil })
	return v
}

// GetOrLoad is GetOrCreate for fallible constructors. A failed load
// stores nothing.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.store[key]; ok {
		c.policy.Accessed(key)
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)
	v, err := load()
	if err != nil {
		var zero V
		return zero, err
	}
	c.setLocked(key, v)
	return v, nil
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	if _, ok := c.store[key]; ok {
		c.store[key] = value
		c.policy.Accessed(key)
		return
	}
	c.store[key] = value
	c.policy.Added(key)
	c.evictLocked()
}

func (c *Cache[K, V]) evictLocked() {
	for {
		victim, ok := c.policy.Victim(len(c.store))
		if !ok {
			return
		}
		v, present := c.store[victim]
		if !present {
			continue
		}
		delete(c.store, victim)
		c.evictions.Add(1)
		if c.onEvict != nil {
			c.onEvict(victim, v)
		}
	}
}

// Delete removes key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.store[key]; !ok {
		return false
	}
	delete(c.store, key)
	c.policy.Removed(key)
	return true
}

// Clear removes every entry without counting evictions.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.store)
	c.policy.Reset()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	HitRate   float64
	Evictions uint64
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Hits:      hits,
		Misses:    misses,
		HitRate:   rate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats zeroes the counters.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
