// Package cache provides a generic, concurrency-safe cache with a
// pluggable eviction policy.
//
// A Cache is an ordinary value owned by whoever constructs it; there is
// no process-wide instance. Loaders and other services receive one
// through their constructors, which keeps separate instances isolated
// and makes tests deterministic.
//
//	c := cache.New(cache.WithPolicy[string, int](cache.NewLRU[string](128)))
//	v := c.GetOrCreate("answer", func() int { return 42 })
package cache
