// Package metricscache memoizes expensive dashboard aggregations for a
// bounded time. Caches are plain values owned by whoever builds the HTTP
// server; there is no package-level state.
package metricscache

import (
	"sync"
	"time"

	"autoloco/internal/metrics"
)

// Clock returns the current time.
type Clock func() time.Time

type entry[T any] struct {
	value      T
	computedAt time.Time
}

// Cache is a single memoization slot. The zero value is not usable; build
// one with New.
type Cache[T any] struct {
	name string
	now  Clock

	mu   sync.Mutex
	slot *entry[T]
}

func New[T any](name string, now Clock) *Cache[T] {
	if now == nil {
		now = time.Now
	}
	return &Cache[T]{name: name, now: now}
}

// GetOrCompute returns the stored value while it is younger than ttl.
// Otherwise it runs compute outside the lock and stores the result. A
// failing compute leaves the slot untouched. Concurrent misses may all
// compute; the last one to finish wins.
func (c *Cache[T]) GetOrCompute(ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := c.lookup(ttl); ok {
		metrics.CacheLookupsTotal.WithLabelValues(c.name, "hit").Inc()
		return v, nil
	}
	metrics.CacheLookupsTotal.WithLabelValues(c.name, "miss").Inc()

	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	c.slot = &entry[T]{value: v, computedAt: c.now()}
	c.mu.Unlock()
	return v, nil
}

func (c *Cache[T]) lookup(ttl time.Duration) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slot == nil || c.now().Sub(c.slot.computedAt) >= ttl {
		var zero T
		return zero, false
	}
	return c.slot.value, true
}

// ComputedAt reports when the stored value was produced.
func (c *Cache[T]) ComputedAt() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.slot == nil {
		return time.Time{}, false
	}
	return c.slot.computedAt, true
}
