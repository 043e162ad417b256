package metricscache

import (
	"sync"
	"time"
)

// maxKeys bounds a Keyed cache; crossing it drops every slot.
const maxKeys = 500

// Keyed holds one Cache per key, e.g. one per owner and period.
type Keyed[T any] struct {
	name string
	now  Clock

	mu     sync.Mutex
	caches map[string]*Cache[T]
}

func NewKeyed[T any](name string, now Clock) *Keyed[T] {
	if now == nil {
		now = time.Now
	}
	return &Keyed[T]{name: name, now: now, caches: map[string]*Cache[T]{}}
}

func (k *Keyed[T]) GetOrCompute(key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	return k.slot(key).GetOrCompute(ttl, compute)
}

func (k *Keyed[T]) slot(key string) *Cache[T] {
	k.mu.Lock()
	defer k.mu.Unlock()

	c, ok := k.caches[key]
	if ok {
		return c
	}
	if len(k.caches) >= maxKeys {
		k.caches = map[string]*Cache[T]{}
	}
	c = New[T](k.name, k.now)
	k.caches[key] = c
	return c
}

// Len is the number of live slots.
func (k *Keyed[T]) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.caches)
}
