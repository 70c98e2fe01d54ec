package voxtree

import (
	"sync"

	"go.uber.org/atomic"
)

// memo is a grow-only cache. When two goroutines compute the same key, the
// first result stored wins and both callers get it.
type memo[K comparable, R any] struct {
	mu     sync.RWMutex
	m      map[K]R
	hits   *atomic.Uint64
	misses *atomic.Uint64
}

func newMemo[K comparable, R any](hits, misses *atomic.Uint64) *memo[K, R] {
	return &memo[K, R]{m: make(map[K]R), hits: hits, misses: misses}
}

func (c *memo[K, R]) get(k K) (R, bool) {
	c.mu.RLock()
	r, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return r, ok
}

// put stores r under k unless a value is already present, and returns the
// stored value.
func (c *memo[K, R]) put(k K, r R) R {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.m[k]; ok {
		return existing
	}
	c.m[k] = r
	return r
}

func (c *memo[K, R]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
