// Package listcache keeps the last rendered rows of a list page per browser
// session so the detail view can show a row without refetching it.
package listcache

import (
	"sync"
	"time"
)

// Identified is a row with a backend primary key.
type Identified interface {
	Identity() int
}

type entry[T Identified] struct {
	rows   []T
	stored time.Time
}

// Cache holds one row slice per session key. It is safe for concurrent use.
type Cache[T Identified] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	now     func() time.Time
}

// New returns an empty Cache.
func New[T Identified]() *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Replace stores rows as the full cached list for key, discarding whatever
// was there.
func (c *Cache[T]) Replace(key string, rows []T) {
	cp := make([]T, len(rows))
	copy(cp, rows)

	c.mu.Lock()
	c.entries[key] = entry[T]{rows: cp, stored: c.now()}
	c.mu.Unlock()
}

// Lookup finds the row with identity id in the list cached for key.
func (c *Cache[T]) Lookup(key string, id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	for _, row := range e.rows {
		if row.Identity() == id {
			return row, true
		}
	}
	return zero, false
}

// Len returns the number of rows cached for key.
func (c *Cache[T]) Len(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries[key].rows)
}

// Drop forgets the list cached for key.
func (c *Cache[T]) Drop(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Sweep removes entries stored longer than maxAge ago and returns how many
// were removed.
func (c *Cache[T]) Sweep(maxAge time.Duration) int {
	cutoff := c.now().Add(-maxAge)

	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k, e := range c.entries {
		if e.stored.Before(cutoff) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Evicter is implemented by every Cache regardless of row type, so logout
// and the sweeper can handle them uniformly.
type Evicter interface {
	Drop(key string)
	Sweep(maxAge time.Duration) int
}
