package listcache

import "time"

// SetClock replaces the cache clock in tests.
func (c *Cache[T]) SetClock(now func() time.Time) { c.now = now }
