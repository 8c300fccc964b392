package wm

import (
	"sync"
	"time"
)

// Clock hands out stacking indices. Values track the wall clock in
// nanoseconds but are strictly increasing even when the clock stalls or
// steps backwards.
type Clock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClock returns a clock backed by time.Now.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Next returns a stacking index greater than every index returned or
// observed so far.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.now().UnixNano()
	if n <= c.last {
		n = c.last + 1
	}
	c.last = n
	return n
}

// Observe raises the floor so the next index exceeds z.
func (c *Clock) Observe(z int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if z > c.last {
		c.last = z
	}
}
