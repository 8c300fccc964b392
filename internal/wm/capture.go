package wm

import "sync"

// Capture is the global pointer grab held for the duration of one drag.
// While it is held, every pointer move and release is routed to its owner
// regardless of where the pointer is. At most one owner exists at a time.
type Capture struct {
	mu    sync.Mutex
	owner string
	gen   uint64
}

// Acquire grabs the pointer for owner, releasing any previous holder first.
// The returned release func is idempotent and only releases the grab it was
// issued for.
func (c *Capture) Acquire(owner string) (release func()) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.owner = owner
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if c.gen == gen {
				c.owner = ""
			}
		})
	}
}

// Active returns the current holder.
func (c *Capture) Active() (owner string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner, c.owner != ""
}
