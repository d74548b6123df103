package roster

import (
	"iter"
)

var _ iCursor = &Cursor{}

func newCursor(query QueryNode, ctl Controller) *Cursor {
	return &Cursor{
		query:   query,
		ctl:     ctl,
		worldID: ctl.WorldID(),
		current: -1,
	}
}

// Next advances to the next matching entity. The controller stays locked from
// the first call until Next returns false or Reset is called.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	if c.position < len(c.matched) && !c.stale() {
		c.current = c.matched[c.position]
		c.position++
		return true
	}
	c.Reset()
	return false
}

func (c *Cursor) Entities() iter.Seq[int] {
	return func(yield func(int) bool) {
		c.initialize()

		for c.position < len(c.matched) && !c.stale() {
			c.current = c.matched[c.position]
			c.position++
			if !yield(c.current) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

// Entity returns the entity the cursor is positioned on, or -1.
func (c *Cursor) Entity() int {
	return c.current
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.initialized = true
	c.matched = c.match()
	if c.stale() {
		return
	}
	c.ctl.Lock()
	c.locked = true
}

// match snapshots the matching entities in index order.
func (c *Cursor) match() []int {
	if c.stale() {
		return nil
	}
	ctl, ok := c.ctl.(*controller)
	if !ok {
		c.err = UnsupportedControllerError{}
		return nil
	}
	matched := make([]int, 0)
	for index := range ctl.liveEntities() {
		if c.query.Evaluate(ctl.masks[index], ctl) {
			matched = append(matched, index)
		}
	}
	return matched
}

// stale reports whether the controller was reset or re-initialised since the
// cursor was created.
func (c *Cursor) stale() bool {
	return !c.ctl.Initialised() || c.ctl.WorldID() != c.worldID
}

// Reset rewinds the cursor and releases its lock on the controller. Errors from
// operations deferred during iteration are reported by Err.
func (c *Cursor) Reset() {
	c.position = 0
	c.current = -1
	c.matched = nil
	c.initialized = false
	if !c.locked {
		return
	}
	c.locked = false
	if c.stale() {
		return
	}
	if err := c.ctl.Unlock(); err != nil {
		c.err = err
	}
}

func (c *Cursor) Err() error {
	return c.err
}

func (c *Cursor) RemainingMatched() int {
	return len(c.matched) - c.position
}

// TotalMatched counts matching entities without locking the controller.
func (c *Cursor) TotalMatched() int {
	if c.initialized {
		return len(c.matched)
	}
	return len(c.match())
}
