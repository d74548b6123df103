package roster

// indexCache assigns dense indices to keys in registration order, up to a
// fixed ceiling.
type indexCache[K comparable, T any] struct {
	items       []T
	itemIndices map[K]int
	maxCapacity int
	what        string
}

func newIndexCache[K comparable, T any](cap int, what string) *indexCache[K, T] {
	return &indexCache[K, T]{
		items:       make([]T, 0, cap),
		itemIndices: make(map[K]int, cap),
		maxCapacity: cap,
		what:        what,
	}
}

func (c *indexCache[K, T]) GetIndex(key K) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *indexCache[K, T]) GetItem(index int) *T {
	return &c.items[index]
}

func (c *indexCache[K, T]) Register(key K, item T) (int, error) {
	if len(c.items) >= c.maxCapacity {
		return -1, CapacityExceededError{What: c.what, Limit: c.maxCapacity}
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

func (c *indexCache[K, T]) Len() int {
	return len(c.items)
}

func (c *indexCache[K, T]) Clear() {
	clear(c.items)
	c.items = c.items[:0]
	clear(c.itemIndices)
}
