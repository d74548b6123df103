package roster

// componentStorage is the untyped view of one fixed-capacity component array.
type componentStorage interface {
	occupied(index int) bool
	mark(index int)
	clear(index int)
	capacity() int
	count() int
}

var _ componentStorage = &componentArray[struct{}]{}

// componentArray holds the component of entity i in items[i]. Absence is
// tracked by present, never by a sentinel value.
type componentArray[T any] struct {
	items   []T
	present []bool
	n       int
}

// entityPresence is the element type of the reserved array at registry index 0.
type entityPresence struct{}

func newComponentArray[T any](capacity int) *componentArray[T] {
	return &componentArray[T]{
		items:   make([]T, capacity),
		present: make([]bool, capacity),
	}
}

func (a *componentArray[T]) occupied(index int) bool {
	return a.present[index]
}

func (a *componentArray[T]) mark(index int) {
	if a.present[index] {
		return
	}
	a.present[index] = true
	a.n++
}

func (a *componentArray[T]) clear(index int) {
	if !a.present[index] {
		return
	}
	var zero T
	a.items[index] = zero
	a.present[index] = false
	a.n--
}

func (a *componentArray[T]) capacity() int {
	return len(a.items)
}

func (a *componentArray[T]) count() int {
	return a.n
}

func (a *componentArray[T]) slot(index int) *T {
	return &a.items[index]
}
