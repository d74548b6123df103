package roster

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"go.uber.org/zap"
)

// indexAllocator hands out entity indices from a free-list. The list is never
// empty: when the last entry is popped, its successor is pushed, so pure
// allocation yields 0, 1, 2, ... and freed indices are reused LIFO.
type indexAllocator struct {
	free []int
}

func newIndexAllocator() *indexAllocator {
	return &indexAllocator{free: []int{0}}
}

func (a *indexAllocator) peek() int {
	return a.free[len(a.free)-1]
}

func (a *indexAllocator) next() int {
	last := len(a.free) - 1
	index := a.free[last]
	a.free = a.free[:last]
	if len(a.free) == 0 {
		a.free = append(a.free, index+1)
	}
	return index
}

func (a *indexAllocator) release(index int) {
	a.free = append(a.free, index)
}

// NextEntityIndex allocates an entity index and marks it alive.
func (ctl *controller) NextEntityIndex() (int, error) {
	if !ctl.initialised {
		return -1, NotInitialisedError{Op: "next entity index"}
	}
	if ctl.allocator.peek() >= ctl.settings.MaxEntities {
		return -1, CapacityExceededError{What: "entities", Limit: ctl.settings.MaxEntities}
	}
	index := ctl.allocator.next()
	ctl.registry.presence.mark(index)

	var entityMask mask.Mask
	entityMask.Mark(0)
	ctl.masks[index] = entityMask
	return index, nil
}

// FreeEntityIndex clears every component of the entity and returns its index
// to the free-list.
func (ctl *controller) FreeEntityIndex(index int) error {
	if !ctl.initialised {
		return NotInitialisedError{Op: "free entity index"}
	}
	if ctl.Locked() {
		return LockedControllerError{}
	}
	if index < 0 || index >= ctl.settings.MaxEntities {
		return OutOfRangeError{Index: index, Max: ctl.settings.MaxEntities}
	}
	if !ctl.registry.presence.occupied(index) {
		return DoubleFreeError{Index: index}
	}
	for i := ctl.registry.len() - 1; i >= 0; i-- {
		ctl.registry.storageAt(i).clear(index)
	}
	ctl.masks[index] = mask.Mask{}
	ctl.allocator.release(index)
	ctl.log.Debug("freed entity index", zap.Int("index", index))
	return nil
}

func (ctl *controller) EnqueueFreeEntityIndex(index int) error {
	if !ctl.Locked() {
		return ctl.FreeEntityIndex(index)
	}
	if err := ctl.checkEntity("enqueue free entity index", index); err != nil {
		if _, dead := err.(DeadEntityError); dead {
			return DoubleFreeError{Index: index}
		}
		return err
	}
	ctl.opQueue.EnqueueFree(index)
	return nil
}

func (ctl *controller) Alive(index int) bool {
	if !ctl.initialised || index < 0 || index >= ctl.settings.MaxEntities {
		return false
	}
	return ctl.registry.presence.occupied(index)
}

// EntityMask returns the mask of components present on the entity, including
// the presence bit.
func (ctl *controller) EntityMask(index int) (ComponentMask, error) {
	if err := ctl.checkEntity("entity mask", index); err != nil {
		return 0, err
	}
	var m ComponentMask
	for i := 0; i < ctl.registry.len(); i++ {
		if ctl.registry.storageAt(i).occupied(index) {
			m |= ComponentMask(1) << i
		}
	}
	return m, nil
}

func (ctl *controller) LiveEntities() []int {
	return iter_util.Collect(ctl.liveEntities())
}

func (ctl *controller) liveEntities() iter.Seq[int] {
	return func(yield func(int) bool) {
		if !ctl.initialised {
			return
		}
		for i := range ctl.settings.MaxEntities {
			if !ctl.registry.presence.occupied(i) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func (ctl *controller) AddComponent(index int, c Component) error {
	info, sto, err := ctl.componentSlot("add component", index, c)
	if err != nil {
		return err
	}
	if ctl.Locked() {
		return LockedControllerError{}
	}
	if sto.occupied(index) {
		return ComponentExistsError{Component: c, Entity: index}
	}
	sto.mark(index)
	ctl.masks[index].Mark(uint32(info.Index))
	return nil
}

func (ctl *controller) RemoveComponent(index int, c Component) error {
	info, sto, err := ctl.componentSlot("remove component", index, c)
	if err != nil {
		return err
	}
	if ctl.Locked() {
		return LockedControllerError{}
	}
	if !sto.occupied(index) {
		return ComponentNotFoundError{Component: c, Entity: index}
	}
	sto.clear(index)
	ctl.masks[index].Unmark(uint32(info.Index))
	return nil
}

func (ctl *controller) EnqueueRemoveComponent(index int, c Component) error {
	if !ctl.Locked() {
		return ctl.RemoveComponent(index, c)
	}
	_, sto, err := ctl.componentSlot("enqueue remove component", index, c)
	if err != nil {
		return err
	}
	if !sto.occupied(index) {
		return ComponentNotFoundError{Component: c, Entity: index}
	}
	ctl.opQueue.EnqueueComponentOp(opRemoveComponent, index, c)
	return nil
}

func (ctl *controller) checkEntity(op string, index int) error {
	if !ctl.initialised {
		return NotInitialisedError{Op: op}
	}
	if index < 0 || index >= ctl.settings.MaxEntities {
		return OutOfRangeError{Index: index, Max: ctl.settings.MaxEntities}
	}
	if !ctl.registry.presence.occupied(index) {
		return DeadEntityError{Index: index}
	}
	return nil
}

func (ctl *controller) componentSlot(op string, index int, c Component) (ComponentInfo, componentStorage, error) {
	if err := ctl.checkEntity(op, index); err != nil {
		return ComponentInfo{}, nil, err
	}
	info, err := ctl.ComponentInfo(c)
	if err != nil {
		return ComponentInfo{}, nil, err
	}
	return info, ctl.registry.storageAt(info.Index), nil
}
