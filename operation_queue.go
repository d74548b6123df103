package roster

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"
)

type operation struct {
	typ    operationType
	entity int
	comp   Component
}

type operationType int

const (
	opCancelled operationType = iota - 1
	opFree
	opRemoveComponent
)

type opKey struct {
	entity int
	comp   reflect.Type
}

type opQueue struct {
	componentOps []operation
	freeOps      []operation
	pendingFree  map[int]struct{}
	pendingMods  map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingFree: make(map[int]struct{}),
		pendingMods: make(map[opKey]int),
	}
}

func (q *opQueue) empty() bool {
	return len(q.componentOps) == 0 && len(q.freeOps) == 0
}

// EnqueueFree defers freeing index. Duplicate frees collapse into one, and
// pending component removals for the entity are dropped.
func (q *opQueue) EnqueueFree(index int) {
	if _, exists := q.pendingFree[index]; exists {
		return
	}
	q.pendingFree[index] = struct{}{}
	for key, idx := range q.pendingMods {
		if key.entity != index {
			continue
		}
		q.componentOps[idx].typ = opCancelled
		delete(q.pendingMods, key)
	}
	q.freeOps = append(q.freeOps, operation{typ: opFree, entity: index})
}

func (q *opQueue) EnqueueComponentOp(typ operationType, index int, comp Component) {
	// Freed entities lose all components anyway
	if _, freed := q.pendingFree[index]; freed {
		return
	}
	key := opKey{entity: index, comp: comp.componentType()}
	if existingIdx, exists := q.pendingMods[key]; exists {
		q.componentOps[existingIdx].typ = typ
		return
	}
	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: index,
		comp:   comp,
	})
}

func (q *opQueue) reset() {
	q.componentOps = q.componentOps[:0]
	q.freeOps = q.freeOps[:0]
	clear(q.pendingFree)
	clear(q.pendingMods)
}

// processOperationQueue applies deferred removals first and frees last. A
// failing operation does not stop the rest; all failures are returned
// together and the queue is cleared.
func (ctl *controller) processOperationQueue() (err error) {
	if ctl.opQueue.empty() {
		return nil
	}
	defer ctl.opQueue.reset()

	for _, op := range ctl.opQueue.componentOps {
		if op.typ != opRemoveComponent {
			continue
		}
		if opErr := ctl.RemoveComponent(op.entity, op.comp); opErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to remove queued component: %w", opErr))
		}
	}
	for _, op := range ctl.opQueue.freeOps {
		if opErr := ctl.FreeEntityIndex(op.entity); opErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to free queued entity index: %w", opErr))
		}
	}
	return err
}
