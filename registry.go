package roster

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// MaxComponentTypes is the number of registry slots, including the reserved
// entity-presence slot at index 0.
const MaxComponentTypes = 64

type registryEntry struct {
	component Component
	storage   componentStorage
}

type componentRegistry struct {
	entries     *indexCache[reflect.Type, registryEntry]
	presence    *componentArray[entityPresence]
	maxEntities int
}

func newComponentRegistry(maxEntities int) *componentRegistry {
	r := &componentRegistry{
		entries:     newIndexCache[reflect.Type, registryEntry](MaxComponentTypes, "unique components"),
		presence:    newComponentArray[entityPresence](maxEntities),
		maxEntities: maxEntities,
	}
	// Cannot fail on an empty cache.
	_, _ = r.entries.Register(reflect.TypeFor[entityPresence](), registryEntry{storage: r.presence})
	return r
}

func (r *componentRegistry) lookup(c Component) (ComponentInfo, bool) {
	if c == nil {
		return ComponentInfo{}, false
	}
	idx, ok := r.entries.GetIndex(c.componentType())
	if !ok || idx == 0 {
		return ComponentInfo{}, false
	}
	return ComponentInfo{Index: idx, Mask: ComponentMask(1) << idx}, true
}

func (r *componentRegistry) register(c Component) (ComponentInfo, error) {
	idx, err := r.entries.Register(c.componentType(), registryEntry{
		component: c,
		storage:   c.newArray(r.maxEntities),
	})
	if err != nil {
		return ComponentInfo{}, err
	}
	return ComponentInfo{Index: idx, Mask: ComponentMask(1) << idx}, nil
}

func (r *componentRegistry) storageAt(index int) componentStorage {
	return r.entries.GetItem(index).storage
}

func (r *componentRegistry) len() int {
	return r.entries.Len()
}

// RegisterComponent assigns the next free index and mask to c and allocates
// its storage array.
func (ctl *controller) RegisterComponent(c Component) error {
	if c == nil || c.componentType() == nil {
		return UnregisteredError{Component: c}
	}
	if ctl.registry != nil {
		if _, found := ctl.registry.lookup(c); found {
			return AlreadyRegisteredError{Component: c}
		}
	}
	if !ctl.initialised {
		return NotInitialisedError{Op: "register component"}
	}
	info, err := ctl.registry.register(c)
	if err != nil {
		return err
	}
	ctl.log.Debug("registered component",
		zap.String("component", componentName(c)),
		zap.Int("index", info.Index),
		zap.Uint64("mask", uint64(info.Mask)),
	)
	return nil
}

// RegisterComponents registers cs in order and stops at the first failure.
// Components registered before the failure stay registered.
func (ctl *controller) RegisterComponents(cs ...Component) error {
	for i, c := range cs {
		if err := ctl.RegisterComponent(c); err != nil {
			return fmt.Errorf("failed to register component %d (%s): %w", i, componentName(c), err)
		}
	}
	return nil
}

func (ctl *controller) ComponentInfo(c Component) (ComponentInfo, error) {
	if ctl.registry == nil {
		return ComponentInfo{}, UnregisteredError{Component: c}
	}
	info, found := ctl.registry.lookup(c)
	if !found {
		return ComponentInfo{}, UnregisteredError{Component: c}
	}
	return info, nil
}

// ComponentMask returns the bitwise OR of the masks of cs.
func (ctl *controller) ComponentMask(cs ...Component) (ComponentMask, error) {
	var m ComponentMask
	for _, c := range cs {
		info, err := ctl.ComponentInfo(c)
		if err != nil {
			return 0, err
		}
		m |= info.Mask
	}
	return m, nil
}

// Registered returns the number of occupied registry slots, the reserved
// presence slot included. It is 0 when uninitialised.
func (ctl *controller) Registered() int {
	if ctl.registry == nil {
		return 0
	}
	return ctl.registry.len()
}
