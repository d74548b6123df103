package roster

import "fmt"

type NotInitialisedError struct {
	Op string
}

func (e NotInitialisedError) Error() string {
	return fmt.Sprintf("%s: controller is not initialised", e.Op)
}

type AlreadyRegisteredError struct {
	Component Component
}

func (e AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("component already registered: %s", componentName(e.Component))
}

type UnregisteredError struct {
	Component Component
}

func (e UnregisteredError) Error() string {
	return fmt.Sprintf("component is not registered: %s", componentName(e.Component))
}

// CapacityExceededError is returned when either the component registry or the
// entity index space is full.
type CapacityExceededError struct {
	What  string
	Limit int
}

func (e CapacityExceededError) Error() string {
	return fmt.Sprintf("maximum %s reached (%d)", e.What, e.Limit)
}

type InvalidCapacityError struct {
	Requested int
}

func (e InvalidCapacityError) Error() string {
	return fmt.Sprintf("max entities must be at least 1, got %d", e.Requested)
}

type OutOfRangeError struct {
	Index, Max int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("entity index %d out of range [0, %d)", e.Index, e.Max)
}

type DoubleFreeError struct {
	Index int
}

func (e DoubleFreeError) Error() string {
	return fmt.Sprintf("entity index %d is not allocated", e.Index)
}

type DeadEntityError struct {
	Index int
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity %d is not alive", e.Index)
}

type LockedControllerError struct{}

func (e LockedControllerError) Error() string {
	return "controller is currently locked"
}

type ComponentExistsError struct {
	Component Component
	Entity    int
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component already exists on entity %d: %s", e.Entity, componentName(e.Component))
}

type ComponentNotFoundError struct {
	Component Component
	Entity    int
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component does not exist on entity %d: %s", e.Entity, componentName(e.Component))
}

// UnsupportedControllerError is returned when typed component access or a
// cursor is given a Controller not built by Factory.NewController.
type UnsupportedControllerError struct{}

func (e UnsupportedControllerError) Error() string {
	return "controller was not created by Factory.NewController"
}
