package roster

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

var _ Component = AccessibleComponent[struct{}]{}

// FactoryNewComponent creates the component token for T
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{
		ElementType: table.FactoryNewElementType[T](),
		typ:         reflect.TypeFor[T](),
	}
}

func (c AccessibleComponent[T]) componentType() reflect.Type {
	return c.typ
}

func (c AccessibleComponent[T]) newArray(capacity int) componentStorage {
	return newComponentArray[T](capacity)
}

// Name returns the Go type name of the component
func (c AccessibleComponent[T]) Name() string {
	if c.typ == nil {
		return "<nil>"
	}
	return c.typ.String()
}

func componentName(c Component) string {
	if c == nil || c.componentType() == nil {
		return "<nil>"
	}
	return c.componentType().String()
}
