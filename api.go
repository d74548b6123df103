package roster

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ComponentMask has one bit set per component type; bit 0 is entity presence.
type ComponentMask uint64

// Has reports whether every bit of other is set in m.
func (m ComponentMask) Has(other ComponentMask) bool {
	return m&other == other
}

type Controller interface {
	Init(maxEntities int, registerDefaults bool) error
	InitWithSettings(settings Settings, registerDefaults bool) error
	Reset()
	Initialised() bool
	Settings() Settings
	WorldID() uuid.UUID

	RegisterComponent(Component) error
	RegisterComponents(...Component) error
	ComponentInfo(Component) (ComponentInfo, error)
	ComponentMask(...Component) (ComponentMask, error)
	Registered() int

	NextEntityIndex() (int, error)
	FreeEntityIndex(index int) error
	EnqueueFreeEntityIndex(index int) error
	Alive(index int) bool
	EntityMask(index int) (ComponentMask, error)
	LiveEntities() []int

	AddComponent(index int, c Component) error
	RemoveComponent(index int, c Component) error
	EnqueueRemoveComponent(index int, c Component) error

	Locked() bool
	Lock()
	Unlock() error
}

// Component identifies a component type. Tokens are created with
// FactoryNewComponent; two tokens over the same Go type are the same component.
type Component interface {
	table.ElementType
	componentType() reflect.Type
	newArray(capacity int) componentStorage
}

// ComponentInfo is the registry metadata for a component type.
type ComponentInfo struct {
	Index int
	Mask  ComponentMask
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(entityMask mask.Mask, ctl Controller) bool
}

type iCursor interface {
	Entities() iter.Seq[int]
	Next() bool
	Entity() int
	Reset()
}

type Option func(*controller)

type Cursor struct {
	query QueryNode
	ctl   Controller

	// Lifecycle the cursor was created in
	worldID uuid.UUID

	matched  []int
	position int
	current  int

	initialized bool
	locked      bool
	err         error
}

type AccessibleComponent[T any] struct {
	table.ElementType
	typ reflect.Type
}

type controller struct {
	initialised bool
	settings    Settings
	worldID     uuid.UUID

	registry  *componentRegistry
	allocator *indexAllocator
	masks     []mask.Mask

	lockDepth int
	opQueue   opQueue

	log      *zap.Logger
	policy   CullingPolicy
	defaults []Component
}
