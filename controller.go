package roster

import (
	"fmt"

	"github.com/TheBitDrifter/mask"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ Controller = &controller{}

func newController(opts ...Option) Controller {
	ctl := &controller{
		settings: DefaultSettings(),
		log:      zap.NewNop(),
		policy:   CullLastAccessed,
		defaults: DefaultComponents(),
		opQueue:  newOpQueue(),
	}
	for _, opt := range opts {
		opt(ctl)
	}
	return ctl
}

// Init discards any previous world and starts a new one with room for
// maxEntities entities.
func (ctl *controller) Init(maxEntities int, registerDefaults bool) error {
	return ctl.InitWithSettings(Settings{
		MaxEntities:   maxEntities,
		CullingPolicy: ctl.policy,
	}, registerDefaults)
}

func (ctl *controller) InitWithSettings(settings Settings, registerDefaults bool) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	ctl.Reset()

	ctl.settings = settings
	ctl.registry = newComponentRegistry(settings.MaxEntities)
	ctl.allocator = newIndexAllocator()
	ctl.masks = make([]mask.Mask, settings.MaxEntities)
	ctl.worldID = uuid.New()
	ctl.lockDepth = 0
	ctl.opQueue.reset()
	ctl.initialised = true

	if registerDefaults {
		if err := ctl.RegisterComponents(ctl.defaults...); err != nil {
			ctl.Reset()
			return fmt.Errorf("failed to register default components: %w", err)
		}
	}
	ctl.log.Info("initialised controller",
		zap.Stringer("world", ctl.worldID),
		zap.Int("max_entities", settings.MaxEntities),
		zap.String("culling", string(settings.CullingPolicy)),
		zap.Int("components", ctl.registry.len()-1),
	)
	return nil
}

// Reset drops every registration, storage array and allocated index, and
// restores the default settings. Resetting an uninitialised controller is a
// no-op.
func (ctl *controller) Reset() {
	if !ctl.initialised {
		return
	}
	ctl.log.Info("resetting controller", zap.Stringer("world", ctl.worldID))
	ctl.initialised = false
	ctl.settings = DefaultSettings()
	ctl.worldID = uuid.Nil
	ctl.registry = nil
	ctl.allocator = nil
	ctl.masks = nil
	ctl.lockDepth = 0
	ctl.opQueue.reset()
}

func (ctl *controller) Initialised() bool {
	return ctl.initialised
}

func (ctl *controller) Settings() Settings {
	return ctl.settings
}

// WorldID identifies the current lifecycle. It is uuid.Nil when uninitialised.
func (ctl *controller) WorldID() uuid.UUID {
	return ctl.worldID
}

func (ctl *controller) Locked() bool {
	return ctl.lockDepth > 0
}

// Lock defers frees and component removals until the matching Unlock. Locks
// nest.
func (ctl *controller) Lock() {
	ctl.lockDepth++
}

// Unlock releases one lock and, once the last is released, applies the
// deferred operations.
func (ctl *controller) Unlock() error {
	if ctl.lockDepth == 0 {
		return nil
	}
	ctl.lockDepth--
	if ctl.lockDepth > 0 {
		return nil
	}
	return ctl.processOperationQueue()
}
