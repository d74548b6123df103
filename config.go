package roster

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CullingPolicy names a strategy for reclaiming entity slots under pressure.
// It is carried as configuration only.
type CullingPolicy string

const (
	CullLastAccessed CullingPolicy = "last-accessed"
	CullNone         CullingPolicy = "none"
)

const DefaultMaxEntities = 1000

// Settings holds the per-world configuration fixed at Init.
type Settings struct {
	MaxEntities   int           `json:"max_entities" yaml:"max_entities"`
	CullingPolicy CullingPolicy `json:"culling_policy" yaml:"culling_policy"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxEntities:   DefaultMaxEntities,
		CullingPolicy: CullLastAccessed,
	}
}

func (s Settings) Validate() error {
	if s.MaxEntities < 1 {
		return InvalidCapacityError{Requested: s.MaxEntities}
	}
	switch s.CullingPolicy {
	case CullLastAccessed, CullNone:
		return nil
	default:
		return fmt.Errorf("unknown culling policy %q", s.CullingPolicy)
	}
}

// LoadSettings decodes YAML settings from r. Fields absent from the document
// keep their defaults.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WithLogger sets the logger used by the controller. The default discards.
func WithLogger(log *zap.Logger) Option {
	return func(ctl *controller) {
		if log != nil {
			ctl.log = log
		}
	}
}

// WithCullingPolicy sets the policy used by Init.
func WithCullingPolicy(policy CullingPolicy) Option {
	return func(ctl *controller) {
		ctl.policy = policy
	}
}

// WithDefaultComponents replaces the components registered when Init is
// called with registerDefaults.
func WithDefaultComponents(cs ...Component) Option {
	return func(ctl *controller) {
		ctl.defaults = cs
	}
}
