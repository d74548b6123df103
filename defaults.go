package roster

import "github.com/TheBitDrifter/roster/components"

// Built-in component tokens, registered by Init when registerDefaults is set.
var (
	Transform = FactoryNewComponent[components.Transform]()
	Render    = FactoryNewComponent[components.Render]()
)

func DefaultComponents() []Component {
	return []Component{Transform, Render}
}
