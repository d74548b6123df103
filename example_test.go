package roster_test

import (
	"fmt"

	"github.com/TheBitDrifter/roster"
	"github.com/TheBitDrifter/roster/components"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows registration, masks and entity index allocation
func Example_basic() {
	ctl := roster.Factory.NewController()
	if err := ctl.Init(1000, false); err != nil {
		panic(err)
	}
	defer ctl.Reset()

	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()
	if err := ctl.RegisterComponents(position, velocity); err != nil {
		panic(err)
	}

	moving, _ := ctl.ComponentMask(position, velocity)
	fmt.Printf("moving mask: %d\n", moving)

	for i := 0; i < 3; i++ {
		e, _ := ctl.NextEntityIndex()
		fmt.Printf("entity %d\n", e)
	}

	ctl.FreeEntityIndex(1)
	e, _ := ctl.NextEntityIndex()
	fmt.Printf("reused %d\n", e)

	// Output:
	// moving mask: 6
	// entity 0
	// entity 1
	// entity 2
	// reused 1
}

// Example_defaults shows the built-in components registered by Init
func Example_defaults() {
	ctl := roster.Factory.NewController()
	if err := ctl.Init(100, true); err != nil {
		panic(err)
	}

	e, _ := ctl.NextEntityIndex()
	roster.Transform.Set(ctl, e, components.Transform{X: 4, Y: 2})

	transform, _ := roster.Transform.Get(ctl, e)
	info, _ := ctl.ComponentInfo(roster.Transform)
	mask, _ := ctl.EntityMask(e)
	fmt.Printf("transform index %d at (%.0f, %.0f), entity mask %d\n", info.Index, transform.X, transform.Y, mask)

	err := ctl.RegisterComponent(roster.Render)
	fmt.Println(err)

	// Output:
	// transform index 1 at (4, 2), entity mask 3
	// component already registered: components.Render
}

// Example_queries shows iterating entities matching a query
func Example_queries() {
	ctl := roster.Factory.NewController()
	if err := ctl.Init(100, false); err != nil {
		panic(err)
	}

	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()
	name := roster.FactoryNewComponent[Name]()
	ctl.RegisterComponents(position, velocity, name)

	for i := 0; i < 4; i++ {
		e, _ := ctl.NextEntityIndex()
		position.Set(ctl, e, Position{X: float64(i)})
		if i%2 == 0 {
			velocity.Set(ctl, e, Velocity{X: 1, Y: 2})
		}
	}
	player, _ := ctl.NextEntityIndex()
	position.Set(ctl, player, Position{X: 10, Y: 20})
	velocity.Set(ctl, player, Velocity{X: 1, Y: 2})
	name.Set(ctl, player, Name{Value: "Player"})

	query := roster.Factory.NewQuery()
	moving := query.And(position, velocity)
	cursor := roster.Factory.NewCursor(moving, ctl)
	fmt.Printf("Found %d entities with position and velocity\n", cursor.TotalMatched())

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y

		if nme := name.GetFromCursor(cursor); nme != nil {
			fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)
		}
	}

	still := roster.Factory.NewQuery().Not(velocity)
	fmt.Printf("Found %d entities without velocity\n", roster.Factory.NewCursor(still, ctl).TotalMatched())

	// Output:
	// Found 3 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
	// Found 2 entities without velocity
}
