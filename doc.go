/*
Package roster provides the bookkeeping core of an Entity-Component-System (ECS).

Roster assigns small integer identities to entities, registers up to 63
component types (registry slot 0 is reserved for entity presence) and tracks
which components each entity carries with a 64-bit mask. Every component type
owns one fixed-capacity array, indexed directly by entity index and sized when
the controller is initialised.

Core Concepts:

  - Entity: an index in [0, MaxEntities). It carries no data of its own.
  - Component: a data record type, identified by a token from FactoryNewComponent.
  - ComponentMask: one bit per registered component; mask = 1 << index.
  - Controller: owns the registry, the free-list and all storage arrays for one world.

Basic Usage:

	ctl := roster.Factory.NewController()
	if err := ctl.Init(1000, false); err != nil {
		return err
	}

	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()
	if err := ctl.RegisterComponents(position, velocity); err != nil {
		return err
	}

	entity, _ := ctl.NextEntityIndex()
	position.Set(ctl, entity, Position{X: 1})
	velocity.Set(ctl, entity, Velocity{X: 2})

	moving := roster.Factory.NewQuery().And(position, velocity)
	cursor := roster.Factory.NewCursor(moving, ctl)
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
	}

A Controller is not safe for concurrent use. Reset invalidates every entity
index, pointer and cursor obtained from the previous world.
*/
package roster
