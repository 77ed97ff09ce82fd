/*
Package ecs provides a lightweight Entity-Component-System (ECS) runtime for
games and simulations.

ecs stores component data in per-type sparse sets, keeping payloads tightly
packed for cache-friendly iteration while still supporting O(1) insertion,
removal, and membership tests. Entities are versioned handles issued by a
recycling allocator, so a stale handle can never alias a reused slot.

Core Concepts:

  - World: owns the entity identity table and the component pools.
  - Entity: a versioned handle paired with its owning World.
  - ComponentType[T]: a registration token used to add, get, and remove
    component T on entities, and to build Views.
  - View: a transient iterator over the intersection of several component
    sets.

Basic Usage:

	world := ecs.Factory.NewWorld()

	position := ecs.FactoryNewComponent[Position]()
	velocity := ecs.FactoryNewComponent[Velocity]()

	e := world.NewEntity()
	position.Add(e, Position{X: 10, Y: 20})
	velocity.Add(e, Velocity{X: 1, Y: 2})

	view := ecs.Factory.NewView(world, position, velocity)
	for view.Next() {
		pos := position.GetFromView(view)
		vel := velocity.GetFromView(view)
		pos.X += vel.X
		pos.Y += vel.Y
	}

ecs is single-threaded and non-cooperative: it is not safe for concurrent
mutation from multiple goroutines, and every operation is synchronous.
*/
package ecs
