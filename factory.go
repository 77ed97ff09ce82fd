package ecs

// Factory is the single entry point for constructing Worlds and opening
// Views. It carries no state of its own, a stateless façade kept as a
// value so call sites read as `ecs.Factory.NewWorld()` rather than a
// grab-bag of package functions.
//
// Component registration can't live on Factory as a method: Go methods may
// not introduce their own type parameters, so FactoryNewComponent is a free
// function instead (the same split FactoryNewCache already uses in
// cache.go).
var Factory factory

type factory struct{}

// NewWorld creates an empty World.
func (factory) NewWorld() *World {
	return NewWorld()
}

// NewView opens a View over the intersection of comps' component sets in w.
// comps must contain between 1 and Config.MaxViewComponents tokens; a
// component type never referenced in w yields a View whose first Next()
// call returns false rather than allocating a pool for it.
func (factory) NewView(w *World, comps ...AnyComponent) *View {
	return newView(w, comps)
}

// FactoryNewComponent registers (or looks up) the ComponentType token for
// T. The first call for a given T anywhere in the process assigns its
// ComponentID; every subsequent call, for any World, returns a token
// carrying that same id.
func FactoryNewComponent[T any]() ComponentType[T] {
	return newComponentType[T]()
}
