package ecs

import (
	"sort"
	"strings"
)

// AnyComponent is the type-erased interface a ComponentType[T] satisfies so
// View construction can accept a mixed slice of component tokens of
// different T.
type AnyComponent interface {
	componentID() ComponentID
	lookupPool(w *World) (pool, bool)
}

// ComponentType is a registration/accessor token for component type T,
// returned by FactoryNewComponent[T](). It is the direct descendant of the
// ancestor library's AccessibleComponent[T]: a lightweight value that
// dispatches Add/Get/Has/Remove to the owning World's pool for T.
type ComponentType[T any] struct {
	id ComponentID
}

func newComponentType[T any]() ComponentType[T] {
	return ComponentType[T]{id: typeIDFor[T]()}
}

// ID returns the process-lifetime-stable ComponentID for T.
func (c ComponentType[T]) ID() ComponentID { return c.id }

func (c ComponentType[T]) componentID() ComponentID { return c.id }

func (c ComponentType[T]) lookupPool(w *World) (pool, bool) {
	return w.findPool(c.id)
}

// Has reports whether e currently carries component T.
func (c ComponentType[T]) Has(e Entity) bool {
	assert(e.Valid(), InvalidEntityError{Handle: e.handle})
	p, ok := e.world.findPool(c.id)
	return ok && p.has(e.handle)
}

// Add attaches component T to e with the given value. Adding a component
// type already present on the entity is a programmer error.
func (c ComponentType[T]) Add(e Entity, value T) *T {
	assert(e.Valid(), InvalidEntityError{Handle: e.handle})
	assert(!c.Has(e), DuplicateComponentError{Handle: e.handle, Component: typeNameFor(c.id)})

	p := getPool[T](e.world)
	slot := p.add(e.world, e.handle)
	*slot = value
	if p.onCreate != nil {
		p.onCreate(e.world, e)
	}
	return slot
}

// Get returns a pointer to e's T payload. Getting a component the entity
// lacks is a programmer error.
func (c ComponentType[T]) Get(e Entity) *T {
	assert(e.Valid(), InvalidEntityError{Handle: e.handle})
	pl, ok := e.world.findPool(c.id)
	assert(ok && pl.has(e.handle), MissingComponentError{Handle: e.handle, Component: typeNameFor(c.id)})
	p := pl.(*Pool[T])
	return &p.data[p.sparse[e.handle.slot()]]
}

// Remove detaches component T from e, firing its destroy hook first.
// Removing a component the entity lacks is a programmer error.
func (c ComponentType[T]) Remove(e Entity) {
	assert(e.Valid(), InvalidEntityError{Handle: e.handle})
	pl, ok := e.world.findPool(c.id)
	assert(ok && pl.has(e.handle), MissingComponentError{Handle: e.handle, Component: typeNameFor(c.id)})
	pl.remove(e.world, e.handle)
}

// GetFromView returns a pointer to the current entity's T payload inside an
// open View. The caller must have included this ComponentType when the
// View was built.
func (c ComponentType[T]) GetFromView(v *View) *T {
	for _, p := range v.pools {
		if p.typeID() == c.id {
			tp := p.(*Pool[T])
			return &tp.data[tp.sparse[v.current.slot()]]
		}
	}
	fatal(MissingComponentError{Handle: v.current, Component: typeNameFor(c.id)})
	return nil
}

// SetCreateFunc registers f as T's create hook, allocating T's pool if
// necessary. At most one create hook exists per type; a later call
// replaces the previous one.
func SetCreateFunc[T any](w *World, f CreateFunc[T]) {
	getPool[T](w).onCreate = f
}

// SetDestroyFunc registers f as T's destroy hook, allocating T's pool if
// necessary. At most one destroy hook exists per type; a later call
// replaces the previous one.
func SetDestroyFunc[T any](w *World, f DestroyFunc[T]) {
	getPool[T](w).onDestroy = f
}

// String returns a sorted, bracketed summary of e's component names, e.g.
// "[Tag, Transform]".
func (e Entity) String() string {
	if !e.Valid() {
		return "[]"
	}
	names := make([]string, 0, len(e.world.pools))
	for _, p := range e.world.pools {
		if p.has(e.handle) {
			names = append(names, shortTypeName(typeNameFor(p.typeID())))
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "[]"
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func shortTypeName(full string) string {
	full = strings.TrimPrefix(full, "*")
	parts := strings.Split(full, ".")
	return parts[len(parts)-1]
}
