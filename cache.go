package ecs

import "fmt"

// Cache is a bounded, key-indexed store: register an item once, then look
// it up cheaply by key or by the index handed back at registration. It is
// exported for embedders that want the same bounded-registry shape this
// package uses internally for component diagnostic names.
type Cache[T any] interface {
	GetIndex(key string) (int, bool)
	GetItem(index int) T
	Register(key string, item T) (int, error)
	Clear()
}

var _ Cache[any] = &simpleCache[any]{}

type simpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

func newSimpleCache[T any](maxCapacity int) *simpleCache[T] {
	return &simpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: maxCapacity,
	}
}

func (c *simpleCache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *simpleCache[T]) GetItem(index int) T {
	return c.items[index]
}

func (c *simpleCache[T]) Register(key string, item T) (int, error) {
	if existing, ok := c.itemIndices[key]; ok {
		c.items[existing] = item
		return existing, nil
	}
	if len(c.items) >= c.maxCapacity {
		return -1, fmt.Errorf("ecs: cache at maximum capacity (%d)", c.maxCapacity)
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

func (c *simpleCache[T]) Clear() {
	c.items = c.items[:0]
	c.itemIndices = make(map[string]int)
}

// debugNames is the internal registry backing typeNameFor: a ComponentID's
// index doubles as its key, so lookups by id are a direct slice read rather
// than a string round trip through the Cache interface.
const maxDebugNames = 4096

var debugNames = make([]string, 0, 64)

func registerDebugName(id ComponentID, name string) {
	for ComponentID(len(debugNames)) <= id {
		if len(debugNames) >= maxDebugNames {
			fatal(fmt.Errorf("ecs: component type registry exceeded %d distinct types", maxDebugNames))
			return
		}
		debugNames = append(debugNames, "")
	}
	debugNames[id] = name
}

func debugNameFor(id ComponentID) (string, bool) {
	if int(id) >= len(debugNames) {
		return "", false
	}
	name := debugNames[id]
	return name, name != ""
}

// FactoryNewCache creates a new bounded Cache with the given capacity, for
// embedders that want a bounded register-and-look-up store. The package's
// own component-name registry (debugNames) does not use it.
func FactoryNewCache[T any](capacity int) Cache[T] {
	return newSimpleCache[T](capacity)
}
