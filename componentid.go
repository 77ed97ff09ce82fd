package ecs

import "reflect"

// ComponentID is the process-lifetime-stable identifier assigned to a
// component type on first reference. Ids are dense small integers issued in
// first-use order; the mapping is not meaningful across process runs.
type ComponentID uint32

var (
	componentTypeIDs  = make(map[reflect.Type]ComponentID)
	componentTypeByID = make([]reflect.Type, 0, 16)
)

// typeIDFor returns T's ComponentID, assigning one on first reference.
func typeIDFor[T any]() ComponentID {
	var zero T
	rt := reflect.TypeOf(zero)
	if id, ok := componentTypeIDs[rt]; ok {
		return id
	}
	id := ComponentID(len(componentTypeByID))
	componentTypeIDs[rt] = id
	componentTypeByID = append(componentTypeByID, rt)
	registerDebugName(id, rt.String())
	return id
}

// typeNameFor returns a human-readable name for a ComponentID, used only
// for diagnostics.
func typeNameFor(id ComponentID) string {
	if name, ok := debugNameFor(id); ok {
		return name
	}
	return "<unknown component>"
}
