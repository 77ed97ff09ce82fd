package ecs

import "github.com/TheBitDrifter/mask"

// View is a transient cursor over the intersection of up to
// Config.MaxViewComponents component sets. Next advances to (and reports
// the existence of) the next qualifying entity, so the idiomatic loop shape
// is:
//
//	view := ecs.Factory.NewView(world, position, velocity)
//	for view.Next() {
//		pos := position.GetFromView(view)
//		vel := velocity.GetFromView(view)
//		...
//	}
type View struct {
	world *World

	ids   []ComponentID
	pools []pool

	driverIdx  int
	cursor     int // one past the next driver-dense index to examine
	current    Handle
	hasCurrent bool
	closed     bool

	requiredMask mask.Mask
}

// newView resolves comps against w's existing pools (never creating one)
// and selects the smallest pool as the driver. Iteration itself is driven
// entirely by Next; construction does no scanning.
func newView(w *World, comps []AnyComponent) *View {
	assert(len(comps) >= 1 && len(comps) <= Config.MaxViewComponents,
		UnsupportedViewWidthError{Requested: len(comps), Max: Config.MaxViewComponents})

	ids := make([]ComponentID, 0, len(comps))
	pools := make([]pool, 0, len(comps))
	for _, c := range comps {
		p, ok := c.lookupPool(w)
		if !ok {
			// A component type never referenced in this World has no pool.
			// The view is simply empty; we must not allocate one for it.
			return &View{world: w, closed: true}
		}
		ids = append(ids, c.componentID())
		pools = append(pools, p)
	}

	driver := 0
	for i := 1; i < len(pools); i++ {
		if pools[i].length() < pools[driver].length() {
			driver = i
		}
	}

	var required mask.Mask
	for _, id := range ids {
		if id < maskSoftLimit {
			required.Mark(uint32(id))
		}
	}

	w.enterView()
	return &View{
		world:        w,
		ids:          ids,
		pools:        pools,
		driverIdx:    driver,
		cursor:       pools[driver].length(),
		requiredMask: required,
	}
}

// Next advances to the next qualifying entity, walking the driver pool's
// dense array from high index to low, and reports whether one was found.
// Once it returns false the View is exhausted and has released its
// contribution to the World's iteration depth. Entities appended to the
// driver pool at or after the View's starting length are never visited,
// which is what makes insertion during iteration safe.
func (v *View) Next() bool {
	if v.closed {
		return false
	}
	driver := v.pools[v.driverIdx]
	for v.cursor > 0 {
		v.cursor--
		h := driver.denseAt(v.cursor)
		if v.satisfiesOthers(h) {
			v.current = h
			v.hasCurrent = true
			return true
		}
	}
	v.finish()
	return false
}

// Valid reports whether a current entity exists, without advancing.
func (v *View) Valid() bool {
	return !v.closed && v.hasCurrent
}

// satisfiesOthers reports whether every non-driver pool also has h. The
// composition mask is a pure pre-filter: a negative from it is always
// correct, but a positive still falls through to the authoritative
// pool.has() checks.
func (v *View) satisfiesOthers(h Handle) bool {
	slot := h.slot()
	if int(slot) < len(v.world.composition) && !v.world.composition[slot].ContainsAll(v.requiredMask) {
		return false
	}
	for i, p := range v.pools {
		if i == v.driverIdx {
			continue
		}
		if !p.has(h) {
			return false
		}
	}
	return true
}

func (v *View) finish() {
	if v.closed {
		return
	}
	v.closed = true
	v.hasCurrent = false
	v.world.exitView()
}

// Entity returns the current entity.
func (v *View) Entity() Entity {
	return Entity{handle: v.current, world: v.world}
}
