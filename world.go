package ecs

import "github.com/TheBitDrifter/mask"

// maskSoftLimit is one past the highest ComponentID the composition-mask
// fast path tracks. Ids at or beyond it are simply never marked, so View's mask
// pre-filter stops helping for them; pool.has() is always authoritative
// and still answers correctly.
const maskSoftLimit = 128

// World owns the entity identity table, the component pools, and the
// deferred-free queue that keeps references handed out mid-iteration safe
// across structural growth.
type World struct {
	identity  []Handle
	availSlot uint32
	alive     int

	pools []pool

	// composition caches, per slot, which component ids the live entity at
	// that slot currently has. It is a pure performance accelerator for
	// View construction/iteration; pool.has() remains authoritative.
	composition []mask.Mask

	iterationDepth int
	deferredFrees  []any
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{availSlot: NullSlot}
}

// NewEntity returns a fresh live handle: a recycled slot if one is free
// (LIFO), otherwise a freshly appended slot at version 0.
func (w *World) NewEntity() Entity {
	var slot uint32
	if w.availSlot == NullSlot {
		slot = uint32(len(w.identity))
		w.identity = append(w.identity, makeHandle(slot, 0))
		w.composition = append(w.composition, mask.Mask{})
	} else {
		slot = w.availSlot
		freeEntry := w.identity[slot]
		w.availSlot = freeEntry.slot()
		w.identity[slot] = makeHandle(slot, freeEntry.version())
	}
	w.alive++
	return Entity{handle: w.identity[slot], world: w}
}

// Count returns the number of live entities.
func (w *World) Count() int { return w.alive }

// At returns the handle stored at identity-table index i. The result may be
// a free-list node, not a live entity; callers check Valid() themselves.
func (w *World) At(i int) Entity {
	return Entity{handle: w.identity[i], world: w}
}

// isLive reports whether h matches the handle currently stored at its slot.
func (w *World) isLive(h Handle) bool {
	slot := h.slot()
	return int(slot) < len(w.identity) && w.identity[slot] == h
}

// destroy removes every component from e, then recycles its slot with
// version+1, pushing it onto the head of the free list.
func (w *World) destroy(h Handle) {
	assert(w.isLive(h), InvalidEntityError{Handle: h})

	slot := h.slot()
	for _, p := range w.pools {
		if p.has(h) {
			p.remove(w, h)
		}
	}

	w.identity[slot] = makeHandle(w.availSlot, h.version()+1)
	w.availSlot = slot
	w.composition[slot] = mask.Mask{}
	w.alive--
}

// Teardown fires each pool's onDestroy hook (if set) for its remaining
// entities, in dense order, then releases every pool's buffers. After
// Teardown, w must not be used again.
func (w *World) Teardown() {
	for _, p := range w.pools {
		p.teardown(w)
	}
	w.pools = nil
	w.identity = nil
	w.composition = nil
	w.alive = 0
}

// CollectGarbage commits any pending deferred frees, then shrinks each pool
// whose capacity exceeds 2n (n > 8) down to ceil(n, 8). It must not be
// called while any View is active.
func (w *World) CollectGarbage() {
	w.flushDeferred()
	for _, p := range w.pools {
		p.collectGarbage(w)
	}
}

// findPool returns the pool for id without creating one. Used by View
// construction, which must not spuriously allocate a pool for a
// never-referenced component type.
func (w *World) findPool(id ComponentID) (pool, bool) {
	for _, p := range w.pools {
		if p.typeID() == id {
			return p, true
		}
	}
	return nil, false
}

// appendPool grows the pool array (initial capacity 8, doubled) and
// installs p. The new storage is installed eagerly; the old backing array
// is deferred if a view is active, freed immediately (by simply dropping
// the reference) otherwise.
func (w *World) appendPool(p pool) {
	n := len(w.pools)
	if n+1 > cap(w.pools) {
		newCap := 8
		if cap(w.pools) > 0 {
			newCap = cap(w.pools) * 2
		}
		for newCap < n+1 {
			newCap *= 2
		}
		grown := make([]pool, n, newCap)
		copy(grown, w.pools)
		old := w.pools
		w.pools = grown
		w.deferOrDrop(old)
	}
	w.pools = append(w.pools, p)
}

// getPool returns the pool for T, creating it (lazily, bound to this World)
// on first reference.
func getPool[T any](w *World) *Pool[T] {
	id := typeIDFor[T]()
	if p, ok := w.findPool(id); ok {
		return p.(*Pool[T])
	}
	np := newPool[T](id)
	w.appendPool(np)
	return np
}

// markComposition updates the fast-path composition cache for slot.
func (w *World) markComposition(slot uint32, id ComponentID, present bool) {
	if id >= maskSoftLimit {
		return
	}
	m := &w.composition[slot]
	if present {
		m.Mark(uint32(id))
	} else {
		m.Unmark(uint32(id))
	}
}

// deferOrDrop retains bufs in the deferred-free queue while a View is open,
// so in-flight references through them stay readable; otherwise it simply
// drops them (Go's GC reclaims unreferenced backing arrays on its own).
func (w *World) deferOrDrop(bufs ...any) {
	if w.iterationDepth == 0 {
		return
	}
	for _, b := range bufs {
		if len(w.deferredFrees) >= Config.MaxDeferredFrees {
			fatal(DeferredQueueOverflowError{Capacity: Config.MaxDeferredFrees})
			return
		}
		w.deferredFrees = append(w.deferredFrees, b)
	}
}

// flushDeferred commits (drops) all pending deferred frees.
func (w *World) flushDeferred() {
	clear(w.deferredFrees)
	w.deferredFrees = w.deferredFrees[:0]
}

// enterView increments the iteration-depth counter on View construction.
func (w *World) enterView() { w.iterationDepth++ }

// exitView decrements the iteration-depth counter and, once it returns to
// zero, commits all pending deferred frees.
func (w *World) exitView() {
	w.iterationDepth--
	if w.iterationDepth == 0 {
		w.flushDeferred()
	}
}
