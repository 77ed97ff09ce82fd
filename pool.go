package ecs

import "unsafe"

// CreateFunc is invoked after a component's payload has been installed and
// written by the caller, so the hook may read it back via
// ComponentType[T].Get.
type CreateFunc[T any] func(w *World, e Entity)

// DestroyFunc is invoked before the swap-and-pop that removes a component,
// so the hook can still read the payload being removed.
type DestroyFunc[T any] func(w *World, e Entity)

// pool is the type-erased view of Pool[T] that World holds in its pool
// array. The operations that need the concrete type (add, and reading a
// payload out of data) are not part of this interface; callers reach them
// through ComponentType[T].
type pool interface {
	typeID() ComponentID
	has(h Handle) bool
	remove(w *World, h Handle)
	length() int
	denseAt(i int) Handle
	teardown(w *World)
	collectGarbage(w *World)
	elementSize() uintptr
}

var _ pool = (*Pool[struct{}])(nil)

// Pool is the sparse-set storage for one component type: a dense array of
// owning handles, a packed array of payloads aligned with it, and a sparse
// array mapping entity slot to dense index.
type Pool[T any] struct {
	id ComponentID

	sparse []int32
	dense  []Handle
	data   []T

	onCreate  CreateFunc[T]
	onDestroy DestroyFunc[T]
}

func newPool[T any](id ComponentID) *Pool[T] {
	return &Pool[T]{id: id}
}

func (p *Pool[T]) typeID() ComponentID   { return p.id }
func (p *Pool[T]) length() int           { return len(p.dense) }
func (p *Pool[T]) denseAt(i int) Handle  { return p.dense[i] }
func (p *Pool[T]) elementSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// has is an O(1) membership test. The sparse lookup alone would suffice;
// comparing the stored dense handle is a free extra safety net given
// versioned handles.
func (p *Pool[T]) has(h Handle) bool {
	slot := h.slot()
	if int(slot) >= len(p.sparse) {
		return false
	}
	idx := p.sparse[slot]
	return idx != -1 && p.dense[idx] == h
}

// ensureSparse grows sparse to exactly slot+1 (no doubling, per spec §4.2),
// deferring release of the old backing array while a view is open.
func (p *Pool[T]) ensureSparse(w *World, slot uint32) {
	needed := int(slot) + 1
	if needed <= len(p.sparse) {
		return
	}
	grown := make([]int32, needed)
	copy(grown, p.sparse)
	for i := len(p.sparse); i < needed; i++ {
		grown[i] = -1
	}
	old := p.sparse
	p.sparse = grown
	w.deferOrDrop(old)
}

// ensureCapacity grows dense/data to at least `needed`, doubling from an
// initial capacity of 8, deferring release of the old backing arrays while
// a view is open so in-flight references through them stay readable.
func (p *Pool[T]) ensureCapacity(w *World, needed int) {
	if needed <= cap(p.dense) {
		return
	}
	newCap := 8
	for newCap < needed {
		newCap *= 2
	}
	newDense := make([]Handle, len(p.dense), newCap)
	copy(newDense, p.dense)
	newData := make([]T, len(p.data), newCap)
	copy(newData, p.data)
	oldDense, oldData := p.dense, p.data
	p.dense, p.data = newDense, newData
	w.deferOrDrop(oldDense, oldData)
}

// add installs entity h as a new, uninitialized member of the pool and
// returns the address of its payload slot for the caller to write into.
func (p *Pool[T]) add(w *World, h Handle) *T {
	slot := h.slot()
	p.ensureSparse(w, slot)
	n := len(p.dense)
	p.ensureCapacity(w, n+1)

	p.dense = p.dense[:n+1]
	p.data = p.data[:n+1]
	p.dense[n] = h
	p.sparse[slot] = int32(n)

	w.markComposition(slot, p.id, true)
	return &p.data[n]
}

// remove performs the standard sparse-set swap-and-pop.
func (p *Pool[T]) remove(w *World, h Handle) {
	slot := h.slot()
	idx := p.sparse[slot]

	if p.onDestroy != nil {
		p.onDestroy(w, Entity{handle: p.dense[idx], world: w})
	}

	n := len(p.dense)
	last := n - 1
	if int(idx) != last {
		lastHandle := p.dense[last]
		p.sparse[lastHandle.slot()] = idx
		p.dense[idx] = lastHandle
		p.data[idx] = p.data[last]
	}

	var zero T
	p.data[last] = zero
	p.dense = p.dense[:last]
	p.data = p.data[:last]
	p.sparse[slot] = -1

	w.markComposition(slot, p.id, false)
}

// teardown fires onDestroy for every remaining entity in dense order, then
// releases the pool's buffers. Called when the owning World is discarded.
func (p *Pool[T]) teardown(w *World) {
	if p.onDestroy != nil {
		for i := 0; i < len(p.dense); i++ {
			p.onDestroy(w, Entity{handle: p.dense[i], world: w})
		}
	}
	p.sparse = nil
	p.dense = nil
	p.data = nil
}

// collectGarbage shrinks the pool's dense/data capacity to ceil(n, 8) when
// capacity exceeds 2n and n > 8, copying the live prefix of length n, not
// the new capacity.
func (p *Pool[T]) collectGarbage(w *World) {
	n := len(p.dense)
	c := cap(p.dense)
	if n <= 8 || c <= 2*n {
		return
	}
	shrunk := ((n + 7) / 8) * 8

	newDense := make([]Handle, n, shrunk)
	copy(newDense, p.dense[:n])
	newData := make([]T, n, shrunk)
	copy(newData, p.data[:n])

	p.dense = newDense
	p.data = newData
}
