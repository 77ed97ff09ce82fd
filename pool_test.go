package ecs

import "testing"

type vec2 struct{ X, Y float64 }

func TestPoolAddGetHas(t *testing.T) {
	w := NewWorld()
	pos := FactoryNewComponent[vec2]()

	e := w.NewEntity()
	if pos.Has(e) {
		t.Fatal("Has() true before Add")
	}

	p := pos.Add(e, vec2{X: 1, Y: 2})
	if !pos.Has(e) {
		t.Fatal("Has() false after Add")
	}
	got := pos.Get(e)
	if got.X != 1 || got.Y != 2 {
		t.Errorf("Get() = %+v, want {1 2}", *got)
	}
	if got != p {
		t.Error("Get() returned a different address than Add()")
	}

	got.X = 99
	if pos.Get(e).X != 99 {
		t.Error("mutation through the pointer from Get() did not persist")
	}
}

func TestPoolDuplicateAddPanics(t *testing.T) {
	w := NewWorld()
	pos := FactoryNewComponent[vec2]()
	e := w.NewEntity()
	pos.Add(e, vec2{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate Add")
		}
	}()
	pos.Add(e, vec2{})
}

func TestPoolMissingGetPanics(t *testing.T) {
	w := NewWorld()
	pos := FactoryNewComponent[vec2]()
	e := w.NewEntity()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Get of missing component")
		}
	}()
	pos.Get(e)
}

func TestPoolMissingRemovePanics(t *testing.T) {
	w := NewWorld()
	pos := FactoryNewComponent[vec2]()
	e := w.NewEntity()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Remove of missing component")
		}
	}()
	pos.Remove(e)
}

// TestPoolSwapAndPopPreservesOthers covers invariants 4 and 7: removing one
// entity leaves every other entity's has()/get() intact, and every dense
// index still maps back through sparse correctly.
func TestPoolSwapAndPopPreservesOthers(t *testing.T) {
	w := NewWorld()
	pos := FactoryNewComponent[vec2]()

	const n = 20
	entities := make([]Entity, n)
	for i := range entities {
		e := w.NewEntity()
		pos.Add(e, vec2{X: float64(i), Y: float64(i * 2)})
		entities[i] = e
	}

	// Remove from the middle.
	victim := entities[7]
	pos.Remove(victim)

	if pos.Has(victim) {
		t.Fatal("Has() true after Remove")
	}
	for i, e := range entities {
		if i == 7 {
			continue
		}
		if !pos.Has(e) {
			t.Fatalf("entity %d lost its component after an unrelated Remove", i)
		}
		got := pos.Get(e)
		want := vec2{X: float64(i), Y: float64(i * 2)}
		if *got != want {
			t.Fatalf("entity %d payload = %+v, want %+v", i, *got, want)
		}
	}

	pl, _ := w.findPool(pos.ID())
	ip := pl.(*Pool[vec2])
	for i := 0; i < ip.length(); i++ {
		h := ip.denseAt(i)
		if int(ip.sparse[h.slot()]) != i {
			t.Errorf("sparse[slot(dense[%d])] = %d, want %d", i, ip.sparse[h.slot()], i)
		}
	}

	// A fresh Add after Remove succeeds (round-trip law).
	pos.Add(victim, vec2{X: -1, Y: -1})
	if !pos.Has(victim) {
		t.Error("re-Add after Remove did not take")
	}
}

// TestPoolCollectGarbageShrinks covers scenario 6.
func TestPoolCollectGarbageShrinks(t *testing.T) {
	w := NewWorld()
	pos := FactoryNewComponent[vec2]()

	const total, keep = 1000, 100
	entities := make([]Entity, total)
	for i := range entities {
		e := w.NewEntity()
		pos.Add(e, vec2{X: float64(i), Y: float64(i)})
		entities[i] = e
	}
	for i := keep; i < total; i++ {
		pos.Remove(entities[i])
	}

	w.CollectGarbage()

	pl, _ := w.findPool(pos.ID())
	ip := pl.(*Pool[vec2])
	if cap(ip.dense) > 104 {
		t.Errorf("pool capacity after CollectGarbage = %d, want <= 104", cap(ip.dense))
	}
	for i := 0; i < keep; i++ {
		if !pos.Has(entities[i]) {
			t.Fatalf("entity %d lost after CollectGarbage", i)
		}
		got := pos.Get(entities[i])
		if got.X != float64(i) || got.Y != float64(i) {
			t.Fatalf("entity %d payload corrupted after CollectGarbage: %+v", i, *got)
		}
	}
}

func TestPoolCreateDestroyHooks(t *testing.T) {
	w := NewWorld()
	tag := FactoryNewComponent[string]()

	var seenOnCreate string
	SetCreateFunc[string](w, func(world *World, e Entity) {
		seenOnCreate = *tag.Get(e)
	})

	var seenOnDestroy string
	destroyCalls := 0
	SetDestroyFunc[string](w, func(world *World, e Entity) {
		destroyCalls++
		seenOnDestroy = *tag.Get(e)
	})

	e := w.NewEntity()
	tag.Add(e, "X")
	if seenOnCreate != "X" {
		t.Errorf("onCreate saw %q, want %q", seenOnCreate, "X")
	}

	tag.Remove(e)
	if destroyCalls != 1 {
		t.Errorf("onDestroy fired %d times, want 1", destroyCalls)
	}
	if seenOnDestroy != "X" {
		t.Errorf("onDestroy saw %q, want %q", seenOnDestroy, "X")
	}
}
