package pool

import "testing"

type item struct {
	id    int
	dirty bool
}

func newItemPool() *Pool[*item] {
	next := 0
	return New(func() *item {
		next++
		return &item{id: next}
	}, func(it *item) { it.dirty = false })
}

func TestPoolGetCreatesWhenEmpty(t *testing.T) {
	p := newItemPool()
	a := p.Get()
	b := p.Get()
	if a == b {
		t.Fatal("empty pool returned the same object twice")
	}
	if p.Created() != 2 {
		t.Errorf("Created() = %d, want 2", p.Created())
	}
}

func TestPoolReleaseAndReacquire(t *testing.T) {
	p := newItemPool()
	a := p.Get()
	a.dirty = true
	if !p.Put(a) {
		t.Fatal("Put returned false for an object not in the pool")
	}
	if a.dirty {
		t.Error("reset was not applied on Put")
	}
	b := p.Get()
	if a != b {
		t.Error("expected pool to return the same object after release")
	}
	if p.Contains(b) {
		t.Error("object handed out by Get is still marked as pooled")
	}
	if p.Created() != 1 {
		t.Errorf("Created() = %d, want 1", p.Created())
	}
}

func TestPoolDoublePutIgnored(t *testing.T) {
	p := newItemPool()
	a := p.Get()
	p.Put(a)
	if p.Put(a) {
		t.Error("second Put of the same object should return false")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	// После двойного возврата объект не должен выдаваться дважды.
	x := p.Get()
	y := p.Get()
	if x == y {
		t.Error("pool handed out the same object twice")
	}
}

func TestPoolPrewarm(t *testing.T) {
	p := newItemPool()
	p.Prewarm(10)
	if p.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", p.Len())
	}
	for i := 0; i < 10; i++ {
		p.Get()
	}
	if p.Created() != 10 {
		t.Errorf("Created() = %d, want 10 (prewarmed objects should be reused)", p.Created())
	}
}

func TestPoolClear(t *testing.T) {
	p := newItemPool()
	p.Prewarm(3)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", p.Len())
	}
	a := p.Get()
	if !p.Put(a) {
		t.Error("Put after Clear should succeed")
	}
}

func TestKeyedPoolsAreIndependent(t *testing.T) {
	k := NewKeyed(func(key string) *item { return &item{id: len(key)} }, nil)
	k.Prewarm("a", 2)
	k.Prewarm("bb", 1)

	if got := k.Len("a"); got != 2 {
		t.Errorf("Len(a) = %d, want 2", got)
	}
	if got := k.Len("bb"); got != 1 {
		t.Errorf("Len(bb) = %d, want 1", got)
	}

	v := k.Get("bb")
	if v.id != 2 {
		t.Errorf("Get(bb).id = %d, want 2", v.id)
	}
	if k.Len("a") != 2 {
		t.Error("Get on one key drained another key's pool")
	}

	k.Put("bb", v)
	k.Clear()
	if k.Len("a") != 0 || k.Len("bb") != 0 {
		t.Error("Clear left objects in keyed pools")
	}
}
