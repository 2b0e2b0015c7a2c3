package game

import "testing"

func TestArenaAddGetRemove(t *testing.T) {
	a := NewArena()
	cfg := DefaultConfig()

	h := a.Add(newEnemy(cfg, 100, 70, 2))
	if a.Len() != 1 {
		t.Fatalf("expected 1 entity, got %d", a.Len())
	}
	e := a.Get(h)
	if e == nil {
		t.Fatal("handle should resolve")
	}
	if e.Kind != KindEnemy || e.Tier != 2 {
		t.Errorf("unexpected entity: kind=%v tier=%d", e.Kind, e.Tier)
	}

	if !a.Remove(h) {
		t.Error("first remove should report deletion")
	}
	if a.Remove(h) {
		t.Error("second remove should be a no-op")
	}
	if a.Get(h) != nil {
		t.Error("removed handle should not resolve")
	}
	if a.Len() != 0 {
		t.Errorf("expected empty arena, got %d", a.Len())
	}
}

func TestArenaStaleHandleAfterReuse(t *testing.T) {
	a := NewArena()
	cfg := DefaultConfig()

	old := a.Add(newEnemy(cfg, 0, 0, 0))
	a.Remove(old)

	// The freed slot is reused with a new generation.
	fresh := a.Add(newEnemy(cfg, 0, 0, 4))
	if a.Get(old) != nil {
		t.Error("stale handle must not resolve to the slot's new occupant")
	}
	if got := a.Get(fresh); got == nil || got.Tier != 4 {
		t.Error("fresh handle should resolve to the new entity")
	}
}

func TestArenaNoHandle(t *testing.T) {
	a := NewArena()
	if a.Get(NoHandle) != nil {
		t.Error("zero handle should never resolve")
	}
}

func TestArenaCountKind(t *testing.T) {
	a := NewArena()
	cfg := DefaultConfig()

	a.Add(newEnemy(cfg, 0, 0, 0))
	a.Add(newEnemy(cfg, 56, 0, 0))
	a.Add(newShot(cfg, 100, 100, OwnerPlayer))

	if n := a.CountKind(KindEnemy); n != 2 {
		t.Errorf("expected 2 enemies, got %d", n)
	}
	if n := a.CountKind(KindProjectile); n != 1 {
		t.Errorf("expected 1 projectile, got %d", n)
	}
}

func TestArenaClearInvalidatesHandles(t *testing.T) {
	a := NewArena()
	cfg := DefaultConfig()

	h1 := a.Add(newEnemy(cfg, 0, 0, 0))
	h2 := a.Add(newShot(cfg, 10, 10, OwnerEnemy))
	a.Clear()

	if a.Len() != 0 {
		t.Errorf("expected empty arena, got %d", a.Len())
	}
	if a.Get(h1) != nil || a.Get(h2) != nil {
		t.Error("handles issued before Clear must be stale")
	}

	// And slots are reusable afterwards.
	h3 := a.Add(newEnemy(cfg, 0, 0, 1))
	if a.Get(h3) == nil {
		t.Error("arena should accept entities after Clear")
	}
}

func TestArenaEachOrderIsDeterministic(t *testing.T) {
	a := NewArena()
	cfg := DefaultConfig()
	for i := 0; i < 5; i++ {
		a.Add(newEnemy(cfg, float64(i)*56, 70, i))
	}

	var tiers []int
	a.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		tiers = append(tiers, e.Tier)
	})
	for i, tier := range tiers {
		if tier != i {
			t.Fatalf("iteration order not slot order: got %v", tiers)
		}
	}
}
