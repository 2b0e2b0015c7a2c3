package game

// Handle is a stable, generation-checked reference into the arena. Handles
// survive removals of other entities; a handle to a removed entity resolves
// to nil rather than to whatever reuses the slot.
type Handle struct {
	idx uint32
	gen uint32
}

// NoHandle is the zero Handle; it never resolves.
var NoHandle = Handle{}

type slot struct {
	ent   Entity
	gen   uint32
	alive bool
}

// Arena owns entity storage. It is held exclusively by the Match; other
// components receive handles or iterate, never taking ownership.
type Arena struct {
	slots []slot
	free  []uint32
	count int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add inserts an entity and returns its handle. Freed slots are reused with
// a bumped generation.
func (a *Arena) Add(e Entity) Handle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.ent = e
		s.gen++
		s.alive = true
		a.count++
		return Handle{idx: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot{ent: e, gen: 1, alive: true})
	a.count++
	return Handle{idx: uint32(len(a.slots) - 1), gen: 1}
}

// Get resolves a handle to its entity, or nil if the handle is stale or was
// never valid.
func (a *Arena) Get(h Handle) *Entity {
	if int(h.idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.idx]
	if !s.alive || s.gen != h.gen {
		return nil
	}
	return &s.ent
}

// Remove deletes the entity behind the handle. Removing an already-removed
// or stale handle is a no-op; the return value reports whether anything was
// deleted.
func (a *Arena) Remove(h Handle) bool {
	if a.Get(h) == nil {
		return false
	}
	s := &a.slots[h.idx]
	s.alive = false
	s.ent = Entity{}
	a.free = append(a.free, h.idx)
	a.count--
	return true
}

// Len returns the number of live entities.
func (a *Arena) Len() int {
	return a.count
}

// CountKind returns the number of live entities of the given kind.
func (a *Arena) CountKind(k Kind) int {
	n := 0
	for i := range a.slots {
		if a.slots[i].alive && a.slots[i].ent.Kind == k {
			n++
		}
	}
	return n
}

// Each calls fn for every live entity in slot order. Iteration order is
// deterministic. fn may remove the current or other entities; entities added
// during iteration at reused slots are not visited.
func (a *Arena) Each(fn func(Handle, *Entity)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(Handle{idx: uint32(i), gen: s.gen}, &s.ent)
		}
	}
}

// EachKind calls fn for every live entity of the given kind in slot order.
func (a *Arena) EachKind(k Kind, fn func(Handle, *Entity)) {
	a.Each(func(h Handle, e *Entity) {
		if e.Kind == k {
			fn(h, e)
		}
	})
}

// Handles collects the handles of all live entities of the given kind.
func (a *Arena) Handles(k Kind) []Handle {
	var hs []Handle
	a.EachKind(k, func(h Handle, _ *Entity) {
		hs = append(hs, h)
	})
	return hs
}

// Clear removes every entity. Generations are preserved so handles issued
// before the clear stay stale.
func (a *Arena) Clear() {
	for i := range a.slots {
		if a.slots[i].alive {
			a.slots[i].alive = false
			a.slots[i].ent = Entity{}
			a.free = append(a.free, uint32(i))
		}
	}
	a.count = 0
}
