package game

// Formation moves the live enemy set as a single rigid body: constant
// horizontal drift, direction flip at the playfield margins, and a one-row
// drop on the tick the flip happens. It reads and repositions enemies in the
// arena but never owns them.
type Formation struct {
	dir         float64 // +1 right, -1 left
	speed       float64 // units per tick, set by the wave director
	pendingDrop bool
}

// reset points the formation right at the given speed. Called on every wave
// spawn; speed carries the per-wave difficulty ramp.
func (f *Formation) reset(speed float64) {
	f.dir = 1
	f.speed = speed
	f.pendingDrop = false
}

// Direction returns the current horizontal direction (+1 or -1).
func (f *Formation) Direction() float64 { return f.dir }

// Speed returns the per-tick horizontal speed.
func (f *Formation) Speed() float64 { return f.speed }

// Advance moves every alive enemy by one tick. When the formation touches a
// horizontal margin the direction flips and every enemy drops one row on
// that same tick; the drop never carries over to the next tick. An empty
// formation is a no-op.
func (f *Formation) Advance(a *Arena, cfg Config) {
	first := true
	var minX, maxX float64
	a.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		if first || e.Rect.Left() < minX {
			minX = e.Rect.Left()
		}
		if first || e.Rect.Right() > maxX {
			maxX = e.Rect.Right()
		}
		first = false
	})
	if first {
		return
	}

	if minX <= cfg.EnemyMargin || maxX >= cfg.FieldWidth-cfg.EnemyMargin {
		f.dir = -f.dir
		f.pendingDrop = true
	}

	a.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		e.Rect.X += f.dir * f.speed
		if f.pendingDrop {
			e.Rect.Y += cfg.EnemyDrop
		}
	})
	f.pendingDrop = false
}
