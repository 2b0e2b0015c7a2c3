package game

import "math/rand"

// Threat decides which enemy fires and when. The random choice among
// front-line candidates comes from an injected generator so tests can seed
// it.
type Threat struct {
	timer int
	rng   *rand.Rand
}

// NewThreat creates a selector using the given random source. The timer
// starts expired, so the first shot comes on the first tick with enemies
// alive.
func NewThreat(rng *rand.Rand) Threat {
	return Threat{rng: rng}
}

// Timer returns the ticks remaining until the next enemy shot.
func (t *Threat) Timer() int { return t.timer }

// Update advances the fire timer and, when it expires, picks one front-line
// enemy at random and fires a downward shot from its bottom-center. The
// timer is only decremented and reset while enemies are alive; with an empty
// formation the whole step is skipped.
func (t *Threat) Update(a *Arena, wave int, cfg Config) {
	if a.CountKind(KindEnemy) == 0 {
		return
	}
	t.timer--
	if t.timer > 0 {
		return
	}

	candidates := t.frontLine(a, cfg)
	if len(candidates) == 0 {
		return
	}
	shooter := a.Get(candidates[t.rng.Intn(len(candidates))])
	a.Add(newShot(cfg, shooter.Rect.CenterX(), shooter.Rect.Bottom(), OwnerEnemy))

	cooldown := cfg.EnemyCooldown - wave*cfg.EnemyCooldownStep
	if cooldown < cfg.EnemyCooldownFloor {
		cooldown = cfg.EnemyCooldownFloor
	}
	t.timer = cooldown
}

// frontLine returns the enemies eligible to fire: those with no other alive
// enemy in the same column (horizontal centers within the tolerance) and
// strictly below them. If formation irregularities leave that set empty, it
// falls back to bucketing enemies by exact horizontal center and taking the
// lowest one per bucket.
func (t *Threat) frontLine(a *Arena, cfg Config) []Handle {
	var candidates []Handle
	a.EachKind(KindEnemy, func(h Handle, e *Entity) {
		blocked := false
		a.EachKind(KindEnemy, func(oh Handle, o *Entity) {
			if oh == h || blocked {
				return
			}
			dx := o.Rect.CenterX() - e.Rect.CenterX()
			if dx < 0 {
				dx = -dx
			}
			if dx <= cfg.ColumnTolerance && o.Rect.Y > e.Rect.Y {
				blocked = true
			}
		})
		if !blocked {
			candidates = append(candidates, h)
		}
	})
	if len(candidates) > 0 {
		return candidates
	}

	// Fallback: lowest enemy per exact-center column.
	lowest := make(map[float64]Handle)
	var order []float64
	a.EachKind(KindEnemy, func(h Handle, e *Entity) {
		cx := e.Rect.CenterX()
		cur, ok := lowest[cx]
		if !ok {
			lowest[cx] = h
			order = append(order, cx)
			return
		}
		if e.Rect.Y > a.Get(cur).Rect.Y {
			lowest[cx] = h
		}
	})
	for _, cx := range order {
		candidates = append(candidates, lowest[cx])
	}
	return candidates
}
