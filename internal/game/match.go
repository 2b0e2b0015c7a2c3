package game

import (
	"math/rand"

	"github.com/tomz197/invaders/internal/physics"
)

// Intent is one tick's worth of player input, supplied by the frontend.
type Intent struct {
	Move    int  // -1 left, 0 hold, +1 right
	Fire    bool // shoot requested this tick
	Restart bool // only honored while the match is over
}

// Kill describes an enemy destroyed during a tick, positioned at its center.
type Kill struct {
	X, Y   float64
	Tier   int
	Points int
}

// Events summarizes what happened during the last tick so a frontend can
// drive effects (explosions, score popups) without reaching into the
// simulation.
type Events struct {
	Kills       []Kill
	PlayerHit   bool
	WaveStarted bool
}

// EnemyView is a read-only enemy snapshot for rendering.
type EnemyView struct {
	Rect physics.Rect
	Tier int
}

// ProjectileView is a read-only projectile snapshot for rendering.
type ProjectileView struct {
	Rect  physics.Rect
	Owner Owner
}

// Match is the top-level state machine. It owns the player and the entity
// arena and advances the whole simulation one tick at a time; everything a
// renderer needs is readable between ticks.
type Match struct {
	cfg       Config
	arena     *Arena
	player    Player
	formation Formation
	threat    Threat

	score    int
	wave     int
	gameOver bool
	events   Events
}

// NewMatch creates a match and spawns wave 1. The random source feeds enemy
// shooter selection; seed it for deterministic play.
func NewMatch(cfg Config, rng *rand.Rand) *Match {
	m := &Match{
		cfg:    cfg,
		arena:  NewArena(),
		threat: NewThreat(rng),
	}
	m.Reset()
	return m
}

// Reset restores the initial state: fresh player, empty arena, zero score,
// and a newly spawned wave 1.
func (m *Match) Reset() {
	m.arena.Clear()
	m.player = NewPlayer(m.cfg)
	m.threat.timer = 0
	m.score = 0
	m.wave = 0
	m.gameOver = false
	m.events = Events{}
	m.spawnWave()
}

// Tick advances the simulation by one fixed step. While the match is over
// only the restart intent is honored; nothing else mutates.
func (m *Match) Tick(in Intent) {
	m.events = Events{}

	if m.gameOver {
		if in.Restart {
			m.Reset()
		}
		return
	}

	// Player phase: movement, cooldown, shooting.
	m.player.ApplyMovement(in.Move)
	m.player.TickCooldown()
	if in.Fire {
		if shot, ok := m.player.TryShoot(m.cfg); ok {
			m.arena.Add(shot)
		}
	}

	// Projectiles fly, the formation drifts, one enemy may return fire.
	m.arena.EachKind(KindProjectile, func(_ Handle, e *Entity) {
		e.Advance()
	})
	m.formation.Advance(m.arena, m.cfg)
	m.threat.Update(m.arena, m.wave, m.cfg)

	m.resolveCollisions()

	// Cull projectiles that left the field this tick.
	m.arena.EachKind(KindProjectile, func(h Handle, e *Entity) {
		if e.Offscreen(m.cfg.FieldHeight) {
			m.arena.Remove(h)
		}
	})

	// A cleared formation respawns immediately at the next difficulty step.
	if !m.gameOver && m.arena.CountKind(KindEnemy) == 0 {
		m.spawnWave()
	}
}

// Score returns the current score.
func (m *Match) Score() int { return m.score }

// Wave returns the current wave number, starting at 1.
func (m *Match) Wave() int { return m.wave }

// Lives returns the player's remaining lives.
func (m *Match) Lives() int { return m.player.Lives }

// GameOver reports whether the match has ended.
func (m *Match) GameOver() bool { return m.gameOver }

// PlayerRect returns the player's rectangle.
func (m *Match) PlayerRect() physics.Rect { return m.player.Rect }

// Config returns the parameters the match was created with.
func (m *Match) Config() Config { return m.cfg }

// Events returns what happened during the most recent tick.
func (m *Match) Events() Events { return m.events }

// Enemies returns a snapshot of the alive enemies.
func (m *Match) Enemies() []EnemyView {
	views := make([]EnemyView, 0, m.arena.CountKind(KindEnemy))
	m.arena.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		views = append(views, EnemyView{Rect: e.Rect, Tier: e.Tier})
	})
	return views
}

// Projectiles returns a snapshot of the alive projectiles.
func (m *Match) Projectiles() []ProjectileView {
	views := make([]ProjectileView, 0, m.arena.CountKind(KindProjectile))
	m.arena.EachKind(KindProjectile, func(_ Handle, e *Entity) {
		views = append(views, ProjectileView{Rect: e.Rect, Owner: e.Owner})
	})
	return views
}
