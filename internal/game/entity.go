package game

import "github.com/tomz197/invaders/internal/physics"

// Kind tags an arena entity. Entities are plain structs dispatched on this
// tag; only the fields relevant to the kind are meaningful.
type Kind uint8

const (
	KindNone Kind = iota
	KindEnemy
	KindProjectile
)

// Owner identifies who fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Score values per enemy tier.
const (
	scoreBase    = 50
	scorePerTier = 25
)

// Entity is a tagged variant stored in the arena. Every entity carries an
// axis-aligned rectangle; Tier applies to enemies, VY and Owner to
// projectiles.
type Entity struct {
	Kind  Kind
	Rect  physics.Rect
	Tier  int
	VY    float64
	Owner Owner
}

// PointValue returns the score awarded for destroying an enemy of the
// entity's tier.
func (e *Entity) PointValue() int {
	return scoreBase + scorePerTier*e.Tier
}

// Advance applies a projectile's vertical velocity for one tick.
func (e *Entity) Advance() {
	e.Rect.Y += e.VY
}

// Offscreen reports whether a projectile has fully left the playfield
// vertically. Offscreen projectiles are culled at the end of the tick.
func (e *Entity) Offscreen(fieldHeight float64) bool {
	return e.Rect.Bottom() < 0 || e.Rect.Top() > fieldHeight
}

// newEnemy creates an enemy entity with its top-left at (x, y).
func newEnemy(cfg Config, x, y float64, tier int) Entity {
	return Entity{
		Kind: KindEnemy,
		Rect: physics.NewRect(x, y, cfg.EnemyWidth, cfg.EnemyHeight),
		Tier: tier,
	}
}

// newShot creates a projectile centered on (cx, cy). Player shots travel up,
// enemy shots travel down.
func newShot(cfg Config, cx, cy float64, owner Owner) Entity {
	vy := cfg.ShotSpeed
	if owner == OwnerPlayer {
		vy = -vy
	}
	return Entity{
		Kind:  KindProjectile,
		Rect:  physics.CenteredRect(cx, cy, cfg.ShotWidth, cfg.ShotHeight),
		VY:    vy,
		Owner: owner,
	}
}
