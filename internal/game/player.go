package game

import "github.com/tomz197/invaders/internal/physics"

// Player is the controllable ship at the bottom of the playfield. It is
// owned by the Match and recreated on every reset.
type Player struct {
	Rect     physics.Rect
	Lives    int
	Cooldown int // ticks until the next shot is allowed

	speed         float64
	minX          float64 // leftmost allowed X for the rect
	maxX          float64 // rightmost allowed X for the rect
	cooldownReset int
}

// NewPlayer creates a player centered at the bottom of the playfield.
func NewPlayer(cfg Config) Player {
	bottom := cfg.FieldHeight - cfg.PlayerBottom
	return Player{
		Rect: physics.NewRect(
			cfg.FieldWidth/2-cfg.PlayerWidth/2,
			bottom-cfg.PlayerHeight,
			cfg.PlayerWidth,
			cfg.PlayerHeight,
		),
		Lives:         cfg.PlayerLives,
		speed:         cfg.PlayerSpeed,
		minX:          cfg.PlayerMargin,
		maxX:          cfg.FieldWidth - cfg.PlayerMargin - cfg.PlayerWidth,
		cooldownReset: cfg.PlayerCooldown,
	}
}

// ApplyMovement moves the player by dir in {-1, 0, +1} scaled by its speed,
// clamping the rect inside the playfield margins.
func (p *Player) ApplyMovement(dir int) {
	p.Rect.X += float64(dir) * p.speed
	if p.Rect.X < p.minX {
		p.Rect.X = p.minX
	}
	if p.Rect.X > p.maxX {
		p.Rect.X = p.maxX
	}
}

// TickCooldown decrements the shot cooldown, flooring at zero. Called once
// per tick regardless of input.
func (p *Player) TickCooldown() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

// TryShoot fires a projectile from the player's top-center if the cooldown
// has expired. The cooldown is reset only on a successful shot.
func (p *Player) TryShoot(cfg Config) (Entity, bool) {
	if p.Cooldown != 0 {
		return Entity{}, false
	}
	p.Cooldown = p.cooldownReset
	return newShot(cfg, p.Rect.CenterX(), p.Rect.Top(), OwnerPlayer), true
}
