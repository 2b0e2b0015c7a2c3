package loop

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
)

var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived debris fragment spawned when an enemy is
// destroyed or the player is hit. Coordinates are in logical field space.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Lifetime float64
	MaxLife  float64
}

// SpawnExplosion appends a burst of particles at the given point.
func SpawnExplosion(particles []*Particle, x, y float64) []*Particle {
	for i := 0; i < explosionParticles; i++ {
		angle := rand.Float64() * 2 * math.Pi
		speed := explosionSpeed * (0.4 + rand.Float64()*0.6)

		p := particlePool.Get().(*Particle)
		p.X = x
		p.Y = y
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
		p.MaxLife = explosionLifetime * (0.5 + rand.Float64()*0.5)
		p.Lifetime = p.MaxLife

		particles = append(particles, p)
	}
	return particles
}

// Update advances the particle and reports whether it has expired.
func (p *Particle) Update(dt float64) bool {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Lifetime -= dt
	return p.Lifetime <= 0
}

// Release returns the particle to the pool.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Popup is a floating score label shown where an enemy died.
type Popup struct {
	X, Y     float64
	Text     string
	Lifetime float64
}

func NewPopup(x, y float64, points int) *Popup {
	return &Popup{
		X:        x,
		Y:        y,
		Text:     fmt.Sprintf("+%d", points),
		Lifetime: popupLifetime,
	}
}

// Update drifts the popup upward and reports whether it has expired.
func (p *Popup) Update(dt float64) bool {
	p.Y -= popupRiseSpeed * dt
	p.Lifetime -= dt
	return p.Lifetime <= 0
}
