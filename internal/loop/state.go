package loop

import (
	"time"

	"github.com/tomz197/invaders/internal/game"
)

// Screen is the frontend's display phase. The playing screen delegates to
// the match state machine, which handles the game-over overlay itself.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
)

// State holds everything the frame loop needs: the simulation, the display
// phase, and transient visual effects driven by tick events.
type State struct {
	Match     *game.Match
	Screen    Screen
	Particles []*Particle
	Popups    []*Popup
	Running   bool

	lastInput time.Time
}

// NewState creates a state on the title screen wrapping the given match.
func NewState(m *game.Match) *State {
	return &State{
		Match:     m,
		Screen:    ScreenTitle,
		Running:   true,
		lastInput: time.Now(),
	}
}

// spawnEffects turns the last tick's events into particles and popups.
func (s *State) spawnEffects(ev game.Events) {
	for _, kill := range ev.Kills {
		s.Particles = SpawnExplosion(s.Particles, kill.X, kill.Y)
		s.Popups = append(s.Popups, NewPopup(kill.X, kill.Y, kill.Points))
	}
	if ev.PlayerHit {
		r := s.Match.PlayerRect()
		s.Particles = SpawnExplosion(s.Particles, r.CenterX(), r.CenterY())
	}
}

// updateEffects advances particles and popups, dropping expired ones.
func (s *State) updateEffects(dt float64) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if p.Update(dt) {
			p.Release()
			continue
		}
		kept = append(kept, p)
	}
	s.Particles = kept

	keptPopups := s.Popups[:0]
	for _, p := range s.Popups {
		if p.Update(dt) {
			continue
		}
		keptPopups = append(keptPopups, p)
	}
	s.Popups = keptPopups
}

// clearEffects removes all transient effects, e.g. on restart.
func (s *State) clearEffects() {
	for _, p := range s.Particles {
		p.Release()
	}
	s.Particles = s.Particles[:0]
	s.Popups = s.Popups[:0]
}
