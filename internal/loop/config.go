package loop

import "time"

// Frame timing. The simulation advances one fixed tick per rendered frame.
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Maximum render resolution; larger terminals get a centered, bordered
// playfield instead of a stretched one.
const (
	maxRenderCols = 160
	maxRenderRows = 60
)

// Effects
const (
	explosionParticles = 14
	explosionSpeed     = 60.0 // logical units per second
	explosionLifetime  = 0.6  // seconds
	popupLifetime      = 0.9  // seconds
	popupRiseSpeed     = 40.0 // logical units per second
)
