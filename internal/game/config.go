// Package game implements the simulation core: player, projectiles, the
// enemy formation, collisions, waves, and the match state machine. The
// package has no I/O; frontends drive it one tick at a time and read the
// resulting state between ticks.
package game

// Config holds all tunable simulation parameters. The simulation runs on a
// logical 800x600 playfield regardless of terminal size; rendering scales it.
type Config struct {
	// Playfield
	FieldWidth  float64
	FieldHeight float64

	// Player
	PlayerWidth    float64
	PlayerHeight   float64
	PlayerSpeed    float64 // units per tick
	PlayerMargin   float64 // kept clear on each horizontal edge
	PlayerBottom   float64 // distance of the player's bottom edge from the field bottom
	PlayerCooldown int     // ticks between shots
	PlayerLives    int

	// Projectiles
	ShotWidth  float64
	ShotHeight float64
	ShotSpeed  float64 // vertical units per tick, sign applied per owner

	// Enemies and formation
	EnemyWidth     float64
	EnemyHeight    float64
	EnemyBaseSpeed float64 // formation speed on wave 1
	EnemySpeedStep float64 // speed gained per wave
	EnemyDrop      float64 // row drop on an edge bounce
	EnemyMargin    float64 // bounce margin on each horizontal edge

	// Enemy fire cadence
	EnemyCooldown      int // base ticks between enemy shots
	EnemyCooldownStep  int // cadence gained per wave
	EnemyCooldownFloor int // minimum ticks between enemy shots

	// Wave grid
	GridCols     int
	GridRows     int
	GridSpacingX float64
	GridSpacingY float64
	GridStartY   float64

	// Threat selection: enemies within this horizontal distance are treated
	// as sharing a column.
	ColumnTolerance float64
}

// DefaultConfig returns the standard game parameters.
func DefaultConfig() Config {
	return Config{
		FieldWidth:  800,
		FieldHeight: 600,

		PlayerWidth:    50,
		PlayerHeight:   40,
		PlayerSpeed:    6,
		PlayerMargin:   16,
		PlayerBottom:   30,
		PlayerCooldown: 10,
		PlayerLives:    3,

		ShotWidth:  4,
		ShotHeight: 12,
		ShotSpeed:  9,

		EnemyWidth:     40,
		EnemyHeight:    30,
		EnemyBaseSpeed: 1.2,
		EnemySpeedStep: 0.2,
		EnemyDrop:      22,
		EnemyMargin:    10,

		EnemyCooldown:      32,
		EnemyCooldownStep:  2,
		EnemyCooldownFloor: 8,

		GridCols:     10,
		GridRows:     5,
		GridSpacingX: 56,
		GridSpacingY: 40,
		GridStartY:   70,

		ColumnTolerance: 5,
	}
}
