package game

// waveSpeed returns the formation's horizontal speed for a wave. The ramp is
// strictly increasing per wave.
func waveSpeed(cfg Config, wave int) float64 {
	return cfg.EnemyBaseSpeed + cfg.EnemySpeedStep*float64(wave-1)
}

// waveGrid lays out one wave of enemies: GridCols x GridRows, horizontally
// centered, tier = rows-1-row so the top row carries the highest tier and
// point value. The inversion is deliberate.
func waveGrid(cfg Config) []Entity {
	startX := (cfg.FieldWidth - float64(cfg.GridCols-1)*cfg.GridSpacingX) / 2
	enemies := make([]Entity, 0, cfg.GridCols*cfg.GridRows)
	for row := 0; row < cfg.GridRows; row++ {
		for col := 0; col < cfg.GridCols; col++ {
			x := startX + float64(col)*cfg.GridSpacingX
			y := cfg.GridStartY + float64(row)*cfg.GridSpacingY
			enemies = append(enemies, newEnemy(cfg, x, y, cfg.GridRows-1-row))
		}
	}
	return enemies
}

// spawnWave replaces the formation with a fresh grid and bumps the wave
// counter and difficulty. Triggered at match start and whenever the last
// enemy dies.
func (m *Match) spawnWave() {
	m.wave++
	for _, e := range waveGrid(m.cfg) {
		m.arena.Add(e)
	}
	m.formation.reset(waveSpeed(m.cfg, m.wave))
	m.events.WaveStarted = true
}
