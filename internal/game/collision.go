package game

// resolveCollisions runs the per-tick collision pass, in order:
//
//  1. player shots vs enemies: both destroyed, score awarded
//  2. enemy shots vs player: shot destroyed, one life lost
//  3. breach: any enemy reaching the player's line ends the game
//
// The breach check runs even when step 2 already ended the game, so a
// simultaneous breach and final life loss resolve to the same terminal
// state.
func (m *Match) resolveCollisions() {
	m.playerShotsVsEnemies()
	m.enemyShotsVsPlayer()
	m.breachCheck()
}

// playerShotsVsEnemies destroys overlapping (shot, enemy) pairs. A shot
// consumes at most one enemy; entities destroyed earlier in the pass are
// already gone from the arena and cannot match again.
func (m *Match) playerShotsVsEnemies() {
	shots := m.arena.Handles(KindProjectile)
	enemies := m.arena.Handles(KindEnemy)

	for _, sh := range shots {
		shot := m.arena.Get(sh)
		if shot == nil || shot.Owner != OwnerPlayer {
			continue
		}
		for _, eh := range enemies {
			enemy := m.arena.Get(eh)
			if enemy == nil {
				continue
			}
			if shot.Rect.Overlaps(enemy.Rect) {
				points := enemy.PointValue()
				m.score += points
				m.events.Kills = append(m.events.Kills, Kill{
					X:      enemy.Rect.CenterX(),
					Y:      enemy.Rect.CenterY(),
					Tier:   enemy.Tier,
					Points: points,
				})
				m.arena.Remove(eh)
				m.arena.Remove(sh)
				break
			}
		}
	}
}

// enemyShotsVsPlayer removes enemy shots that hit the player and decrements
// lives; running out of lives ends the game.
func (m *Match) enemyShotsVsPlayer() {
	m.arena.EachKind(KindProjectile, func(h Handle, e *Entity) {
		if e.Owner != OwnerEnemy {
			return
		}
		if e.Rect.Overlaps(m.player.Rect) {
			m.arena.Remove(h)
			m.player.Lives--
			m.events.PlayerHit = true
			if m.player.Lives <= 0 {
				m.gameOver = true
			}
		}
	})
}

// breachCheck ends the game if any alive enemy's bottom edge reaches the
// player's top edge, regardless of remaining lives.
func (m *Match) breachCheck() {
	m.arena.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		if e.Rect.Bottom() >= m.player.Rect.Top() {
			m.gameOver = true
		}
	})
}
