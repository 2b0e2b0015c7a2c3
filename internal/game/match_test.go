package game

import (
	"math/rand"
	"testing"
)

func newTestMatch() *Match {
	return NewMatch(DefaultConfig(), rand.New(rand.NewSource(1)))
}

// quietThreat pushes the enemy fire timer far out so a test can drive
// collisions without stray enemy shots.
func quietThreat(m *Match) {
	m.threat.timer = 1 << 20
}

func TestMatchStartsOnWaveOne(t *testing.T) {
	m := newTestMatch()
	cfg := m.Config()

	if m.Wave() != 1 {
		t.Errorf("expected wave 1, got %d", m.Wave())
	}
	if n := len(m.Enemies()); n != cfg.GridCols*cfg.GridRows {
		t.Errorf("expected %d enemies, got %d", cfg.GridCols*cfg.GridRows, n)
	}
	if m.Score() != 0 || m.GameOver() {
		t.Error("fresh match should have zero score and not be over")
	}
	if m.Lives() != cfg.PlayerLives {
		t.Errorf("expected %d lives, got %d", cfg.PlayerLives, m.Lives())
	}
}

// Destroying one top-row (tier 4) enemy is worth exactly 50 + 25*4 = 150.
func TestMatchScoreForTopRowKill(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)

	// Park a player shot in the center of a top-row enemy.
	var target *Entity
	m.arena.EachKind(KindEnemy, func(_ Handle, e *Entity) {
		if target == nil && e.Tier == 4 {
			target = e
		}
	})
	if target == nil {
		t.Fatal("no tier-4 enemy on wave 1")
	}
	m.arena.Add(newShot(m.cfg, target.Rect.CenterX(), target.Rect.CenterY(), OwnerPlayer))

	m.Tick(Intent{})

	if m.Score() != 150 {
		t.Errorf("expected score 150, got %d", m.Score())
	}
	if n := len(m.Enemies()); n != 49 {
		t.Errorf("expected 49 enemies alive, got %d", n)
	}
	ev := m.Events()
	if len(ev.Kills) != 1 || ev.Kills[0].Points != 150 || ev.Kills[0].Tier != 4 {
		t.Errorf("expected one tier-4 kill event worth 150, got %+v", ev.Kills)
	}
}

func TestMatchScoreAccumulates(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)

	// Destroy one enemy of each tier; total = sum of 50+25t.
	want := 0
	for tier := 0; tier < m.cfg.GridRows; tier++ {
		var target *Entity
		m.arena.EachKind(KindEnemy, func(_ Handle, e *Entity) {
			if target == nil && e.Tier == tier {
				target = e
			}
		})
		m.arena.Add(newShot(m.cfg, target.Rect.CenterX(), target.Rect.CenterY(), OwnerPlayer))
		want += 50 + 25*tier
		m.Tick(Intent{})
	}

	if m.Score() != want {
		t.Errorf("expected score %d, got %d", want, m.Score())
	}
}

func TestMatchShotKillsAtMostOneEnemy(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)
	m.arena.Clear()

	// Two overlapping enemies; one shot covers both.
	first := newEnemy(m.cfg, 400, 200, 0)
	m.arena.Add(first)
	m.arena.Add(newEnemy(m.cfg, 410, 200, 0))
	m.arena.Add(Entity{Kind: KindProjectile, Rect: first.Rect, Owner: OwnerPlayer})

	m.resolveCollisions()

	if m.score != 50 {
		t.Errorf("one shot must score exactly one kill, got %d", m.score)
	}
	if n := m.arena.CountKind(KindEnemy); n != 1 {
		t.Errorf("expected 1 surviving enemy, got %d", n)
	}
	if n := m.arena.CountKind(KindProjectile); n != 0 {
		t.Errorf("the shot should be consumed, got %d projectiles", n)
	}
}

func TestMatchTwoShotsOneEnemy(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)
	m.arena.Clear()

	enemy := newEnemy(m.cfg, 400, 200, 2)
	m.arena.Add(enemy)
	m.arena.Add(Entity{Kind: KindProjectile, Rect: enemy.Rect, Owner: OwnerPlayer})
	m.arena.Add(Entity{Kind: KindProjectile, Rect: enemy.Rect, Owner: OwnerPlayer})

	m.resolveCollisions()

	// The enemy dies once; the second shot survives the pass.
	if m.score != 100 {
		t.Errorf("enemy must not be destroyed twice, score %d", m.score)
	}
	if n := m.arena.CountKind(KindProjectile); n != 1 {
		t.Errorf("expected the second shot to survive, got %d", n)
	}
}

func TestMatchEnemyShotCostsOneLife(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)

	shot := newShot(m.cfg, m.player.Rect.CenterX(), m.player.Rect.CenterY(), OwnerEnemy)
	m.arena.Add(shot)
	m.resolveCollisions()

	if m.Lives() != m.cfg.PlayerLives-1 {
		t.Errorf("expected %d lives, got %d", m.cfg.PlayerLives-1, m.Lives())
	}
	if m.GameOver() {
		t.Error("match should continue with lives remaining")
	}
	if n := m.arena.CountKind(KindProjectile); n != 0 {
		t.Error("the hit should consume the shot")
	}
	if !m.events.PlayerHit {
		t.Error("player hit should be reported in events")
	}
}

func TestMatchLossOnLifeDepletion(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)

	for i := 0; i < m.cfg.PlayerLives; i++ {
		m.arena.Add(newShot(m.cfg, m.player.Rect.CenterX(), m.player.Rect.CenterY(), OwnerEnemy))
		m.resolveCollisions()
	}

	if m.Lives() != 0 {
		t.Errorf("expected 0 lives, got %d", m.Lives())
	}
	if !m.GameOver() {
		t.Error("running out of lives must end the match")
	}
}

func TestMatchLossOnBreach(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)
	m.arena.Clear()

	// An enemy whose bottom edge reaches the player's top edge ends the
	// game immediately, lives notwithstanding.
	e := newEnemy(m.cfg, 400, m.player.Rect.Top()-m.cfg.EnemyHeight, 0)
	m.arena.Add(e)
	m.resolveCollisions()

	if !m.GameOver() {
		t.Error("breach must end the match")
	}
	if m.Lives() != m.cfg.PlayerLives {
		t.Error("breach should not touch lives")
	}
}

func TestMatchWaveTransition(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)
	speedBefore := m.formation.Speed()

	// Clear the formation mid-tick; the same tick must respawn it.
	for _, h := range m.arena.Handles(KindEnemy) {
		m.arena.Remove(h)
	}
	m.Tick(Intent{})

	if m.Wave() != 2 {
		t.Errorf("expected wave 2, got %d", m.Wave())
	}
	if n := len(m.Enemies()); n != m.cfg.GridCols*m.cfg.GridRows {
		t.Errorf("expected a full fresh grid, got %d enemies", n)
	}
	if m.formation.Speed() <= speedBefore {
		t.Errorf("wave 2 must be faster: %v <= %v", m.formation.Speed(), speedBefore)
	}
	if !m.Events().WaveStarted {
		t.Error("wave spawn should be reported in events")
	}
}

func TestMatchGameOverFreezesSimulation(t *testing.T) {
	m := newTestMatch()
	m.gameOver = true

	before := m.Enemies()
	score := m.Score()
	m.Tick(Intent{Move: 1, Fire: true})

	after := m.Enemies()
	if len(after) != len(before) || after[0].Rect != before[0].Rect {
		t.Error("no entity may move while the match is over")
	}
	if m.Score() != score {
		t.Error("score must not change while the match is over")
	}
}

func TestMatchRestartIdempotence(t *testing.T) {
	m := newTestMatch()

	// Play a while, then force a loss.
	for i := 0; i < 100; i++ {
		m.Tick(Intent{Move: 1, Fire: true})
	}
	m.gameOver = true
	m.Tick(Intent{Restart: true})

	if m.Score() != 0 || m.Wave() != 1 || m.GameOver() {
		t.Errorf("reset state wrong: score=%d wave=%d over=%v", m.Score(), m.Wave(), m.GameOver())
	}
	if m.Lives() != m.cfg.PlayerLives {
		t.Errorf("expected %d lives after reset, got %d", m.cfg.PlayerLives, m.Lives())
	}
	if n := len(m.Enemies()); n != m.cfg.GridCols*m.cfg.GridRows {
		t.Errorf("expected a fresh wave-1 grid, got %d enemies", n)
	}
	if n := len(m.Projectiles()); n != 0 {
		t.Errorf("expected no projectiles after reset, got %d", n)
	}
}

func TestMatchFireCadenceThroughTicks(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)

	shots := 0
	for i := 0; i < 3*m.cfg.PlayerCooldown; i++ {
		before := m.arena.CountKind(KindProjectile)
		m.Tick(Intent{Fire: true})
		if m.arena.CountKind(KindProjectile) > before {
			shots++
		}
	}

	// Holding fire yields exactly one shot per cooldown window.
	if shots != 3 {
		t.Errorf("expected 3 shots over 3 cooldown windows, got %d", shots)
	}
}

func TestMatchCullsOffscreenShots(t *testing.T) {
	m := newTestMatch()
	quietThreat(m)

	// A shot just below the top edge leaves the field after one advance.
	h := m.arena.Add(newShot(m.cfg, 400, 2, OwnerPlayer))
	m.Tick(Intent{})

	if m.arena.Get(h) != nil {
		t.Error("offscreen projectiles must be culled at end of tick")
	}
}
