package game

import "testing"

func TestCompactRemovesDeadAndOutOfField(t *testing.T) {
	g, _, _ := newTestGame()
	w := g.world

	w.PlayerBullets = append(w.PlayerBullets,
		&Bullet{X: 100, Y: 100, Radius: 4, Active: true},
		&Bullet{X: 100, Y: -50, Radius: 4, Active: true}, // off the top
		&Bullet{X: 100, Y: 100, Radius: 4, Active: false},
	)
	w.Enemies = append(w.Enemies,
		NewEnemy(100, 100, EnemyBasic),
		NewEnemy(100, w.FieldHeight+1, EnemyBasic), // slipped past the bottom
	)
	w.Enemies[0].Active = true
	dead := NewEnemy(50, 50, EnemyBasic)
	dead.Active = false
	w.Enemies = append(w.Enemies, dead)

	w.PowerUps = append(w.PowerUps,
		&PowerUp{X: 10, Y: 10, Kind: PowerUpShield, Active: true},
		&PowerUp{X: 10, Y: w.FieldHeight + 1, Kind: PowerUpShield, Active: true},
	)
	w.Particles = append(w.Particles,
		&Particle{Life: 0.5},
		&Particle{Life: 0},
		&Particle{Life: -0.02},
	)

	w.compact()

	if len(w.PlayerBullets) != 1 {
		t.Fatalf("player bullets = %d, want 1", len(w.PlayerBullets))
	}
	if len(w.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.Enemies))
	}
	if len(w.PowerUps) != 1 {
		t.Fatalf("power-ups = %d, want 1", len(w.PowerUps))
	}
	if len(w.Particles) != 1 {
		t.Fatalf("particles = %d, want 1", len(w.Particles))
	}
}

func TestParticleFadesOutOverFiftyTicks(t *testing.T) {
	p := &Particle{Life: 1.0}
	ticks := 0
	for p.Life > 0 {
		p.Advance()
		ticks++
		if ticks > 100 {
			t.Fatalf("particle never faded out")
		}
	}
	// 1.0/0.02 is 50 ticks, give or take one for float accumulation
	if ticks < 50 || ticks > 51 {
		t.Fatalf("particle lived %d ticks, want ~50", ticks)
	}
}

func TestEnemyAdvanceMovesOnlyVertically(t *testing.T) {
	e := NewEnemy(100, 50, EnemyFast)
	e.Advance()
	if e.X != 100 {
		t.Fatalf("enemy drifted horizontally: x = %f", e.X)
	}
	if e.Y != 50+GetEnemyKindConfig(EnemyFast).Speed {
		t.Fatalf("enemy y = %f, want speed applied once", e.Y)
	}
}

func TestNewWorldInitialState(t *testing.T) {
	g, _, clock := newTestGame()
	w := NewWorld(g.config, clock.Now())

	if w.Stats.Score != 0 || w.Stats.Level != 1 {
		t.Fatalf("fresh world stats = %+v", w.Stats)
	}
	if w.Stats.Lives != g.config.StartingLives {
		t.Fatalf("fresh world lives = %d", w.Stats.Lives)
	}
	if w.Player.Y >= w.FieldHeight || w.Player.Y < w.FieldHeight-3*w.Player.Size {
		t.Fatalf("player not near the bottom: y = %f", w.Player.Y)
	}
}
