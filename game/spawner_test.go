package game

import "testing"

func TestMaybeSpawnEnemyRollsAndBudget(t *testing.T) {
	g, _, _ := newTestGame()
	w := g.world

	// Chance succeeds, x roll in the middle
	g.rng = &stubRand{seq: []float64{0.0, 0.5}}
	g.maybeSpawnEnemy()
	if len(w.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(w.Enemies))
	}
	if w.EnemiesSpawnedThisLevel != 1 {
		t.Fatalf("spawn counter = %d, want 1", w.EnemiesSpawnedThisLevel)
	}
	e := w.Enemies[0]
	if e.Kind != EnemyBasic {
		t.Fatalf("level 1 spawned kind %v, want EnemyBasic", e.Kind)
	}
	if e.Y != -e.Size() {
		t.Fatalf("spawn y = %f, want just above the field at %f", e.Y, -e.Size())
	}
	if e.X < 0 || e.X > w.FieldWidth-e.Size() {
		t.Fatalf("spawn x = %f outside the field", e.X)
	}

	// Chance fails
	g.rng = &stubRand{seq: []float64{0.9}}
	g.maybeSpawnEnemy()
	if len(w.Enemies) != 1 {
		t.Fatalf("spawned despite failed roll")
	}

	// Budget exhausted: no spawn even with a guaranteed roll
	w.EnemiesSpawnedThisLevel = DefaultConfig().EnemiesPerLevel * w.Stats.Level
	g.rng = &stubRand{seq: []float64{0.0, 0.5}}
	g.maybeSpawnEnemy()
	if len(w.Enemies) != 1 {
		t.Fatalf("spawned past the per-level budget")
	}
}

func TestChooseEnemyKindLayeredThresholds(t *testing.T) {
	g, _, _ := newTestGame()

	cases := []struct {
		name  string
		level int
		seq   []float64
		want  EnemyKind
	}{
		{"level 1 draws nothing", 1, nil, EnemyBasic},
		{"level 2 below fast threshold", 2, []float64{0.5}, EnemyBasic},
		{"level 2 above fast threshold", 2, []float64{0.7}, EnemyFast},
		{"level 3 both below", 3, []float64{0.5, 0.5}, EnemyBasic},
		{"level 3 fast only", 3, []float64{0.7, 0.5}, EnemyFast},
		// The heavy draw overrides a fast result within the same call
		{"level 3 heavy overrides fast", 3, []float64{0.7, 0.9}, EnemyHeavy},
		{"level 3 heavy without fast", 3, []float64{0.5, 0.9}, EnemyHeavy},
	}

	for _, tc := range cases {
		g.rng = &stubRand{seq: tc.seq}
		if got := g.chooseEnemyKind(tc.level); got != tc.want {
			t.Fatalf("%s: kind = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestChoosePowerUpKindWeights(t *testing.T) {
	g, _, _ := newTestGame()

	cases := []struct {
		draw float64
		want PowerUpKind
	}{
		{0.0, PowerUpTripleShot},
		{0.39, PowerUpTripleShot},
		{0.4, PowerUpShield},
		{0.79, PowerUpShield},
		{0.8, PowerUpExtraLife},
		{0.99, PowerUpExtraLife},
	}
	for _, tc := range cases {
		g.rng = &stubRand{seq: []float64{tc.draw}}
		if got := g.choosePowerUpKind(); got != tc.want {
			t.Fatalf("draw %.2f: kind = %v, want %v", tc.draw, got, tc.want)
		}
	}
}

func TestPowerUpDropChanceDecaysToFloor(t *testing.T) {
	g, _, _ := newTestGame()
	w := g.world

	// Base chance at low level
	g.rng = &stubRand{seq: []float64{0.29, 0.0}}
	g.maybeSpawnPowerUp(100, 100)
	if len(w.PowerUps) != 1 {
		t.Fatalf("no drop at base chance")
	}

	// Level 20: chance is 0.30 - 0.02*5 = 0.20
	w.PowerUps = w.PowerUps[:0]
	w.Stats.Level = 20
	g.rng = &stubRand{seq: []float64{0.25}}
	g.maybeSpawnPowerUp(100, 100)
	if len(w.PowerUps) != 0 {
		t.Fatalf("dropped above the decayed chance")
	}
	g.rng = &stubRand{seq: []float64{0.19, 0.0}}
	g.maybeSpawnPowerUp(100, 100)
	if len(w.PowerUps) != 1 {
		t.Fatalf("no drop below the decayed chance")
	}

	// Very high level: the floor holds
	w.PowerUps = w.PowerUps[:0]
	w.Stats.Level = 100
	g.rng = &stubRand{seq: []float64{0.09, 0.0}}
	g.maybeSpawnPowerUp(100, 100)
	if len(w.PowerUps) != 1 {
		t.Fatalf("floor chance not honored at high level")
	}
}

func TestEnemyFireGatedByLevel(t *testing.T) {
	g, _, _ := newTestGame()
	w := g.world
	e := NewEnemy(100, 100, EnemyBasic)

	// Below the gate no draw happens at all
	w.Stats.Level = enemyFireMinLevel - 1
	g.rng = &stubRand{seq: []float64{0.0}}
	g.maybeEnemyFire(e)
	if len(w.EnemyBullets) != 0 {
		t.Fatalf("enemy fired below the level gate")
	}

	w.Stats.Level = enemyFireMinLevel
	g.rng = &stubRand{seq: []float64{0.0}}
	g.maybeEnemyFire(e)
	if len(w.EnemyBullets) != 1 {
		t.Fatalf("enemy did not fire at the gate level")
	}
	b := w.EnemyBullets[0]
	if !b.FromEnemy || b.VY <= 0 {
		t.Fatalf("enemy bullet malformed: %+v", b)
	}
}
