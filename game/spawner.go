package game

// maybeSpawnEnemy rolls the per-tick spawn chance, capped by the per-level
// spawn budget. New enemies start just above the visible field.
func (g *Game) maybeSpawnEnemy() {
	w := g.world
	if w.EnemiesSpawnedThisLevel >= g.config.EnemiesPerLevel*w.Stats.Level {
		return
	}
	chance := enemySpawnBaseChance * (1 + float64(w.Stats.Level)*enemySpawnLevelFactor)
	if g.rng.Float64() >= chance {
		return
	}

	kind := g.chooseEnemyKind(w.Stats.Level)
	size := GetEnemyKindConfig(kind).Size
	x := g.rng.Float64() * (w.FieldWidth - size)
	w.Enemies = append(w.Enemies, NewEnemy(x, -size, kind))
	w.EnemiesSpawnedThisLevel++
}

// chooseEnemyKind draws the variant through layered thresholds: each tier is
// an independent draw gated by level, and a later tier overrides an earlier
// result within the same call. Difficulty tuning depends on the overlap, so
// this is not a single weighted partition.
func (g *Game) chooseEnemyKind(level int) EnemyKind {
	kind := EnemyBasic
	if level >= fastEnemyMinLevel && g.rng.Float64() > fastEnemyThreshold {
		kind = EnemyFast
	}
	if level >= heavyEnemyMinLevel && g.rng.Float64() > heavyEnemyThreshold {
		kind = EnemyHeavy
	}
	return kind
}

// maybeSpawnPowerUp rolls the drop chance after an enemy kill. The chance
// decays linearly with level past powerUpDecayLevel down to a floor.
func (g *Game) maybeSpawnPowerUp(x, y float64) {
	chance := powerUpDropChance
	if level := g.world.Stats.Level; level >= powerUpDecayLevel {
		chance -= powerUpDropDecay * float64(level-powerUpDecayLevel)
		if chance < powerUpDropFloor {
			chance = powerUpDropFloor
		}
	}
	if g.rng.Float64() >= chance {
		return
	}

	g.world.PowerUps = append(g.world.PowerUps, &PowerUp{
		X:      x,
		Y:      y,
		Kind:   g.choosePowerUpKind(),
		Active: true,
	})
}

// choosePowerUpKind draws 40% triple-shot, 40% shield, 20% extra life
func (g *Game) choosePowerUpKind() PowerUpKind {
	r := g.rng.Float64()
	switch {
	case r < 0.4:
		return PowerUpTripleShot
	case r < 0.8:
		return PowerUpShield
	default:
		return PowerUpExtraLife
	}
}

// maybeEnemyFire gives descending enemies a small chance to shoot once the
// level is high enough. Enemy bullets drop straight down.
func (g *Game) maybeEnemyFire(e *Enemy) {
	if g.world.Stats.Level < enemyFireMinLevel {
		return
	}
	if g.rng.Float64() >= enemyFireChance {
		return
	}

	size := e.Size()
	g.world.EnemyBullets = append(g.world.EnemyBullets, &Bullet{
		X:         e.X + size/2,
		Y:         e.Y + size,
		VY:        4.0,
		Radius:    4.0,
		Color:     enemyBulletColor,
		FromEnemy: true,
		Active:    true,
	})
}
