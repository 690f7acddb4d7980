package game

// checkLevelProgress advances the level once the spawn budget for the current
// level is exhausted and no live enemy remains. Runs after collision
// resolution so kills from this tick count.
func (g *Game) checkLevelProgress() {
	w := g.world
	if w.EnemiesSpawnedThisLevel < g.config.EnemiesPerLevel*w.Stats.Level {
		return
	}
	if w.liveEnemyCount() > 0 {
		return
	}

	w.Stats.Level++
	w.EnemiesSpawnedThisLevel = 0
	if w.Stats.Level == bonusLifeLevel {
		w.Stats.Lives++
	}
	if w.Stats.Level == achievementLevel {
		g.unlock(AchVeteran)
	}
	g.sound.Play(CueLevelUp)
}
