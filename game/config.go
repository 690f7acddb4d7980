package game

import "time"

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the playfield width in pixels
	ScreenWidth int

	// ScreenHeight is the playfield height in pixels
	ScreenHeight int

	// StartingLives is the number of lives a fresh run begins with
	StartingLives int

	// EnemiesPerLevel scales how many enemies each level spawns (level N spawns N times this)
	EnemiesPerLevel int

	// PlayerSize is the square side length of the player ship in pixels
	PlayerSize float64

	// PlayerSpeed is the player's movement in pixels per tick
	PlayerSpeed float64

	// FireInterval is the minimum delay between player shots
	FireInterval time.Duration

	// PowerUpDuration is how long a timed power-up (triple-shot, shield) stays active
	PowerUpDuration time.Duration

	// InvincibilityDuration is the grace window after a non-fatal hit
	InvincibilityDuration time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:           480,
		ScreenHeight:          640,
		StartingLives:         3,
		EnemiesPerLevel:       10,
		PlayerSize:            36.0,
		PlayerSpeed:           5.0,
		FireInterval:          250 * time.Millisecond,
		PowerUpDuration:       10 * time.Second,
		InvincibilityDuration: 2 * time.Second,
	}
}

// Spawn and drop tuning. Enemy spawn chance grows with level; the power-up
// drop chance decays past level 15 so late levels starve the player a little.
const (
	enemySpawnBaseChance  = 0.02
	enemySpawnLevelFactor = 0.25

	fastEnemyMinLevel   = 2
	fastEnemyThreshold  = 0.6
	heavyEnemyMinLevel  = 3
	heavyEnemyThreshold = 0.8

	powerUpDropChance = 0.30
	powerUpDropFloor  = 0.10
	powerUpDropDecay  = 0.02
	powerUpDecayLevel = 15

	enemyFireMinLevel = 4
	enemyFireChance   = 0.005

	particlesPerKill  = 10
	particleLifeDecay = 0.02
)

// Milestone thresholds for achievements and level rewards.
const (
	firstKillMilestone  = 1
	killSpreeMilestone  = 50
	pickupMilestone     = 10
	achievementLevel    = 5
	bonusLifeLevel      = 15
	survivorSessionTime = 60 * time.Second
)
