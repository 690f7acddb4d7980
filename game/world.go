package game

import "time"

// RunStats tracks the player-visible progress of one run.
// Score and Level only ever grow; lives reaching 0 ends the run.
type RunStats struct {
	Score int
	Lives int
	Level int
}

// World is the live simulation snapshot for one run. It owns every entity
// collection and is mutated only by the tick and its delegates; a new run
// gets a brand new World.
type World struct {
	// Playfield dimensions in pixels (updated on resize)
	FieldWidth  float64
	FieldHeight float64

	Player Player
	Stats  RunStats

	// Entity collections, compacted at tick end
	PlayerBullets []*Bullet
	EnemyBullets  []*Bullet
	Enemies       []*Enemy
	PowerUps      []*PowerUp
	Particles     []*Particle

	// Timed effects currently held by the player
	ActivePowerUps []ActivePowerUp

	// EnemiesSpawnedThisLevel resets when a level completes
	EnemiesSpawnedThisLevel int

	// Lifetime counters for milestone checks
	Kills   int
	Pickups int

	// SessionStart anchors the survival-time milestone
	SessionStart time.Time

	// LastShot rate-limits the player's fire
	LastShot time.Time
}

// NewWorld creates a fresh run state with the player centered near the bottom
func NewWorld(config Config, now time.Time) *World {
	w := &World{
		FieldWidth:  float64(config.ScreenWidth),
		FieldHeight: float64(config.ScreenHeight),
		Stats: RunStats{
			Score: 0,
			Lives: config.StartingLives,
			Level: 1,
		},
		PlayerBullets: make([]*Bullet, 0, 64),
		EnemyBullets:  make([]*Bullet, 0, 64),
		Enemies:       make([]*Enemy, 0, 32),
		PowerUps:      make([]*PowerUp, 0, 8),
		Particles:     make([]*Particle, 0, 256),
		SessionStart:  now,
	}
	w.Player = Player{
		X:    w.FieldWidth/2 - config.PlayerSize/2,
		Y:    w.FieldHeight - 2*config.PlayerSize,
		Size: config.PlayerSize,
	}
	return w
}

// compact drops destroyed and out-of-field entities from every collection.
// Runs once at tick end so removal never happens mid-traversal.
func (w *World) compact() {
	bullets := w.PlayerBullets[:0]
	for _, b := range w.PlayerBullets {
		if b.Active && w.bulletInField(b) {
			bullets = append(bullets, b)
		}
	}
	w.PlayerBullets = bullets

	bullets = w.EnemyBullets[:0]
	for _, b := range w.EnemyBullets {
		if b.Active && w.bulletInField(b) {
			bullets = append(bullets, b)
		}
	}
	w.EnemyBullets = bullets

	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		// Enemies that slip past the bottom vanish without penalty
		if e.Active && e.Y <= w.FieldHeight {
			enemies = append(enemies, e)
		}
	}
	w.Enemies = enemies

	powerUps := w.PowerUps[:0]
	for _, p := range w.PowerUps {
		if p.Active && p.Y <= w.FieldHeight {
			powerUps = append(powerUps, p)
		}
	}
	w.PowerUps = powerUps

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Life > 0 {
			particles = append(particles, p)
		}
	}
	w.Particles = particles
}

func (w *World) bulletInField(b *Bullet) bool {
	return b.X >= -b.Radius && b.X <= w.FieldWidth+b.Radius &&
		b.Y >= -b.Radius && b.Y <= w.FieldHeight+b.Radius
}

// liveEnemyCount counts enemies still in play this tick
func (w *World) liveEnemyCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

// clampPlayer keeps the player inside the field after movement or resize
func (w *World) clampPlayer() {
	if w.Player.X < 0 {
		w.Player.X = 0
	}
	if w.Player.X > w.FieldWidth-w.Player.Size {
		w.Player.X = w.FieldWidth - w.Player.Size
	}
	if w.Player.Y < 0 {
		w.Player.Y = 0
	}
	if w.Player.Y > w.FieldHeight-w.Player.Size {
		w.Player.Y = w.FieldHeight - w.Player.Size
	}
}
