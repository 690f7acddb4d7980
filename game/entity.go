package game

import (
	"image/color"
	"time"
)

// Player is the single player-controlled ship. Position is the top-left
// corner of its bounding box, matching how enemies and power-ups are stored.
type Player struct {
	// Position in field coordinates
	X, Y float64

	// Size is the square side length
	Size float64

	// InvincibleUntil marks the end of the post-hit grace window
	InvincibleUntil time.Time
}

// Invincible reports whether the player is currently immune to damage
func (p *Player) Invincible(now time.Time) bool {
	return now.Before(p.InvincibleUntil)
}

// Bullet is a projectile fired by the player or by an enemy
type Bullet struct {
	// Position of the bullet center
	X, Y float64

	// Velocity in pixels per tick
	VX, VY float64

	// Collision radius in pixels
	Radius float64

	// Color used by the renderer
	Color color.RGBA

	// FromEnemy distinguishes enemy fire from player fire
	FromEnemy bool

	// Active is cleared when the bullet is destroyed; inactive bullets are
	// skipped by every check and compacted away at tick end
	Active bool
}

var (
	playerBulletColor = color.RGBA{0xff, 0xff, 0x88, 0xff}
	enemyBulletColor  = color.RGBA{0xff, 0x66, 0x44, 0xff}
)

// Advance applies one tick of motion
func (b *Bullet) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// EnemyKind identifies the enemy variant
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyHeavy
)

// EnemyKindConfig holds the per-variant stats
type EnemyKindConfig struct {
	// Size is the square side length in pixels
	Size float64

	// Speed is the downward movement in pixels per tick
	Speed float64

	// Health is the number of bullet hits required to destroy it
	Health int

	// Score awarded on destruction
	Score int

	// Color used by the renderer
	Color color.RGBA
}

var enemyKindConfigs = map[EnemyKind]EnemyKindConfig{
	EnemyBasic: {
		Size:   40.0,
		Speed:  2.0,
		Health: 1,
		Score:  100,
		Color:  color.RGBA{0x66, 0xdd, 0x66, 0xff},
	},
	EnemyFast: {
		Size:   30.0,
		Speed:  4.0,
		Health: 1,
		Score:  200,
		Color:  color.RGBA{0x66, 0xaa, 0xff, 0xff},
	},
	EnemyHeavy: {
		Size:   56.0,
		Speed:  1.2,
		Health: 3,
		Score:  300,
		Color:  color.RGBA{0xdd, 0x55, 0x55, 0xff},
	},
}

// GetEnemyKindConfig returns the stats for an enemy variant
func GetEnemyKindConfig(kind EnemyKind) EnemyKindConfig {
	return enemyKindConfigs[kind]
}

// Enemy is a hostile ship descending the field
type Enemy struct {
	// Position of the top-left corner
	X, Y float64

	// Kind determines size, speed, health, score and color
	Kind EnemyKind

	// Health remaining; the enemy dies when it reaches 0
	Health int

	// Active is cleared when the enemy is destroyed or leaves the field
	Active bool
}

// NewEnemy creates an enemy of the given kind at full health
func NewEnemy(x, y float64, kind EnemyKind) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		Kind:   kind,
		Health: GetEnemyKindConfig(kind).Health,
		Active: true,
	}
}

// Advance applies one tick of downward motion
func (e *Enemy) Advance() {
	e.Y += GetEnemyKindConfig(e.Kind).Speed
}

// Size returns the enemy's bounding-box side length
func (e *Enemy) Size() float64 {
	return GetEnemyKindConfig(e.Kind).Size
}

// PowerUpKind identifies the power-up variant
type PowerUpKind int

const (
	PowerUpTripleShot PowerUpKind = iota
	PowerUpShield
	PowerUpExtraLife
)

// String returns the HUD label for the variant
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpTripleShot:
		return "TRIPLE"
	case PowerUpShield:
		return "SHIELD"
	case PowerUpExtraLife:
		return "LIFE"
	}
	return "?"
}

const (
	powerUpSize      = 28.0
	powerUpFallSpeed = 1.5
)

// PowerUp is a collectible drifting down from a destroyed enemy
type PowerUp struct {
	// Position of the top-left corner
	X, Y float64

	// Kind chosen by weighted draw at spawn time
	Kind PowerUpKind

	// Active is cleared on pickup or when it leaves the field
	Active bool
}

// Advance applies one tick of downward drift
func (p *PowerUp) Advance() {
	p.Y += powerUpFallSpeed
}

// Particle is a purely cosmetic explosion fragment
type Particle struct {
	// Position of the particle center
	X, Y float64

	// Velocity in pixels per tick
	VX, VY float64

	// Life fades from 1 to 0; the particle is removed at 0
	Life float64

	// Color inherited from the destroyed enemy
	Color color.RGBA
}

// Advance applies one tick of motion and fade
func (p *Particle) Advance() {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= particleLifeDecay
}

// overlaps is the axis-aligned bounding-box test used for every collision check
func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// bulletBox returns the bullet's bounding box as top-left corner plus size
func bulletBox(b *Bullet) (x, y, w, h float64) {
	return b.X - b.Radius, b.Y - b.Radius, b.Radius * 2, b.Radius * 2
}
