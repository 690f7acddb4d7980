package game

import "time"

// CollisionSystem resolves per-tick entity interactions. The four passes run
// in a fixed order because later passes must see the removals made by earlier
// ones within the same tick.
type CollisionSystem struct {
	game *Game
}

// NewCollisionSystem creates a collision system bound to a game
func NewCollisionSystem(game *Game) *CollisionSystem {
	return &CollisionSystem{game: game}
}

// Resolve runs all collision passes for one tick. Once the run ends mid-pass
// no later pass executes; nothing may touch lives or score after game over.
func (c *CollisionSystem) Resolve(now time.Time) {
	c.enemyBulletsVsPlayer(now)
	if c.game.state != StatePlaying {
		return
	}
	c.playerBulletsVsEnemies(now)
	c.enemiesVsPlayer(now)
	if c.game.state != StatePlaying {
		return
	}
	c.playerVsPowerUps(now)
}

// enemyBulletsVsPlayer applies enemy fire to the player. An invincible
// player is untouched and the bullet flies on; a shield absorbs the hit.
func (c *CollisionSystem) enemyBulletsVsPlayer(now time.Time) {
	g := c.game
	w := g.world
	for _, b := range w.EnemyBullets {
		if g.state != StatePlaying {
			return
		}
		if !b.Active {
			continue
		}
		bx, by, bw, bh := bulletBox(b)
		if !overlaps(bx, by, bw, bh, w.Player.X, w.Player.Y, w.Player.Size, w.Player.Size) {
			continue
		}
		if w.Player.Invincible(now) {
			continue
		}
		b.Active = false
		g.hitPlayer(now)
	}
}

// playerBulletsVsEnemies applies player fire to enemies. A bullet is consumed
// by its first overlapping enemy and never tested against later enemies, so
// one bullet scores at most one kill. Several bullets may still drain one
// enemy in the same tick, but a dead enemy cannot score twice.
func (c *CollisionSystem) playerBulletsVsEnemies(now time.Time) {
	g := c.game
	w := g.world
	for _, b := range w.PlayerBullets {
		if !b.Active {
			continue
		}
		bx, by, bw, bh := bulletBox(b)
		for _, e := range w.Enemies {
			if !e.Active {
				continue
			}
			size := e.Size()
			if !overlaps(bx, by, bw, bh, e.X, e.Y, size, size) {
				continue
			}
			b.Active = false
			e.Health--
			if e.Health <= 0 {
				e.Active = false
				g.killEnemy(e, now)
			}
			break
		}
	}
}

// enemiesVsPlayer handles contact damage. Contact destroys the enemy whether
// the hit was shielded or not; an invincible player passes through unharmed.
func (c *CollisionSystem) enemiesVsPlayer(now time.Time) {
	g := c.game
	w := g.world
	for _, e := range w.Enemies {
		if g.state != StatePlaying {
			return
		}
		if !e.Active {
			continue
		}
		size := e.Size()
		if !overlaps(e.X, e.Y, size, size, w.Player.X, w.Player.Y, w.Player.Size, w.Player.Size) {
			continue
		}
		if w.Player.Invincible(now) {
			continue
		}
		e.Active = false
		g.hitPlayer(now)
	}
}

// playerVsPowerUps applies pickups
func (c *CollisionSystem) playerVsPowerUps(now time.Time) {
	g := c.game
	w := g.world
	for _, p := range w.PowerUps {
		if !p.Active {
			continue
		}
		if !overlaps(p.X, p.Y, powerUpSize, powerUpSize, w.Player.X, w.Player.Y, w.Player.Size, w.Player.Size) {
			continue
		}
		p.Active = false
		g.pickUpPowerUp(p.Kind, now)
	}
}
