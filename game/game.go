package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameState represents the current run phase
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// Game owns the simulation and its collaborators and implements ebiten.Game.
// All world mutation happens inside Update; Draw only reads.
type Game struct {
	config       Config
	world        *World
	collisions   *CollisionSystem
	renderer     *Renderer
	input        InputSource
	sound        Sound
	achievements *Achievements

	rng Rand
	now func() time.Time

	state GameState

	// Staged field dimensions from the last Layout call, applied at tick start
	fieldWidth  int
	fieldHeight int
}

// NewGame creates a game wired to the real keyboard, speaker and clock
func NewGame(config Config) *Game {
	return NewGameWith(config, NewKeyboardInput(), NewBeepSound(), newGameRand(), time.Now)
}

// NewGameWith creates a game with injected collaborators. Tests use this to
// supply a scripted random source, a fixed clock and silent sound.
func NewGameWith(config Config, input InputSource, sound Sound, rng Rand, now func() time.Time) *Game {
	g := &Game{
		config:       config,
		input:        input,
		sound:        sound,
		achievements: NewAchievements(),
		rng:          rng,
		now:          now,
		state:        StateStart,
		fieldWidth:   config.ScreenWidth,
		fieldHeight:  config.ScreenHeight,
	}
	g.world = NewWorld(config, now())
	g.collisions = NewCollisionSystem(g)
	g.renderer = NewRenderer(config, g.rng)
	return g
}

// startRun throws away the old world and begins a fresh run
func (g *Game) startRun(now time.Time) {
	g.world = NewWorld(g.config, now)
	g.world.FieldWidth = float64(g.fieldWidth)
	g.world.FieldHeight = float64(g.fieldHeight)
	g.world.clampPlayer()
	g.achievements = NewAchievements()
	g.state = StatePlaying
}

// Update advances the run state machine by one frame. While paused no
// simulation tick runs at all.
func (g *Game) Update() error {
	now := g.now()

	if g.input.MuteToggled() {
		g.sound.SetMuted(!g.sound.Muted())
	}

	// Starfield scrolls in every state; it is backdrop, not world state
	g.renderer.advanceStars(float64(g.fieldHeight))

	switch g.state {
	case StateStart, StateGameOver:
		if g.input.Confirm() {
			g.startRun(now)
		}
	case StatePaused:
		if g.input.PauseToggled() {
			g.state = StatePlaying
		}
	case StatePlaying:
		if g.input.PauseToggled() {
			g.state = StatePaused
			return nil
		}
		g.tick(now)
	}
	return nil
}

// tick runs one full simulation step: input, spawn, motion, collision,
// milestones, level progression, compaction. The order is load-bearing.
func (g *Game) tick(now time.Time) {
	w := g.world

	// Apply staged resize before anything moves
	w.FieldWidth = float64(g.fieldWidth)
	w.FieldHeight = float64(g.fieldHeight)

	// Input → player position
	dx, dy := g.input.Axis()
	ddx, ddy := g.input.DragDelta()
	w.Player.X += dx*g.config.PlayerSpeed + ddx
	w.Player.Y += dy*g.config.PlayerSpeed + ddy
	w.clampPlayer()

	if g.input.Firing() {
		g.fire(now)
	}

	g.maybeSpawnEnemy()

	// Motion updates complete before any collision check
	for _, b := range w.PlayerBullets {
		if b.Active {
			b.Advance()
		}
	}
	for _, b := range w.EnemyBullets {
		if b.Active {
			b.Advance()
		}
	}
	for _, e := range w.Enemies {
		if e.Active {
			e.Advance()
			g.maybeEnemyFire(e)
		}
	}
	for _, p := range w.PowerUps {
		if p.Active {
			p.Advance()
		}
	}
	for _, p := range w.Particles {
		p.Advance()
	}

	g.collisions.Resolve(now)

	if now.Sub(w.SessionStart) >= survivorSessionTime {
		g.unlock(AchSurvivor)
	}

	if g.state == StatePlaying {
		g.checkLevelProgress()
	}

	w.compact()
}

// fire shoots a bullet straight up, or three with an active triple-shot,
// rate-limited by the fire interval
func (g *Game) fire(now time.Time) {
	w := g.world
	if now.Sub(w.LastShot) < g.config.FireInterval {
		return
	}
	w.LastShot = now

	cx := w.Player.X + w.Player.Size/2
	spawn := func(vx float64) {
		w.PlayerBullets = append(w.PlayerBullets, &Bullet{
			X:      cx,
			Y:      w.Player.Y,
			VX:     vx,
			VY:     -8.0,
			Radius: 4.0,
			Color:  playerBulletColor,
			Active: true,
		})
	}
	spawn(0)
	if w.powerUpActive(PowerUpTripleShot, now) {
		spawn(-1.5)
		spawn(1.5)
	}
	g.sound.Play(CueShoot)
}

// hitPlayer resolves one successful hit on the player: shield first, then a
// life. Dropping to 0 lives ends the run on the spot.
func (g *Game) hitPlayer(now time.Time) {
	w := g.world
	if w.consumeShield(now) {
		g.sound.Play(CueHit)
		return
	}

	w.Stats.Lives--
	g.sound.Play(CueHit)
	if w.Stats.Lives <= 0 {
		w.Stats.Lives = 0
		g.state = StateGameOver
		return
	}
	w.Player.InvincibleUntil = now.Add(g.config.InvincibilityDuration)
}

// killEnemy applies the kill effects: score, counters, particles, milestone
// checks and the power-up roll. The enemy is already flagged inactive.
func (g *Game) killEnemy(e *Enemy, now time.Time) {
	w := g.world
	cfg := GetEnemyKindConfig(e.Kind)
	w.Stats.Score += cfg.Score
	w.Kills++

	cx := e.X + cfg.Size/2
	cy := e.Y + cfg.Size/2
	g.spawnKillParticles(cx, cy, cfg.Color)

	switch w.Kills {
	case firstKillMilestone:
		g.unlock(AchFirstBlood)
	case killSpreeMilestone:
		g.unlock(AchExterminator)
	}

	g.maybeSpawnPowerUp(cx-powerUpSize/2, cy-powerUpSize/2)
	g.sound.Play(CueExplosion)
}

// spawnKillParticles bursts a fixed number of fragments from the kill point
func (g *Game) spawnKillParticles(x, y float64, clr color.RGBA) {
	for i := 0; i < particlesPerKill; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := 1.0 + g.rng.Float64()*2.0
		g.world.Particles = append(g.world.Particles, &Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1.0,
			Color: clr,
		})
	}
}

// pickUpPowerUp applies one pickup. Extra life is consumed immediately; the
// timed kinds upsert an active effect with a refreshed expiry.
func (g *Game) pickUpPowerUp(kind PowerUpKind, now time.Time) {
	w := g.world
	switch kind {
	case PowerUpExtraLife:
		w.Stats.Lives++
		g.unlock(AchLifeSaver)
	default:
		w.activatePowerUp(kind, now.Add(g.config.PowerUpDuration))
	}

	w.Pickups++
	if w.Pickups == pickupMilestone {
		g.unlock(AchCollector)
	}
	g.sound.Play(CuePowerUp)
}

func (g *Game) unlock(id string) {
	g.achievements.Unlock(id)
}

// State returns the current run phase
func (g *Game) State() GameState {
	return g.state
}

// Score returns the current run score
func (g *Game) Score() int {
	return g.world.Stats.Score
}

// Lives returns the remaining lives
func (g *Game) Lives() int {
	return g.world.Stats.Lives
}

// Level returns the current level
func (g *Game) Level() int {
	return g.world.Stats.Level
}

// ActivePowerUps returns the unexpired timed effects for HUD display
func (g *Game) ActivePowerUps() []ActivePowerUp {
	return g.world.activeEffects(g.now())
}

// Achievements returns the unlock store for summary display
func (g *Game) Achievements() *Achievements {
	return g.achievements
}

// Draw renders the frame. A nil or unready screen skips drawing; simulation
// state is never touched here so a skipped draw never skips a logic update.
func (g *Game) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	g.renderer.Draw(screen, g)
}

// Layout stages the field dimensions; the next tick picks them up
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.fieldWidth = outsideWidth
		g.fieldHeight = outsideHeight
	}
	return g.fieldWidth, g.fieldHeight
}
