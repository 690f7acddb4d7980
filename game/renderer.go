package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// star is one backdrop speck; layer 0 is far and slow, layer 1 near and fast
type star struct {
	x, y  float64
	speed float64
	layer int
}

const starCount = 80

// Renderer paints the world with vector shapes. No sprite assets exist, so
// every entity uses its documented fallback shape: a down-pointing triangle
// for the player and basic/fast enemies, a square for heavy enemies, a
// lettered circle for power-ups and a faded dot for particles.
type Renderer struct {
	stars []star
}

// NewRenderer seeds the parallax starfield
func NewRenderer(config Config, rng Rand) *Renderer {
	r := &Renderer{stars: make([]star, starCount)}
	for i := range r.stars {
		layer := i % 2
		r.stars[i] = star{
			x:     rng.Float64() * float64(config.ScreenWidth),
			y:     rng.Float64() * float64(config.ScreenHeight),
			speed: 0.3 + float64(layer)*0.7 + rng.Float64()*0.3,
			layer: layer,
		}
	}
	return r
}

// advanceStars scrolls the backdrop downward, wrapping at the bottom
func (r *Renderer) advanceStars(fieldHeight float64) {
	for i := range r.stars {
		r.stars[i].y += r.stars[i].speed
		if r.stars[i].y > fieldHeight {
			r.stars[i].y = 0
		}
	}
}

// Draw repaints the full frame: backdrop, entities, HUD, state overlays
func (r *Renderer) Draw(screen *ebiten.Image, g *Game) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x20, 0xff})
	r.drawStars(screen)

	w := g.world
	for _, p := range w.Particles {
		drawParticle(screen, p)
	}
	for _, e := range w.Enemies {
		if e.Active {
			drawEnemy(screen, e)
		}
	}
	for _, p := range w.PowerUps {
		if p.Active {
			drawPowerUp(screen, p)
		}
	}
	for _, b := range w.PlayerBullets {
		if b.Active {
			drawBullet(screen, b)
		}
	}
	for _, b := range w.EnemyBullets {
		if b.Active {
			drawBullet(screen, b)
		}
	}
	if g.state == StatePlaying || g.state == StatePaused {
		r.drawPlayer(screen, g)
	}

	r.drawHUD(screen, g)

	switch g.state {
	case StateStart:
		r.drawCenteredLines(screen, g, []string{
			"STARFALL",
			"",
			"arrows/WASD or drag to move, space to shoot",
			"P pauses, M mutes",
			"",
			"press space to start",
		})
	case StatePaused:
		r.drawCenteredLines(screen, g, []string{"PAUSED", "", "press P to resume"})
	case StateGameOver:
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("score %d  level %d", g.Score(), g.Level()),
			"",
		}
		for _, a := range g.Achievements().All() {
			mark := "[ ]"
			if a.Unlocked {
				mark = "[x]"
			}
			lines = append(lines, fmt.Sprintf("%s %s %s", mark, a.Icon, a.Name))
		}
		lines = append(lines, "", "press space to restart")
		r.drawCenteredLines(screen, g, lines)
	}
}

func (r *Renderer) drawStars(screen *ebiten.Image) {
	for _, s := range r.stars {
		shade := uint8(0x50)
		radius := float32(1)
		if s.layer == 1 {
			shade = 0xa0
			radius = 1.5
		}
		vector.DrawFilledCircle(screen, float32(s.x), float32(s.y), radius, color.RGBA{shade, shade, shade, 0xff}, false)
	}
}

// drawPlayer draws the down-pointing triangle, blinking while invincible
func (r *Renderer) drawPlayer(screen *ebiten.Image, g *Game) {
	p := g.world.Player
	clr := color.RGBA{0xee, 0xee, 0xff, 0xff}
	if p.Invincible(g.now()) {
		clr.A = 0x80
	}
	drawTriangleDown(screen, p.X, p.Y, p.Size, clr)
}

func drawEnemy(screen *ebiten.Image, e *Enemy) {
	cfg := GetEnemyKindConfig(e.Kind)
	if e.Kind == EnemyHeavy {
		vector.DrawFilledRect(screen, float32(e.X), float32(e.Y), float32(cfg.Size), float32(cfg.Size), cfg.Color, true)
		return
	}
	drawTriangleDown(screen, e.X, e.Y, cfg.Size, cfg.Color)
}

// drawTriangleDown strokes a triangle with its tip at the bottom of the
// bounding box
func drawTriangleDown(screen *ebiten.Image, x, y, size float64, clr color.Color) {
	topLeftX, topLeftY := float32(x), float32(y)
	topRightX := float32(x + size)
	tipX, tipY := float32(x+size/2), float32(y+size)
	vector.StrokeLine(screen, topLeftX, topLeftY, topRightX, topLeftY, 2, clr, true)
	vector.StrokeLine(screen, topLeftX, topLeftY, tipX, tipY, 2, clr, true)
	vector.StrokeLine(screen, topRightX, topLeftY, tipX, tipY, 2, clr, true)
}

func drawBullet(screen *ebiten.Image, b *Bullet) {
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), b.Color, true)
}

func drawPowerUp(screen *ebiten.Image, p *PowerUp) {
	cx := float32(p.X + powerUpSize/2)
	cy := float32(p.Y + powerUpSize/2)
	vector.DrawFilledCircle(screen, cx, cy, powerUpSize/2, color.RGBA{0x44, 0x44, 0x88, 0xff}, true)
	glyph := p.Kind.String()[:1]
	text.Draw(screen, glyph, basicfont.Face7x13, int(cx)-3, int(cy)+5, color.White)
}

func drawParticle(screen *ebiten.Image, p *Particle) {
	if p.Life <= 0 {
		return
	}
	clr := p.Color
	clr.A = uint8(p.Life * 255)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 2, clr, false)
}

// drawHUD shows score, lives, level and the active timed effects
func (r *Renderer) drawHUD(screen *ebiten.Image, g *Game) {
	hud := fmt.Sprintf("SCORE %d   LIVES %d   LEVEL %d", g.Score(), g.Lives(), g.Level())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)

	now := g.now()
	y := 32
	for _, p := range g.world.activeEffects(now) {
		remaining := p.ExpiresAt.Sub(now).Seconds()
		line := fmt.Sprintf("%s %.0fs", p.Kind, remaining)
		text.Draw(screen, line, basicfont.Face7x13, 8, y, color.RGBA{0x88, 0xff, 0x88, 0xff})
		y += 14
	}
}

func (r *Renderer) drawCenteredLines(screen *ebiten.Image, g *Game, lines []string) {
	cx := g.fieldWidth / 2
	y := g.fieldHeight/2 - len(lines)*8
	for _, line := range lines {
		x := cx - len(line)*7/2
		text.Draw(screen, line, basicfont.Face7x13, x, y, color.White)
		y += 16
	}
}
