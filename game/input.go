package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSource is what the tick reads at its start. Implementations only
// stage values; they never touch the world.
type InputSource interface {
	// Axis returns the held directional keys as -1/0/1 per axis
	Axis() (float64, float64)

	// DragDelta returns the accumulated pointer or touch movement since the
	// last call
	DragDelta() (float64, float64)

	// Firing reports whether the fire key is held
	Firing() bool

	// PauseToggled reports a pause keypress edge
	PauseToggled() bool

	// Confirm reports a start/restart keypress edge
	Confirm() bool

	// MuteToggled reports a mute keypress edge
	MuteToggled() bool
}

// KeyboardInput reads the real keyboard, mouse and touch screen
type KeyboardInput struct {
	dragging    bool
	lastX       int
	lastY       int
	touchIDs    []ebiten.TouchID
	activeTouch ebiten.TouchID
	hasTouch    bool
}

// NewKeyboardInput creates the default input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Axis returns arrow-key/WASD movement
func (k *KeyboardInput) Axis() (float64, float64) {
	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
	}
	return dx, dy
}

// DragDelta returns mouse-drag or first-touch movement since the last call
func (k *KeyboardInput) DragDelta() (float64, float64) {
	// Touch takes priority when present
	k.touchIDs = ebiten.AppendTouchIDs(k.touchIDs[:0])
	if len(k.touchIDs) > 0 {
		id := k.touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		if k.hasTouch && id == k.activeTouch {
			dx, dy := float64(x-k.lastX), float64(y-k.lastY)
			k.lastX, k.lastY = x, y
			return dx, dy
		}
		k.hasTouch = true
		k.activeTouch = id
		k.lastX, k.lastY = x, y
		return 0, 0
	}
	k.hasTouch = false

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if k.dragging {
			dx, dy := float64(x-k.lastX), float64(y-k.lastY)
			k.lastX, k.lastY = x, y
			return dx, dy
		}
		k.dragging = true
		k.lastX, k.lastY = x, y
		return 0, 0
	}
	k.dragging = false
	return 0, 0
}

// Firing reports the space key (also used for Confirm outside a run)
func (k *KeyboardInput) Firing() bool {
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

// PauseToggled reports a P or Escape press
func (k *KeyboardInput) PauseToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Confirm reports a Space or Enter press
func (k *KeyboardInput) Confirm() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// MuteToggled reports an M press
func (k *KeyboardInput) MuteToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}
