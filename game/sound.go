package game

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue names the fixed sound vocabulary the simulation emits
type Cue int

const (
	CueShoot Cue = iota
	CueExplosion
	CuePowerUp
	CueHit
	CueLevelUp
)

// Sound plays cues fire-and-forget and can be globally muted
type Sound interface {
	Play(cue Cue)
	SetMuted(muted bool)
	Muted() bool
}

// NopSound discards every cue. Tests use it.
type NopSound struct{}

func (NopSound) Play(Cue)      {}
func (NopSound) SetMuted(bool) {}
func (NopSound) Muted() bool   { return false }

const sampleRate = 44100

// BeepSound synthesizes a short sine beep per cue so the game needs no
// audio assets
type BeepSound struct {
	ctx     *audio.Context
	players map[Cue]*audio.Player
	muted   bool
}

// NewBeepSound creates the audio context and pre-renders one beep per cue
func NewBeepSound() *BeepSound {
	ctx := audio.NewContext(sampleRate)
	s := &BeepSound{
		ctx:     ctx,
		players: make(map[Cue]*audio.Player),
	}
	s.players[CueShoot] = newBeep(ctx, 950, 0.06)
	s.players[CueExplosion] = newBeep(ctx, 180, 0.15)
	s.players[CuePowerUp] = newBeep(ctx, 1300, 0.10)
	s.players[CueHit] = newBeep(ctx, 240, 0.12)
	s.players[CueLevelUp] = newBeep(ctx, 700, 0.20)
	return s
}

// Play restarts the cue's beep from the top
func (s *BeepSound) Play(cue Cue) {
	if s.muted {
		return
	}
	p := s.players[cue]
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// SetMuted toggles global mute
func (s *BeepSound) SetMuted(muted bool) {
	s.muted = muted
}

// Muted reports the mute state
func (s *BeepSound) Muted() bool {
	return s.muted
}

// readSeekNopCloser lets a bytes.Reader act as a closable stream for the
// audio player
type readSeekNopCloser struct{ *bytes.Reader }

func (readSeekNopCloser) Close() error { return nil }

// newBeep renders a 16-bit mono sine tone into memory
func newBeep(ctx *audio.Context, freq, durSec float64) *audio.Player {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*2)
	amp := 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		sample := int16(v * amp * 32767)
		pcm[2*i] = byte(sample)
		pcm[2*i+1] = byte(sample >> 8)
	}
	p, _ := audio.NewPlayer(ctx, readSeekNopCloser{bytes.NewReader(pcm)})
	return p
}
