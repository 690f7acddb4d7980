package game

import (
	"math/rand"
	"time"
)

// Rand is the random source used for spawn rolls and variant draws.
// It is an interface so tests can script exact sequences.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// newGameRand returns the default unseeded-feeling source for live play
func newGameRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
