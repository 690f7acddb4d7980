package game

import "time"

// ActivePowerUp pairs a timed power-up variant with its absolute expiry.
// At most one entry exists per variant; picking the same variant again
// replaces the expiry instead of stacking a second entry.
type ActivePowerUp struct {
	Kind      PowerUpKind
	ExpiresAt time.Time
}

// activatePowerUp upserts a timed effect, refreshing an existing entry's expiry
func (w *World) activatePowerUp(kind PowerUpKind, expiresAt time.Time) {
	for i := range w.ActivePowerUps {
		if w.ActivePowerUps[i].Kind == kind {
			w.ActivePowerUps[i].ExpiresAt = expiresAt
			return
		}
	}
	w.ActivePowerUps = append(w.ActivePowerUps, ActivePowerUp{Kind: kind, ExpiresAt: expiresAt})
}

// powerUpActive reports whether an unexpired effect of the given kind is held.
// Expiry is lazy: stale entries may linger in storage but are never acted on.
func (w *World) powerUpActive(kind PowerUpKind, now time.Time) bool {
	for _, p := range w.ActivePowerUps {
		if p.Kind == kind && p.ExpiresAt.After(now) {
			return true
		}
	}
	return false
}

// consumeShield removes an unexpired shield entry, reporting whether one
// existed to absorb the hit
func (w *World) consumeShield(now time.Time) bool {
	for i, p := range w.ActivePowerUps {
		if p.Kind == PowerUpShield && p.ExpiresAt.After(now) {
			w.ActivePowerUps = append(w.ActivePowerUps[:i], w.ActivePowerUps[i+1:]...)
			return true
		}
	}
	return false
}

// activeEffects returns the unexpired effects for HUD display
func (w *World) activeEffects(now time.Time) []ActivePowerUp {
	active := make([]ActivePowerUp, 0, len(w.ActivePowerUps))
	for _, p := range w.ActivePowerUps {
		if p.ExpiresAt.After(now) {
			active = append(active, p)
		}
	}
	return active
}
