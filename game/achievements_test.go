package game

import "testing"

func TestUnlockIsIdempotent(t *testing.T) {
	a := NewAchievements()

	if !a.Unlock(AchFirstBlood) {
		t.Fatalf("first unlock reported not-new")
	}
	if a.Unlock(AchFirstBlood) {
		t.Fatalf("second unlock reported new")
	}
	if !a.IsUnlocked(AchFirstBlood) {
		t.Fatalf("achievement lost its unlocked state")
	}

	all := a.All()
	if len(all) != 6 {
		t.Fatalf("achievement list grew or shrank: %d entries", len(all))
	}
	unlocked := 0
	for _, ach := range all {
		if ach.Unlocked {
			unlocked++
		}
	}
	if unlocked != 1 {
		t.Fatalf("unlocked count = %d, want 1", unlocked)
	}
}

func TestUnlockUnknownIDIsNoOp(t *testing.T) {
	a := NewAchievements()
	if a.Unlock("no_such_achievement") {
		t.Fatalf("unknown id reported unlocked")
	}
	if len(a.All()) != 6 {
		t.Fatalf("unknown id changed the list")
	}
}
