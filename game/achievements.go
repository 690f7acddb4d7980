package game

// Achievement ids referenced by the simulation
const (
	AchFirstBlood   = "first_blood"
	AchExterminator = "exterminator"
	AchCollector    = "collector"
	AchLifeSaver    = "life_saver"
	AchVeteran      = "veteran"
	AchSurvivor     = "survivor"
)

// Achievement pairs an immutable identity with an unlocked flag. The flag
// goes false to true at most once per run.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    bool
}

// Achievements is the unlock sink and status store for one run
type Achievements struct {
	list []*Achievement
	byID map[string]*Achievement
}

// NewAchievements returns the full locked achievement list
func NewAchievements() *Achievements {
	a := &Achievements{
		list: []*Achievement{
			{ID: AchFirstBlood, Name: "First Blood", Description: "Destroy your first enemy", Icon: "!"},
			{ID: AchExterminator, Name: "Exterminator", Description: "Destroy 50 enemies", Icon: "X"},
			{ID: AchCollector, Name: "Collector", Description: "Pick up 10 power-ups", Icon: "O"},
			{ID: AchLifeSaver, Name: "Life Saver", Description: "Pick up an extra life", Icon: "+"},
			{ID: AchVeteran, Name: "Veteran", Description: "Reach level 5", Icon: "*"},
			{ID: AchSurvivor, Name: "Survivor", Description: "Survive for 60 seconds", Icon: "~"},
		},
	}
	a.byID = make(map[string]*Achievement, len(a.list))
	for _, ach := range a.list {
		a.byID[ach.ID] = ach
	}
	return a
}

// Unlock marks an achievement unlocked and reports whether it was newly
// unlocked. Unlocking an already-unlocked or unknown id is a no-op.
func (a *Achievements) Unlock(id string) bool {
	ach, ok := a.byID[id]
	if !ok || ach.Unlocked {
		return false
	}
	ach.Unlocked = true
	return true
}

// IsUnlocked reports the current status of an id
func (a *Achievements) IsUnlocked(id string) bool {
	ach, ok := a.byID[id]
	return ok && ach.Unlocked
}

// All returns the achievement list in display order for the end-of-run summary
func (a *Achievements) All() []Achievement {
	out := make([]Achievement, len(a.list))
	for i, ach := range a.list {
		out[i] = *ach
	}
	return out
}
