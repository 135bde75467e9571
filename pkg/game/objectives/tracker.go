// Package objectives tracks level completion state: meeting the guide,
// collecting memory fragments, and the derived exit gate.
package objectives

import (
	"github.com/zyedidia/generic/mapset"

	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/entities"
)

// Status is a read-only snapshot of tracker state for the UI
type Status struct {
	GuideFound         bool
	FragmentsCollected int
	TotalFragments     int
	ExitUnlocked       bool
}

// Result reports the outcome of a CheckObjectives call. StatusChanged is true
// only when the call actually mutated tracker state, so callers can skip
// redundant side effects on repeated calls at the same position.
type Result struct {
	Collected     []*entities.Entity
	StatusChanged bool
}

// Snapshot is the plain serializable form of tracker state
type Snapshot struct {
	GuideFound           bool  `json:"guideFound"`
	CollectedFragmentIDs []int `json:"collectedFragmentIds"`
	TotalFragments       int   `json:"totalFragments"`
	ExitUnlocked         bool  `json:"exitUnlocked"`
}

// Tracker is the per-level objective state machine. It holds a reference to
// the maze's entity set to resolve positions, but does not own the entities.
//
// guideRequired distinguishes "no guide configured for this level" from
// "guide configured but not yet found": the exit gate only consults
// guideFound when a guide is required.
type Tracker struct {
	ents          *entities.Set
	guideRequired bool

	guideFound     bool
	collected      mapset.Set[int]
	totalFragments int
	exitUnlocked   bool
}

// NewTracker creates a tracker over the given entity set. totalFragments is
// taken from the set (the number actually placed, not the number requested).
func NewTracker(ents *entities.Set, guideRequired bool) *Tracker {
	t := &Tracker{}
	t.Reset(ents, guideRequired)
	return t
}

// Reset reinitializes all counters for a new level
func (t *Tracker) Reset(ents *entities.Set, guideRequired bool) {
	t.ents = ents
	t.guideRequired = guideRequired
	t.guideFound = false
	t.collected = mapset.New[int]()
	t.totalFragments = ents.FragmentCount()
	t.exitUnlocked = false
	t.recompute()
}

// GuideRequired reports whether this level gates the exit on finding the guide
func (t *Tracker) GuideRequired() bool {
	return t.guideRequired
}

// FindGuide records the guide as found. One-way: the second and later calls
// are no-ops returning false.
func (t *Tracker) FindGuide() bool {
	if t.guideFound {
		return false
	}
	t.guideFound = true
	t.recompute()
	return true
}

// CollectFragment records a fragment as collected by its stable ID.
// Collecting an already-collected ID is a no-op returning false.
func (t *Tracker) CollectFragment(id int) bool {
	if t.collected.Has(id) {
		return false
	}
	t.collected.Put(id)
	t.recompute()
	return true
}

// recompute derives exitUnlocked. The gate never regresses within a level:
// once open it stays open until Reset.
func (t *Tracker) recompute() {
	if t.exitUnlocked {
		return
	}
	guideOK := t.guideFound || !t.guideRequired
	t.exitUnlocked = guideOK && t.collected.Size() == t.totalFragments
}

// Status returns the current objective state
func (t *Tracker) Status() Status {
	return Status{
		GuideFound:         t.guideFound,
		FragmentsCollected: t.collected.Size(),
		TotalFragments:     t.totalFragments,
		ExitUnlocked:       t.exitUnlocked,
	}
}

// CheckObjectives collects any uncollected entity at the player's position
// and updates derived state. Safe to call after every accepted move.
func (t *Tracker) CheckObjectives(pos world.Point) Result {
	var res Result

	e := t.ents.CollectAt(pos.X, pos.Y)
	if e == nil {
		return res
	}

	// CollectAt only returns uncollected entities, so reaching here is
	// always a mutation.
	res.Collected = append(res.Collected, e)
	res.StatusChanged = true

	switch e.Kind {
	case entities.Guide:
		t.FindGuide()
	case entities.Fragment:
		t.CollectFragment(e.ID)
	}

	return res
}

// CanExitLevel is the sole gate for level transition: the player must stand
// on the Exit cell with all required objectives satisfied.
func (t *Tracker) CanExitLevel(pos, exit world.Point) bool {
	return pos == exit && t.exitUnlocked
}

// Export returns a plain structural snapshot of the tracker state
func (t *Tracker) Export() Snapshot {
	ids := make([]int, 0, t.collected.Size())
	t.collected.Each(func(id int) {
		ids = append(ids, id)
	})
	return Snapshot{
		GuideFound:           t.guideFound,
		CollectedFragmentIDs: ids,
		TotalFragments:       t.totalFragments,
		ExitUnlocked:         t.exitUnlocked,
	}
}

// Import restores tracker state from a snapshot, marking the matching
// entities in the set as collected so position lookups stay consistent.
func (t *Tracker) Import(snap Snapshot) {
	t.guideFound = snap.GuideFound
	t.collected = mapset.New[int]()
	for _, id := range snap.CollectedFragmentIDs {
		t.collected.Put(id)
	}
	if snap.TotalFragments > 0 {
		t.totalFragments = snap.TotalFragments
	}

	for _, e := range t.ents.All() {
		switch e.Kind {
		case entities.Guide:
			e.Collected = snap.GuideFound
		case entities.Fragment:
			e.Collected = t.collected.Has(e.ID)
		}
	}

	t.exitUnlocked = false
	t.recompute()
}
