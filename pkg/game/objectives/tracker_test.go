package objectives

import (
	"math/rand"
	"testing"

	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/entities"
	"selvaoscura/pkg/game/generator"
)

// buildLevel carves a maze and places entities for tracker tests
func buildLevel(t *testing.T, wantsGuide bool, fragments int) (*world.Grid, *entities.Set) {
	t.Helper()
	grid := generator.Backtracker.Generate(15, 11, 6)
	set := entities.Place(grid, entities.PlacementConfig{
		WantsGuide:    wantsGuide,
		FragmentCount: fragments,
	}, rand.New(rand.NewSource(6)))
	return grid, set
}

// collectAll walks the tracker over every entity of the given kind
func collectAll(tr *Tracker, set *entities.Set, kind entities.Kind) {
	for _, e := range set.ByKind(kind) {
		tr.CheckObjectives(world.Point{X: e.X, Y: e.Y})
	}
}

func TestFindGuide_OneWay(t *testing.T) {
	_, set := buildLevel(t, true, 2)
	tr := NewTracker(set, true)

	if !tr.FindGuide() {
		t.Error("first FindGuide() = false, want true")
	}
	if tr.FindGuide() {
		t.Error("second FindGuide() = true, want false")
	}
	if !tr.Status().GuideFound {
		t.Error("GuideFound = false after FindGuide")
	}
}

func TestCollectFragment_IgnoresDuplicates(t *testing.T) {
	_, set := buildLevel(t, false, 3)
	tr := NewTracker(set, false)

	if !tr.CollectFragment(0) {
		t.Error("first CollectFragment(0) = false, want true")
	}
	if tr.CollectFragment(0) {
		t.Error("duplicate CollectFragment(0) = true, want false")
	}
	if got := tr.Status().FragmentsCollected; got != 1 {
		t.Errorf("FragmentsCollected = %d, want 1", got)
	}
}

func TestExitStaysLockedUntilGuideFound(t *testing.T) {
	_, set := buildLevel(t, true, 3)
	tr := NewTracker(set, true)

	// All fragments first: exit must stay sealed without the guide
	collectAll(tr, set, entities.Fragment)
	if tr.Status().ExitUnlocked {
		t.Fatal("exit unlocked with guide still missing")
	}

	collectAll(tr, set, entities.Guide)
	if !tr.Status().ExitUnlocked {
		t.Fatal("exit still locked with guide found and all fragments collected")
	}
}

func TestExitUnlocksWithoutGuideWhenNotRequired(t *testing.T) {
	_, set := buildLevel(t, false, 3)
	tr := NewTracker(set, false)

	collectAll(tr, set, entities.Fragment)
	if !tr.Status().ExitUnlocked {
		t.Error("exit locked on a level that does not require the guide")
	}
}

func TestExitNeverRegressesWithinLevel(t *testing.T) {
	_, set := buildLevel(t, true, 2)
	tr := NewTracker(set, true)

	collectAll(tr, set, entities.Guide)
	collectAll(tr, set, entities.Fragment)
	if !tr.Status().ExitUnlocked {
		t.Fatal("exit not unlocked after completing all objectives")
	}

	// Redundant operations must not close the gate again
	tr.FindGuide()
	tr.CollectFragment(0)
	tr.CheckObjectives(world.Point{X: 1, Y: 1})
	if !tr.Status().ExitUnlocked {
		t.Error("exit regressed to locked")
	}
}

func TestCheckObjectives_ReportsMutationOnlyOnce(t *testing.T) {
	_, set := buildLevel(t, false, 1)
	tr := NewTracker(set, false)

	f := set.ByKind(entities.Fragment)[0]
	pos := world.Point{X: f.X, Y: f.Y}

	res := tr.CheckObjectives(pos)
	if !res.StatusChanged || len(res.Collected) != 1 {
		t.Fatalf("first check: StatusChanged=%v Collected=%d, want true/1", res.StatusChanged, len(res.Collected))
	}

	res = tr.CheckObjectives(pos)
	if res.StatusChanged || len(res.Collected) != 0 {
		t.Errorf("repeat check: StatusChanged=%v Collected=%d, want false/0", res.StatusChanged, len(res.Collected))
	}
}

func TestCheckObjectives_EmptyCellIsNoOp(t *testing.T) {
	grid, set := buildLevel(t, false, 2)
	tr := NewTracker(set, false)

	res := tr.CheckObjectives(grid.StartPos())
	if res.StatusChanged || len(res.Collected) != 0 {
		t.Error("objective check at an empty cell reported a change")
	}
}

func TestCanExitLevel_RequiresPositionAndUnlock(t *testing.T) {
	grid, set := buildLevel(t, false, 1)
	tr := NewTracker(set, false)
	exit := grid.ExitPos()

	if tr.CanExitLevel(exit, exit) {
		t.Error("CanExitLevel = true before objectives complete")
	}

	collectAll(tr, set, entities.Fragment)
	if tr.CanExitLevel(grid.StartPos(), exit) {
		t.Error("CanExitLevel = true away from the exit cell")
	}
	if !tr.CanExitLevel(exit, exit) {
		t.Error("CanExitLevel = false on the exit with objectives complete")
	}
}

func TestReset_ClearsAllProgress(t *testing.T) {
	_, set := buildLevel(t, true, 2)
	tr := NewTracker(set, true)
	collectAll(tr, set, entities.Guide)
	collectAll(tr, set, entities.Fragment)

	_, nextSet := buildLevel(t, true, 4)
	tr.Reset(nextSet, true)

	status := tr.Status()
	if status.GuideFound || status.FragmentsCollected != 0 || status.ExitUnlocked {
		t.Errorf("status after Reset = %+v, want pristine", status)
	}
	if status.TotalFragments != 4 {
		t.Errorf("TotalFragments = %d, want 4", status.TotalFragments)
	}
}

func TestExportImport_RestoresProgress(t *testing.T) {
	_, set := buildLevel(t, true, 3)
	tr := NewTracker(set, true)
	collectAll(tr, set, entities.Guide)
	tr.CollectFragment(0)
	tr.CollectFragment(2)

	snap := tr.Export()

	// Rebuild the same level as a load would and replay the snapshot
	_, freshSet := buildLevel(t, true, 3)
	restored := NewTracker(freshSet, true)
	restored.Import(snap)

	got := restored.Status()
	want := tr.Status()
	if got != want {
		t.Errorf("restored status = %+v, want %+v", got, want)
	}

	// Collected fragments must be invisible to position lookups after import
	for _, f := range freshSet.ByKind(entities.Fragment) {
		if (f.ID == 0 || f.ID == 2) && !f.Collected {
			t.Errorf("fragment %d not marked collected after import", f.ID)
		}
	}
}
