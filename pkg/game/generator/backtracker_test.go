// Package generator tests maze carving, solvability checking, and the
// deterministic repair fallback.
package generator

import (
	"testing"

	"selvaoscura/pkg/engine/world"
)

func TestGenerate_PlacesStartAndExit(t *testing.T) {
	grid := Backtracker.Generate(15, 11, 1)
	if grid == nil {
		t.Fatal("Generate returned nil")
	}
	if msg := grid.Validate(); msg != "" {
		t.Fatalf("generated grid invalid: %s", msg)
	}
	if grid.CellAt(1, 1) != world.Start {
		t.Errorf("cell (1,1) = %v, want Start", grid.CellAt(1, 1))
	}
	exit := grid.ExitPos()
	if exit.X != grid.Width()-2 || exit.Y != grid.Height()-2 {
		t.Errorf("exit at %v, want bottom-right interior corner", exit)
	}
}

func TestGenerate_BorderStaysWalled(t *testing.T) {
	grid := Backtracker.Generate(21, 15, 7)

	for x := 0; x < grid.Width(); x++ {
		if grid.CellAt(x, 0) != world.Wall || grid.CellAt(x, grid.Height()-1) != world.Wall {
			t.Fatalf("border breached at column %d", x)
		}
	}
	for y := 0; y < grid.Height(); y++ {
		if grid.CellAt(0, y) != world.Wall || grid.CellAt(grid.Width()-1, y) != world.Wall {
			t.Fatalf("border breached at row %d", y)
		}
	}
}

func TestGenerate_SolvableAcrossSizesAndSeeds(t *testing.T) {
	sizes := [][2]int{{5, 5}, {15, 11}, {21, 15}, {31, 23}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			grid := Backtracker.Generate(size[0], size[1], seed)
			if !IsSolvable(grid) {
				t.Errorf("grid %dx%d seed %d is unsolvable", size[0], size[1], seed)
			}
		}
	}
}

func TestGenerate_SameSeedSameMaze(t *testing.T) {
	a := Backtracker.Generate(17, 13, 42)
	b := Backtracker.Generate(17, 13, 42)

	a.ForEachCell(func(x, y int, c world.CellType) {
		if b.CellAt(x, y) != c {
			t.Fatalf("cell (%d,%d) differs between identical seeds: %v vs %v", x, y, c, b.CellAt(x, y))
		}
	})
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := Backtracker.Generate(17, 13, 1)
	b := Backtracker.Generate(17, 13, 2)

	same := true
	a.ForEachCell(func(x, y int, c world.CellType) {
		if b.CellAt(x, y) != c {
			same = false
		}
	})
	if same {
		t.Error("seeds 1 and 2 carved identical mazes")
	}
}

func TestIsSolvable_DetectsWalledOffExit(t *testing.T) {
	grid := world.NewGrid(9, 9)
	grid.SetStart(1, 1)
	grid.SetExit(7, 7)
	// Start and exit are walkable islands with solid wall between them

	if IsSolvable(grid) {
		t.Error("IsSolvable = true for disconnected start and exit")
	}
}

func TestIsSolvable_TrivialCorridor(t *testing.T) {
	grid := world.NewGrid(9, 9)
	for x := 1; x <= 7; x++ {
		grid.SetCell(x, 1, world.Path)
	}
	grid.SetStart(1, 1)
	grid.SetExit(7, 1)

	if !IsSolvable(grid) {
		t.Error("IsSolvable = false for straight corridor")
	}
}

func TestRepairPath_MakesDisconnectedGridSolvable(t *testing.T) {
	grid := world.NewGrid(13, 13)
	grid.SetStart(1, 1)
	grid.SetExit(11, 11)

	RepairPath(grid)

	if !IsSolvable(grid) {
		t.Fatal("grid still unsolvable after RepairPath")
	}
}

func TestRepairPath_PreservesMarkers(t *testing.T) {
	grid := world.NewGrid(13, 13)
	grid.SetStart(1, 1)
	grid.SetExit(11, 11)

	RepairPath(grid)

	if grid.CellAt(1, 1) != world.Start {
		t.Errorf("start cell = %v, want Start", grid.CellAt(1, 1))
	}
	if grid.CellAt(11, 11) != world.Exit {
		t.Errorf("exit cell = %v, want Exit", grid.CellAt(11, 11))
	}
	if msg := grid.Validate(); msg != "" {
		t.Errorf("repaired grid invalid: %s", msg)
	}
}

func TestRepairPath_Deterministic(t *testing.T) {
	build := func() *world.Grid {
		g := world.NewGrid(11, 11)
		g.SetStart(1, 1)
		g.SetExit(9, 9)
		RepairPath(g)
		return g
	}
	a := build()
	b := build()
	a.ForEachCell(func(x, y int, c world.CellType) {
		if b.CellAt(x, y) != c {
			t.Fatalf("repair not deterministic at (%d,%d)", x, y)
		}
	})
}
