package world

import (
	"testing"
)

func TestNewGrid_ClampsToMinimumDimensions(t *testing.T) {
	g := NewGrid(1, 2)
	if g.Width() != MinWidth || g.Height() != MinHeight {
		t.Errorf("NewGrid(1, 2) = %dx%d, want %dx%d", g.Width(), g.Height(), MinWidth, MinHeight)
	}
}

func TestNewGrid_StartsAllWall(t *testing.T) {
	g := NewGrid(7, 7)
	g.ForEachCell(func(x, y int, c CellType) {
		if c != Wall {
			t.Errorf("cell (%d,%d) = %v, want Wall", x, y, c)
		}
	})
}

func TestCellAt_OutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(7, 7)
	g.SetCell(1, 1, Path)

	cases := [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 7}, {100, 100}, {-50, -50}}
	for _, c := range cases {
		if got := g.CellAt(c[0], c[1]); got != Wall {
			t.Errorf("CellAt(%d, %d) = %v, want Wall", c[0], c[1], got)
		}
	}
}

func TestSetCell_OutOfBoundsReturnsFalse(t *testing.T) {
	g := NewGrid(7, 7)
	if g.SetCell(-1, 3, Path) {
		t.Error("SetCell(-1, 3) = true, want false")
	}
	if !g.SetCell(3, 3, Path) {
		t.Error("SetCell(3, 3) = false, want true")
	}
}

func TestWalkable_OnlyWallBlocks(t *testing.T) {
	if Wall.Walkable() {
		t.Error("Wall.Walkable() = true, want false")
	}
	for _, c := range []CellType{Path, Start, Exit} {
		if !c.Walkable() {
			t.Errorf("%v.Walkable() = false, want true", c)
		}
	}
}

func TestSetStart_MovesMarkerAndRevertsOld(t *testing.T) {
	g := NewGrid(9, 9)
	g.SetStart(1, 1)
	g.SetStart(3, 3)

	if g.CellAt(1, 1) != Path {
		t.Errorf("old start cell = %v, want Path", g.CellAt(1, 1))
	}
	if g.CellAt(3, 3) != Start {
		t.Errorf("new start cell = %v, want Start", g.CellAt(3, 3))
	}
	if g.StartPos() != (Point{X: 3, Y: 3}) {
		t.Errorf("StartPos() = %v, want (3,3)", g.StartPos())
	}

	// Exactly one Start cell in the whole grid
	count := 0
	g.ForEachCell(func(x, y int, c CellType) {
		if c == Start {
			count++
		}
	})
	if count != 1 {
		t.Errorf("grid has %d Start cells, want 1", count)
	}
}

func TestSetExit_MovesMarkerAndRevertsOld(t *testing.T) {
	g := NewGrid(9, 9)
	g.SetExit(7, 7)
	g.SetExit(5, 5)

	if g.CellAt(7, 7) != Path {
		t.Errorf("old exit cell = %v, want Path", g.CellAt(7, 7))
	}
	if g.ExitPos() != (Point{X: 5, Y: 5}) {
		t.Errorf("ExitPos() = %v, want (5,5)", g.ExitPos())
	}
}

func TestIsInterior_ExcludesBorder(t *testing.T) {
	g := NewGrid(7, 7)
	if g.IsInterior(0, 3) || g.IsInterior(3, 0) || g.IsInterior(6, 3) || g.IsInterior(3, 6) {
		t.Error("border positions reported as interior")
	}
	if !g.IsInterior(1, 1) || !g.IsInterior(5, 5) {
		t.Error("interior positions reported as border")
	}
}

func TestWalkableNeighbors_FiltersWalls(t *testing.T) {
	g := NewGrid(7, 7)
	g.SetCell(3, 3, Path)
	g.SetCell(3, 2, Path) // north
	g.SetCell(4, 3, Path) // east

	neighbors := g.WalkableNeighbors(Point{X: 3, Y: 3})
	if len(neighbors) != 2 {
		t.Fatalf("got %d walkable neighbors, want 2", len(neighbors))
	}
}

func TestValidate_ReportsMissingMarkers(t *testing.T) {
	g := NewGrid(7, 7)
	if msg := g.Validate(); msg == "" {
		t.Error("Validate() on grid without start/exit = \"\", want error description")
	}

	g.SetStart(1, 1)
	g.SetExit(5, 5)
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() on complete grid = %q, want \"\"", msg)
	}
}

func TestPoint_StepFollowsDirections(t *testing.T) {
	p := Point{X: 3, Y: 3}
	if got := p.Step(North); got != (Point{X: 3, Y: 2}) {
		t.Errorf("Step(North) = %v, want (3,2)", got)
	}
	if got := p.Step(South); got != (Point{X: 3, Y: 4}) {
		t.Errorf("Step(South) = %v, want (3,4)", got)
	}
	if got := p.Step(East); got != (Point{X: 4, Y: 3}) {
		t.Errorf("Step(East) = %v, want (4,3)", got)
	}
	if got := p.Step(West); got != (Point{X: 2, Y: 3}) {
		t.Errorf("Step(West) = %v, want (2,3)", got)
	}
}

func TestDirection_OppositesPair(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
}

func TestManhattanDistance(t *testing.T) {
	a := Point{X: 1, Y: 1}
	b := Point{X: 4, Y: 5}
	if got := a.ManhattanDistance(b); got != 7 {
		t.Errorf("ManhattanDistance = %d, want 7", got)
	}
	if got := b.ManhattanDistance(a); got != 7 {
		t.Errorf("ManhattanDistance reversed = %d, want 7", got)
	}
}
