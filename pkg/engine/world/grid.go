// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellType is the terrain type of a single grid cell.
type CellType int

// Cell types
const (
	Wall CellType = iota
	Path
	Start
	Exit
)

// String returns the string representation of a cell type
func (t CellType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Start:
		return "Start"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable returns true for any cell type the player can stand on
func (t CellType) Walkable() bool {
	return t != Wall
}

// Minimum grid dimensions. Anything smaller cannot hold a wall border
// plus an interior corridor.
const (
	MinWidth  = 5
	MinHeight = 5
)

// Grid represents the game map with encapsulated cell storage.
// All cells start as Wall; generators carve paths into it.
type Grid struct {
	width  int
	height int
	cells  [][]CellType // indexed [y][x]

	start    Point
	exit     Point
	hasStart bool
	hasExit  bool
}

// NewGrid creates a new all-Wall grid with the given dimensions.
// Dimensions below the minimum are clamped up.
func NewGrid(width, height int) *Grid {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}

	g := &Grid{width: width, height: height}
	g.cells = make([][]CellType, height)
	for y := range g.cells {
		g.cells[y] = make([]CellType, width)
	}
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsInterior checks if a position is within the playable area (not on the
// perimeter). This preserves a 1-cell wall border around the entire map.
func (g *Grid) IsInterior(x, y int) bool {
	return x >= 1 && x < g.width-1 && y >= 1 && y < g.height-1
}

// CellAt returns the cell type at the given position.
// Out-of-bounds positions read as Wall; this never panics.
func (g *Grid) CellAt(x, y int) CellType {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y][x]
}

// SetCell sets the cell type at the given position. Returns false if out of bounds.
func (g *Grid) SetCell(x, y int, t CellType) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y][x] = t
	return true
}

// IsWalkable checks whether a position can be occupied: in-bounds and not a Wall
func (g *Grid) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x].Walkable()
}

// StartPos returns the starting position. Only meaningful once SetStart has
// been called; Validate reports a grid without one.
func (g *Grid) StartPos() Point {
	return g.start
}

// ExitPos returns the exit position
func (g *Grid) ExitPos() Point {
	return g.exit
}

// SetStart stamps the Start cell at the given position, overwriting whatever
// was there. Any previous Start cell reverts to Path so the grid always holds
// exactly one. Returns false if out of bounds.
func (g *Grid) SetStart(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	if g.hasStart {
		g.cells[g.start.Y][g.start.X] = Path
	}
	g.cells[y][x] = Start
	g.start = Point{X: x, Y: y}
	g.hasStart = true
	return true
}

// SetExit stamps the Exit cell at the given position, overwriting whatever
// was there. Any previous Exit cell reverts to Path. Returns false if out of bounds.
func (g *Grid) SetExit(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	if g.hasExit {
		g.cells[g.exit.Y][g.exit.X] = Path
	}
	g.cells[y][x] = Exit
	g.exit = Point{X: x, Y: y}
	g.hasExit = true
	return true
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, t CellType)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// WalkableNeighbors returns the walkable positions 4-adjacent to p
func (g *Grid) WalkableNeighbors(p Point) []Point {
	var out []Point
	for _, dir := range AllDirections() {
		n := p.Step(dir)
		if g.IsWalkable(n.X, n.Y) {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks the grid for common issues and returns an error description
// or empty string if valid
func (g *Grid) Validate() string {
	if g.width < MinWidth || g.height < MinHeight {
		return "Grid has invalid dimensions"
	}

	if !g.hasStart {
		return "Grid has no start cell"
	}

	if !g.hasExit {
		return "Grid has no exit cell"
	}

	if g.CellAt(g.start.X, g.start.Y) != Start {
		return "Start position is not marked as a Start cell"
	}

	if g.CellAt(g.exit.X, g.exit.Y) != Exit {
		return "Exit position is not marked as an Exit cell"
	}

	return ""
}
