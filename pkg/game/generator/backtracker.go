package generator

import (
	"math/rand"
	"time"

	"selvaoscura/pkg/engine/world"
)

// BacktrackerGenerator carves a maze with the iterative recursive-backtracker
// algorithm: a randomized depth-first walk over the sub-lattice of odd
// coordinates, knocking out the wall between each visited pair. The walk
// produces a spanning tree, so every carved cell is reachable from (1,1).
type BacktrackerGenerator struct{}

// Name returns the generator's name
func (b *BacktrackerGenerator) Name() string {
	return "backtracker"
}

// carveDirections are the four two-cell jumps between odd-lattice nodes.
var carveDirections = []world.Point{
	{X: 0, Y: -2},
	{X: 0, Y: 2},
	{X: -2, Y: 0},
	{X: 2, Y: 0},
}

// Generate builds a new grid of the given dimensions, carves it, and stamps
// the Start cell at (1,1) and the Exit cell at (width-2, height-2). A seed of
// zero picks a time-based seed.
func (b *BacktrackerGenerator) Generate(width, height int, seed int64) *world.Grid {
	grid := world.NewGrid(width, height)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	b.carve(grid, rng)

	// Start and Exit overwrite whatever the carve left there. On very small
	// grids the exit corner may sit off the odd lattice; IsSolvable plus
	// RepairPath cover that case downstream.
	grid.SetStart(1, 1)
	grid.SetExit(grid.Width()-2, grid.Height()-2)

	return grid
}

// carve runs the depth-first wall carving from (1,1) using an explicit stack
func (b *BacktrackerGenerator) carve(grid *world.Grid, rng *rand.Rand) {
	start := world.Point{X: 1, Y: 1}
	grid.SetCell(start.X, start.Y, world.Path)

	stack := []world.Point{start}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		candidates := make([]world.Point, 0, 4)
		for _, d := range carveDirections {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if grid.IsInterior(nx, ny) && grid.CellAt(nx, ny) == world.Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) > 0 {
			d := candidates[rng.Intn(len(candidates))]

			// Knock out the wall between the two lattice nodes, then the node itself
			grid.SetCell(curr.X+d.X/2, curr.Y+d.Y/2, world.Path)
			grid.SetCell(curr.X+d.X, curr.Y+d.Y, world.Path)

			stack = append(stack, world.Point{X: curr.X + d.X, Y: curr.Y + d.Y})
		} else {
			stack = stack[:len(stack)-1]
		}
	}
}
