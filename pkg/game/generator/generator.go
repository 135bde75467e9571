// Package generator builds playable labyrinth grids. The carve algorithm
// guarantees a connected tree over the odd-coordinate lattice; solvability
// checking and deterministic repair act as a second line of defense for
// degenerate dimensions.
package generator

import (
	"selvaoscura/pkg/engine/world"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(width, height int, seed int64) *world.Grid
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Backtracker
