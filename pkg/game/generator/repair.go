package generator

import (
	"selvaoscura/pkg/engine/world"
)

// RepairPath deterministically carves a Manhattan corridor from Start to
// Exit: along the x axis first, then the y axis. Every cell on the corridor
// becomes Path regardless of its prior state, and the Start and Exit markers
// are re-stamped afterwards since the walk may pass through them mid-carve.
//
// Postcondition: IsSolvable returns true.
func RepairPath(grid *world.Grid) {
	start := grid.StartPos()
	exit := grid.ExitPos()

	x, y := start.X, start.Y

	for x != exit.X {
		grid.SetCell(x, y, world.Path)
		if exit.X > x {
			x++
		} else {
			x--
		}
	}
	for y != exit.Y {
		grid.SetCell(x, y, world.Path)
		if exit.Y > y {
			y++
		} else {
			y--
		}
	}
	grid.SetCell(x, y, world.Path)

	grid.SetStart(start.X, start.Y)
	grid.SetExit(exit.X, exit.Y)
}
