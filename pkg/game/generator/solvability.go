package generator

import (
	"selvaoscura/pkg/engine/world"
)

// IsSolvable reports whether the Exit cell is reachable from the Start cell
// by breadth-first search over 4-directional walkable neighbors. The grid is
// not mutated; the search visits each cell at most once.
func IsSolvable(grid *world.Grid) bool {
	start := grid.StartPos()
	exit := grid.ExitPos()

	if !grid.IsWalkable(start.X, start.Y) || !grid.IsWalkable(exit.X, exit.Y) {
		return false
	}

	visited := make([][]bool, grid.Height())
	for y := range visited {
		visited[y] = make([]bool, grid.Width())
	}

	queue := []world.Point{start}
	visited[start.Y][start.X] = true

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == exit {
			return true
		}

		for _, n := range grid.WalkableNeighbors(curr) {
			if !visited[n.Y][n.X] {
				visited[n.Y][n.X] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
