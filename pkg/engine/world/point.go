package world

// Point is an x/y grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step returns the point one cell away in the given direction
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanDistance calculates the Manhattan distance between two points
func (p Point) ManhattanDistance(o Point) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
