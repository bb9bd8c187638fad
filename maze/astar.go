package maze

// AStar is a heuristic solver ordering its frontier by f = g + h, where g is
// the step count from start and h the Manhattan distance to end. With unit
// steps and no diagonals h never overestimates, so the path is as short as
// Dijkstra's while usually expanding fewer cells.
type AStar struct{}

// NewAStar returns an A* solver.
func NewAStar() *AStar {
	return &AStar{}
}

// Solve returns a shortest path from start to end, or an empty Path.
func (AStar) Solve(m *Maze, start, end Point) Path {
	path, _ := aStarSearch(m, start, end)
	return path
}

// aStarSearch also reports how many cells were finalized.
func aStarSearch(m *Maze, start, end Point) (Path, int) {
	s := newSearch(m, start, end)
	path := s.run(byScoreThenPoint, func(p Point) int { return Manhattan(p, end) })
	return path, s.explored
}

// byScoreThenPoint breaks f ties by (x, y) so the expansion order is fixed.
func byScoreThenPoint(a, b queued) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if a.point.X != b.point.X {
		return a.point.X < b.point.X
	}
	return a.point.Y < b.point.Y
}
