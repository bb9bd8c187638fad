package maze

// Dijkstra is a uniform-cost solver. Cells are expanded in order of distance
// from start; equal distances are expanded first-in first-out.
type Dijkstra struct{}

// NewDijkstra returns a Dijkstra solver.
func NewDijkstra() *Dijkstra {
	return &Dijkstra{}
}

// Solve returns a shortest path from start to end, or an empty Path.
func (Dijkstra) Solve(m *Maze, start, end Point) Path {
	path, _ := dijkstraSearch(m, start, end)
	return path
}

// dijkstraSearch also reports how many cells were finalized.
func dijkstraSearch(m *Maze, start, end Point) (Path, int) {
	s := newSearch(m, start, end)
	path := s.run(byDistance, zeroHeuristic)
	return path, s.explored
}

func byDistance(a, b queued) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func zeroHeuristic(Point) int { return 0 }
