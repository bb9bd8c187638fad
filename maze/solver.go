package maze

import "math"

// Solver finds a shortest 4-directional path between two open cells.
// Every step costs 1. Solve returns an empty Path when end is unreachable;
// that is a normal result, not an error.
type Solver interface {
	Solve(m *Maze, start, end Point) Path
}

// queued is a frontier entry for the solvers.
type queued struct {
	point    Point
	priority int // distance for Dijkstra, g+h for A*
	seq      int // insertion order
}

// search holds the per-call state shared by Dijkstra and A*.
type search struct {
	m          *Maze
	start, end Point
	dist       [][]int         // best known step count from start
	prev       map[Point]Point // predecessor on the best known route
	visited    [][]bool        // finalized cells
	seq        int
	explored   int
}

// newSearch allocates fresh state for one solve.
func newSearch(m *Maze, start, end Point) *search {
	dist := make([][]int, m.x)
	visited := make([][]bool, m.x)
	for i := range dist {
		dist[i] = make([]int, m.y)
		for j := range dist[i] {
			dist[i][j] = math.MaxInt
		}
		visited[i] = make([]bool, m.y)
	}

	return &search{
		m:       m,
		start:   start,
		end:     end,
		dist:    dist,
		prev:    make(map[Point]Point),
		visited: visited,
	}
}

// run expands cells in frontier order. heuristic estimates the remaining
// cost to end and must never overestimate it.
func (s *search) run(less func(a, b queued) bool, heuristic func(Point) int) Path {
	if !s.m.InBound(s.start.X, s.start.Y) || !s.m.InBound(s.end.X, s.end.Y) {
		return Path{}
	}

	open := newFrontier(less)
	s.dist[s.start.X][s.start.Y] = 0
	open.push(s.entry(s.start, heuristic(s.start)))

	for !open.empty() {
		current := open.pop().point
		if s.visited[current.X][current.Y] {
			continue
		}
		s.visited[current.X][current.Y] = true
		s.explored++

		if current == s.end {
			return buildPath(s.prev, s.start, s.end)
		}

		for _, d := range solverDirections {
			next := current.add(d)
			if !s.m.InBound(next.X, next.Y) || s.m.cells[next.X][next.Y] == CellWall {
				continue
			}

			tentative := s.dist[current.X][current.Y] + 1
			if tentative >= s.dist[next.X][next.Y] {
				continue
			}
			s.dist[next.X][next.Y] = tentative
			s.prev[next] = current
			open.push(s.entry(next, tentative+heuristic(next)))
		}
	}

	return Path{}
}

func (s *search) entry(p Point, priority int) queued {
	s.seq++
	return queued{point: p, priority: priority, seq: s.seq}
}
