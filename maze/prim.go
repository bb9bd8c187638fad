package maze

// PrimGenerator carves mazes as a minimum spanning tree over randomly
// weighted lattice edges. Compared to DFSGenerator it branches more evenly
// and produces shorter corridors.
type PrimGenerator struct {
	random Random
}

// NewPrimGenerator returns a Prim generator drawing edge weights from r.
// A nil r uses a time-seeded source.
func NewPrimGenerator(r Random) *PrimGenerator {
	return &PrimGenerator{random: orDefault(r)}
}

// Generate carves a maze growing the tree from cell (0,0).
func (g *PrimGenerator) Generate(width, height int) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	m := newWalled(gridSize(width, height))
	visited := newVisited(width, height)
	edges := newFrontier(func(a, b Edge) bool { return CompareEdges(a, b) < 0 })

	start := Point{X: 0, Y: 0}
	visited[start.X][start.Y] = true
	m.carve(toGrid(start))
	g.pushEdges(edges, start, visited, width, height)

	for !edges.empty() {
		e := edges.pop()
		a, b := e.from(), e.to()

		var from, to Point
		switch {
		case visited[a.X][a.Y] && !visited[b.X][b.Y]:
			from, to = a, b
		case !visited[a.X][a.Y] && visited[b.X][b.Y]:
			from, to = b, a
		default:
			continue // stale edge, both ends already in the tree
		}

		visited[to.X][to.Y] = true
		m.carve(toGrid(to))
		m.carve(wallBetween(from, to))
		g.pushEdges(edges, to, visited, width, height)
	}

	return m, nil
}

// pushEdges queues an edge from cell to each unvisited neighbour, scanning
// up, down, left, right and drawing a fresh weight per edge.
func (g *PrimGenerator) pushEdges(edges *frontier[Edge], cell Point, visited [][]bool, width, height int) {
	for _, n := range unvisitedNeighbours(cell, visited, width, height) {
		edges.push(Edge{
			X1:     cell.X,
			Y1:     cell.Y,
			X2:     n.X,
			Y2:     n.Y,
			Weight: randomWeight(g.random),
		})
	}
}
