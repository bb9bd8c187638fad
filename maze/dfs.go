package maze

// DFSGenerator carves mazes with a randomized depth-first search driven by an
// explicit stack, so large lattices do not exhaust the goroutine stack.
type DFSGenerator struct {
	random Random
}

// NewDFSGenerator returns a depth-first generator drawing from r.
// A nil r uses a time-seeded source.
func NewDFSGenerator(r Random) *DFSGenerator {
	return &DFSGenerator{random: orDefault(r)}
}

// Generate carves a maze starting from cell (0,0).
func (g *DFSGenerator) Generate(width, height int) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	m := newWalled(gridSize(width, height))
	visited := newVisited(width, height)

	start := Point{X: 0, Y: 0}
	visited[start.X][start.Y] = true
	m.carve(toGrid(start))
	stack := []Point{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		neighbours := unvisitedNeighbours(current, visited, width, height)
		if len(neighbours) == 0 {
			stack = stack[:len(stack)-1] // backtrack
			continue
		}

		next := neighbours[g.random.Intn(len(neighbours))]
		visited[next.X][next.Y] = true
		m.carve(wallBetween(current, next))
		m.carve(toGrid(next))
		stack = append(stack, next)
	}

	return m, nil
}
