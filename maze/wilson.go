package maze

// WilsonGenerator carves mazes with Wilson's loop-erased random walk, which
// samples uniformly among all spanning trees of the lattice.
type WilsonGenerator struct {
	random Random
}

// NewWilsonGenerator returns a Wilson generator drawing from r.
// A nil r uses a time-seeded source.
func NewWilsonGenerator(r Random) *WilsonGenerator {
	return &WilsonGenerator{random: orDefault(r)}
}

// Generate roots the tree at a random cell, then walks from every cell
// outside the tree, in row-major order, until the walk hits the tree.
func (g *WilsonGenerator) Generate(width, height int) (*Maze, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}

	m := newWalled(gridSize(width, height))
	inTree := newVisited(width, height)

	root := g.randomCell(width, height)
	inTree[root.X][root.Y] = true
	m.carve(toGrid(root))

	for cx := 0; cx < width; cx++ {
		for cy := 0; cy < height; cy++ {
			start := Point{X: cx, Y: cy}
			if inTree[start.X][start.Y] {
				continue
			}
			exits := g.randomWalk(start, inTree, width, height)
			g.joinWalk(m, start, exits, inTree)
		}
	}

	return m, nil
}

// randomCell picks a uniform lattice cell.
func (g *WilsonGenerator) randomCell(width, height int) Point {
	idx := g.random.Intn(width * height)
	return Point{X: idx / height, Y: idx % height}
}

// randomWalk wanders from start until it steps onto the tree and returns the
// last exit taken from every cell it passed through. Overwriting earlier
// exits is what erases loops.
func (g *WilsonGenerator) randomWalk(start Point, inTree [][]bool, width, height int) map[Point]Point {
	exits := make(map[Point]Point)
	cell := start
	for !inTree[cell.X][cell.Y] {
		neighbours := latticeNeighbours(cell, width, height)
		next := neighbours[g.random.Intn(len(neighbours))]
		exits[cell] = next
		cell = next
	}
	return exits
}

// joinWalk follows the last exits from start and carves the loop-free path
// into the maze, adding each cell to the tree.
func (g *WilsonGenerator) joinWalk(m *Maze, start Point, exits map[Point]Point, inTree [][]bool) {
	cell := start
	for !inTree[cell.X][cell.Y] {
		next := exits[cell]
		inTree[cell.X][cell.Y] = true
		m.carve(toGrid(cell))
		m.carve(wallBetween(cell, next))
		cell = next
	}
}

// latticeNeighbours returns every in-lattice neighbour of cell.
func latticeNeighbours(cell Point, width, height int) []Point {
	neighbours := make([]Point, 0, len(latticeDirections))
	for _, d := range latticeDirections {
		n := cell.add(d)
		if inLattice(n, width, height) {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}
