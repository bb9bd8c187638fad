package maze

// offset is a single 4-directional step.
type offset struct {
	dx, dy int
}

var (
	// latticeDirections is the order generators scan cell neighbours in.
	latticeDirections = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	// solverDirections is the order solvers expand grid neighbours in:
	// down, up, right, left.
	solverDirections = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// gridSize returns the grid rows and columns for a width x height cell lattice.
func gridSize(width, height int) (rows, cols int) {
	return 2*width + 1, 2*height + 1
}

// toGrid maps lattice cell (cx, cy) to its grid point (2cx+1, 2cy+1).
func toGrid(cell Point) Point {
	return Point{X: 2*cell.X + 1, Y: 2*cell.Y + 1}
}

// wallBetween returns the grid point separating two adjacent lattice cells.
func wallBetween(a, b Point) Point {
	ga, gb := toGrid(a), toGrid(b)
	return Point{X: (ga.X + gb.X) / 2, Y: (ga.Y + gb.Y) / 2}
}

// inLattice reports whether cell lies inside a width x height lattice.
func inLattice(cell Point, width, height int) bool {
	return cell.X >= 0 && cell.X < width && cell.Y >= 0 && cell.Y < height
}
