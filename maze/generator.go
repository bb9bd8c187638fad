package maze

import "fmt"

// Generator carves a perfect maze over a width x height cell lattice.
// The returned maze has 2*width+1 rows and 2*height+1 columns.
type Generator interface {
	Generate(width, height int) (*Maze, error)
}

// validateDimensions rejects non-positive lattice sizes.
func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// unvisitedNeighbours returns the lattice neighbours of cell not yet in
// visited, in latticeDirections order.
func unvisitedNeighbours(cell Point, visited [][]bool, width, height int) []Point {
	neighbours := make([]Point, 0, len(latticeDirections))
	for _, d := range latticeDirections {
		n := cell.add(d)
		if inLattice(n, width, height) && !visited[n.X][n.Y] {
			neighbours = append(neighbours, n)
		}
	}
	return neighbours
}

// newVisited allocates a width x height visited matrix.
func newVisited(width, height int) [][]bool {
	visited := make([][]bool, width)
	for i := range visited {
		visited[i] = make([]bool, height)
	}
	return visited
}
