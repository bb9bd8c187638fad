/*
Package maze provides tools for creating and solving rectangular grid mazes.

A Maze is a grid of CellWall and CellPath cells. Its X dimension is the number
of rows and its Y dimension the number of columns, so a cell is addressed as
cells[x][y].

Generators carve perfect mazes (every pair of cells joined by exactly one
corridor) over a width x height cell lattice using randomized depth-first
search, randomized Prim, randomized Kruskal or Wilson's loop-erased random
walk. Cell (cx, cy) of the lattice lives at grid point (2cx+1, 2cy+1) and the
walls between cells sit at the grid midpoints, which gives a (2w+1) x (2h+1)
grid with a solid border.

Solvers find shortest 4-directional paths with Dijkstra or A*. Both return an
empty Path when the end cannot be reached.

All algorithms are synchronous and keep no state between calls. Randomness is
injected through the Random interface so tests can pin the outcome.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyGrid         = errors.New("maze: grid must have at least one row and one column")
	ErrNonRectangular    = errors.New("maze: all rows must have the same length")
	ErrInvalidDimensions = errors.New("maze: width and height must be positive integers")
	ErrInvalidPoint      = errors.New("maze: invalid point format")
	ErrUnknownAlgorithm  = errors.New("maze: no such algorithm")
)

// Maze is an immutable rectangular grid of cells.
type Maze struct {
	cells [][]CellType // cells[x][y]
	x     int          // Number of rows
	y     int          // Number of columns
}

// New builds a Maze from a rectangular grid. The input is deep-copied.
func New(cells [][]CellType) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, cols := len(cells), len(cells[0])
	grid := make([][]CellType, rows)
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrNonRectangular, i, len(row), cols)
		}
		grid[i] = make([]CellType, cols)
		copy(grid[i], row)
	}

	return &Maze{cells: grid, x: rows, y: cols}, nil
}

// newWalled returns a rows x cols maze with every cell set to CellWall.
// Generators carve into it before handing it out.
func newWalled(rows, cols int) *Maze {
	grid := make([][]CellType, rows)
	for i := range grid {
		grid[i] = make([]CellType, cols) // zero value is CellWall
	}
	return &Maze{cells: grid, x: rows, y: cols}
}

// X returns the number of rows.
func (m *Maze) X() int {
	return m.x
}

// Y returns the number of columns.
func (m *Maze) Y() int {
	return m.y
}

// Cell returns the cell at (x, y). Callers must check bounds with InBound.
func (m *Maze) Cell(x, y int) CellType {
	return m.cells[x][y]
}

// InBound reports whether (x, y) lies inside the grid.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.x && y >= 0 && y < m.y
}

// IsPath reports whether p is inside the grid and traversable.
func (m *Maze) IsPath(p Point) bool {
	return m.InBound(p.X, p.Y) && m.cells[p.X][p.Y] == CellPath
}

// Cells returns a copy of the underlying grid.
func (m *Maze) Cells() [][]CellType {
	out := make([][]CellType, m.x)
	for i, row := range m.cells {
		out[i] = make([]CellType, m.y)
		copy(out[i], row)
	}
	return out
}

// Equal reports whether both mazes have the same shape and cells.
func (m *Maze) Equal(other *Maze) bool {
	if other == nil || m.x != other.x || m.y != other.y {
		return false
	}
	for i := range m.cells {
		for j := range m.cells[i] {
			if m.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the maze with '#' for walls and ' ' for open cells,
// one line per row.
func (m *Maze) String() string {
	buf := make([]byte, 0, m.x*(m.y+1))
	for _, row := range m.cells {
		for _, c := range row {
			if c == CellWall {
				buf = append(buf, '#')
			} else {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// carve opens the cell at grid point p.
func (m *Maze) carve(p Point) {
	m.cells[p.X][p.Y] = CellPath
}
