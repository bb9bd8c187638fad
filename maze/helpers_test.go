package maze_test

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/require"
)

// constRandom always returns the same value, clamped to [0, n).
type constRandom int

func (c constRandom) Intn(n int) int {
	if int(c) >= n {
		return n - 1
	}
	return int(c)
}

// fromRows builds a maze where '#' is a wall and anything else is open.
func fromRows(t *testing.T, rows ...string) *maze.Maze {
	t.Helper()
	cells := make([][]maze.CellType, len(rows))
	for i, row := range rows {
		cells[i] = make([]maze.CellType, len(row))
		for j := range row {
			if row[j] == '#' {
				cells[i][j] = maze.CellWall
			} else {
				cells[i][j] = maze.CellPath
			}
		}
	}
	m, err := maze.New(cells)
	require.NoError(t, err)
	return m
}

// requirePerfect checks the generated grid is a spanning tree over the
// width x height lattice: solid border, open cell centres, closed corner
// posts, exactly w*h-1 carved walls and every open cell reachable.
func requirePerfect(t *testing.T, m *maze.Maze, width, height int) {
	t.Helper()
	require.Equal(t, 2*width+1, m.X())
	require.Equal(t, 2*height+1, m.Y())

	open, carvedWalls := 0, 0
	for x := 0; x < m.X(); x++ {
		for y := 0; y < m.Y(); y++ {
			border := x == 0 || y == 0 || x == m.X()-1 || y == m.Y()-1
			c := m.Cell(x, y)
			switch {
			case border:
				require.Equalf(t, maze.CellWall, c, "border cell (%d,%d) must be a wall", x, y)
			case x%2 == 1 && y%2 == 1:
				require.Equalf(t, maze.CellPath, c, "cell centre (%d,%d) must be open", x, y)
			case x%2 == 0 && y%2 == 0:
				require.Equalf(t, maze.CellWall, c, "corner post (%d,%d) must be a wall", x, y)
			case c == maze.CellPath:
				carvedWalls++
			}
			if c == maze.CellPath {
				open++
			}
		}
	}
	require.Equal(t, width*height-1, carvedWalls, "a spanning tree has exactly cells-1 edges")

	// Flood fill from (1,1) must reach every open cell.
	seen := map[maze.Point]bool{{X: 1, Y: 1}: true}
	queue := []maze.Point{{X: 1, Y: 1}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, n := range []maze.Point{{X: p.X + 1, Y: p.Y}, {X: p.X - 1, Y: p.Y}, {X: p.X, Y: p.Y + 1}, {X: p.X, Y: p.Y - 1}} {
			if m.IsPath(n) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	require.Equal(t, open, len(seen), "every open cell must be connected")
}

// requireValidPath checks that path runs from start to end through open,
// 4-adjacent cells.
func requireValidPath(t *testing.T, m *maze.Maze, path maze.Path, start, end maze.Point) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	for i, p := range path {
		require.Truef(t, m.IsPath(p), "point %v is not open", p)
		if i == 0 {
			continue
		}
		require.Equalf(t, 1, maze.Manhattan(path[i-1], p), "points %v and %v are not adjacent", path[i-1], p)
	}
}
