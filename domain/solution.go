package domain

import (
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// Solution is a solved route through a stored maze.
type Solution struct {
	MazeID    uuid.UUID
	Algorithm string
	Start     maze.Point
	End       maze.Point
	Path      maze.Path
	Rows      []string // Maze text with the path drawn in
	Cached    bool     // Served from the solution cache
}
