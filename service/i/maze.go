package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeManager generates, stores and solves mazes.
type MazeManager interface {
	Generate(ownerID uuid.UUID, algorithm string, width, height int) (*dmn.MazeRecord, error)
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)
	ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error)
	Solve(ctx context.Context, mazeID uuid.UUID, algorithm string, start, end maze.Point) (*dmn.Solution, error)
}
