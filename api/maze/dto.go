// Package mazeapi exposes maze generation and solving over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// GenerateRequest asks for a new maze.
type GenerateRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Width     int    `json:"width" binding:"required"`
	Height    int    `json:"height" binding:"required"`
}

// SolveRequest asks for a route between two "x,y" points.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Algorithm string    `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Rows      []string  `json:"rows,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SolveResponse carries the route and the maze drawn with it.
type SolveResponse struct {
	Found  bool      `json:"found"`
	Length int       `json:"length"`
	Path   maze.Path `json:"path"`
	Rows   []string  `json:"rows"`
	Cached bool      `json:"cached"`
}

func newMazeResponse(r *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        r.ID.String(),
		OwnerID:   r.OwnerID.String(),
		Algorithm: r.Algorithm,
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		Rows:      r.Rows,
		CreatedAt: r.CreatedAt,
	}
}

func newSolveResponse(s *dmn.Solution) *SolveResponse {
	path := s.Path
	if path == nil {
		path = maze.Path{}
	}
	return &SolveResponse{
		Found:  path.Found(),
		Length: path.Steps(),
		Path:   path,
		Rows:   s.Rows,
		Cached: s.Cached,
	}
}
