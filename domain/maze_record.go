package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/mazeio"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound = errors.New("maze not found")
	ErrUserNotFound = errors.New("user not found")
	ErrUserConflict = errors.New("username conflict")
)

// MazeRecord is a generated maze as stored by the service.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	OwnerID   uuid.UUID `bson:"ownerId" json:"ownerId"`
	Algorithm string    `bson:"algorithm" json:"algorithm"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Seed      int64     `bson:"seed" json:"seed"`
	Rows      []string  `bson:"rows" json:"rows"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// MazeRecordConfig holds the parameters a MazeRecord is built from.
type MazeRecordConfig struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Algorithm string
	Width     int
	Height    int
	Seed      int64
	Maze      *maze.Maze
}

// NewMazeRecord snapshots the maze in text form.
func NewMazeRecord(config MazeRecordConfig) *MazeRecord {
	return &MazeRecord{
		ID:        config.ID,
		OwnerID:   config.OwnerID,
		Algorithm: config.Algorithm,
		Width:     config.Width,
		Height:    config.Height,
		Seed:      config.Seed,
		Rows:      mazeio.EncodeRows(config.Maze, nil),
		CreatedAt: time.Now().UTC(),
	}
}

// Maze rebuilds the stored grid.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	return mazeio.DecodeRows(r.Rows)
}
