package i

import (
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if there is no such user.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if there is no such user.
	ByUsername(username string) (*dmn.User, error)
}

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a maze record.
	Save(record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its ID.
	// Returns dmn.ErrMazeNotFound if there is no such maze.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)

	// ByOwner lists the mazes generated by a user, newest first.
	ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error)
}
