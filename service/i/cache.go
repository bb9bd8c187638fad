package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// SolutionCache stores solved paths keyed by maze, solver and endpoints.
type SolutionCache interface {
	// Get returns the cached path for key. The bool is false on a miss.
	Get(ctx context.Context, key string) (maze.Path, bool, error)

	// Set stores path under key.
	Set(ctx context.Context, key string, path maze.Path) error

	// Lock takes a distributed lock scoped to key. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
