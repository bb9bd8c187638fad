package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/mazeio"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultCachePrefix  = "maze"
	defaultMaxDimension = 100
	solutionKeyFmt      = "%s:solution:%s:%s:%d_%d:%d_%d"
)

var (
	ErrInvalidDimensions = errors.New("width and height must be positive")
	ErrDimensionTooLarge = errors.New("maze dimension exceeds the allowed maximum")
	ErrPointOutOfBounds  = errors.New("point is outside the maze")
	ErrPointOnWall       = errors.New("point is on a wall")
	ErrMazeNotFound      = dmn.ErrMazeNotFound
)

// MazeOptions tunes a MazeService. Zero values fall back to defaults.
type MazeOptions struct {
	CachePrefix  string
	MaxDimension int
	SeedFunc     func() int64 // Seed source for generation; defaults to the clock
}

// MazeService generates mazes, stores them and solves routes through them.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.SolutionCache
	logger i.Logger
	opts   *MazeOptions
}

// NewMazeService creates a MazeService. The cache may be nil, in which case
// every solve runs the solver.
func NewMazeService(repo i.MazeRepo, cache i.SolutionCache, logger i.Logger, opts *MazeOptions) (i.MazeManager, error) {
	if repo == nil {
		return nil, errors.New("maze repository is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &MazeOptions{}
	}
	if opts.CachePrefix == "" {
		opts.CachePrefix = defaultCachePrefix
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}
	if opts.SeedFunc == nil {
		opts.SeedFunc = func() int64 { return time.Now().UnixNano() }
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate carves a new maze for ownerID and persists it.
func (s *MazeService) Generate(ownerID uuid.UUID, algorithm string, width, height int) (*dmn.MazeRecord, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > s.opts.MaxDimension || height > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: got %dx%d, max %d", ErrDimensionTooLarge, width, height, s.opts.MaxDimension)
	}

	algorithm = normalizeAlgorithm(algorithm)

	// A *rand.Rand is not safe for concurrent use; each call gets its own.
	seed := s.opts.SeedFunc()
	generator, err := maze.ChooseGenerator(algorithm, maze.NewRandom(seed))
	if err != nil {
		return nil, err
	}

	m, err := generator.Generate(width, height)
	if err != nil {
		return nil, err
	}

	record := dmn.NewMazeRecord(dmn.MazeRecordConfig{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Algorithm: algorithm,
		Width:     width,
		Height:    height,
		Seed:      seed,
		Maze:      m,
	})

	if err := s.repo.Save(record); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to save maze: %s", err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze generated: ID=%s Algorithm=%s Size=%dx%d Seed=%d", record.ID, algorithm, width, height, seed))
	return record, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(id)
}

// ByOwner returns the mazes generated by ownerID.
func (s *MazeService) ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error) {
	return s.repo.ByOwner(ownerID)
}

// Solve finds a route between two open cells of a stored maze. A maze with no
// route yields a Solution with an empty path.
func (s *MazeService) Solve(ctx context.Context, mazeID uuid.UUID, algorithm string, start, end maze.Point) (*dmn.Solution, error) {
	algorithm = normalizeAlgorithm(algorithm)
	solver, err := maze.ChooseSolver(algorithm)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.ByID(mazeID)
	if err != nil {
		return nil, err
	}

	m, err := record.Maze()
	if err != nil {
		return nil, fmt.Errorf("stored maze %s is corrupt: %w", mazeID, err)
	}

	if err := validatePoint(m, start); err != nil {
		return nil, fmt.Errorf("start %s: %w", start, err)
	}
	if err := validatePoint(m, end); err != nil {
		return nil, fmt.Errorf("end %s: %w", end, err)
	}

	key := s.solutionKey(mazeID, algorithm, start, end)
	path, cached := s.cachedPath(ctx, key)
	if !cached {
		path, cached = s.solveLocked(ctx, key, solver, m, start, end)
	}

	return &dmn.Solution{
		MazeID:    mazeID,
		Algorithm: algorithm,
		Start:     start,
		End:       end,
		Path:      path,
		Rows:      mazeio.EncodeRows(m, path),
		Cached:    cached,
	}, nil
}

// solveLocked runs the solver while holding the cache lock for key, so
// concurrent requests for the same route solve it once.
func (s *MazeService) solveLocked(ctx context.Context, key string, solver maze.Solver, m *maze.Maze, start, end maze.Point) (maze.Path, bool) {
	if s.cache == nil {
		return solver.Solve(m, start, end), false
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Solving without lock: %s", err))
	} else {
		defer unlock()
		if path, ok := s.cachedPath(ctx, key); ok {
			return path, true
		}
	}

	path := solver.Solve(m, start, end)
	if err := s.cache.Set(ctx, key, path); err != nil {
		s.logger.Warning(fmt.Sprintf("Failed to cache solution: %s", err))
	}

	s.logger.Info(fmt.Sprintf("Maze solved: Key=%s Found=%t Steps=%d", key, path.Found(), path.Steps()))
	return path, false
}

func (s *MazeService) cachedPath(ctx context.Context, key string) (maze.Path, bool) {
	if s.cache == nil {
		return nil, false
	}

	path, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Solution cache read failed: %s", err))
		return nil, false
	}
	return path, ok
}

func (s *MazeService) solutionKey(mazeID uuid.UUID, algorithm string, start, end maze.Point) string {
	return fmt.Sprintf(solutionKeyFmt, s.opts.CachePrefix, mazeID, algorithm, start.X, start.Y, end.X, end.Y)
}

func validatePoint(m *maze.Maze, p maze.Point) error {
	if !m.InBound(p.X, p.Y) {
		return ErrPointOutOfBounds
	}
	if m.Cell(p.X, p.Y) == maze.CellWall {
		return ErrPointOnWall
	}
	return nil
}

func normalizeAlgorithm(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
