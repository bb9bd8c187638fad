package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

type fakeMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	saveErr error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (r *fakeMazeRepo) Save(record *dmn.MazeRecord) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeMazeRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return record, nil
}

func (r *fakeMazeRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error) {
	var out []*dmn.MazeRecord
	for _, record := range r.records {
		if record.OwnerID == ownerID {
			out = append(out, record)
		}
	}
	return out, nil
}

type fakeCache struct {
	mu      sync.Mutex
	paths   map[string]maze.Path
	getErr  error
	lockErr error
	sets    int
	locks   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{paths: map[string]maze.Path{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (maze.Path, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.paths[key]
	return p, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, path maze.Path) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.paths[key] = path
	return nil
}

func (c *fakeCache) Lock(_ context.Context, _ string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() {}, nil
}

type fakeLogger struct {
	mu       sync.Mutex
	infos    []string
	warnings []string
	errors   []string
}

func (l *fakeLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *fakeLogger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *fakeLogger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

type fakeUserRepo struct {
	users map[string]*dmn.User
}

func (r *fakeUserRepo) Save(user *dmn.User) error {
	if _, ok := r.users[user.Username]; ok {
		return dmn.ErrUserConflict
	}
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

var errFakeToken = errors.New("token failure")

type fakeTokenizer struct {
	claims map[string]interface{}
	fail   bool
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	if t.fail {
		return "", errFakeToken
	}
	t.claims = claims
	return "signed-token", nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
