package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":solve_lock"

// RedisSolutionCache keeps solved paths in Redis with a TTL and hands out
// redsync mutexes so one process solves a given route at a time.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (i.SolutionCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("solution ttl must be positive, got %d", ttlSeconds)
	}

	c := &RedisSolutionCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the path stored under key.
func (c *RedisSolutionCache) Get(ctx context.Context, key string) (maze.Path, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	path := maze.Path{}
	if err := json.Unmarshal(raw, &path); err != nil {
		return nil, false, fmt.Errorf("decoding cached path %s: %w", key, err)
	}
	return path, true, nil
}

// Set stores path under key for the configured TTL.
func (c *RedisSolutionCache) Set(ctx context.Context, key string, path maze.Path) error {
	if path == nil {
		path = maze.Path{}
	}
	raw, err := json.Marshal(path)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Lock acquires the solve mutex for key.
func (c *RedisSolutionCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
