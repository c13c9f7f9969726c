package indexstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/pathfinder/floydwarshall"
)

// RedisStore keeps snapshots in Redis, one string key per index.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps client. The store owns the client from now on.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// OpenRedis connects to the server named by a redis:// URL.
func OpenRedis(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("indexstore: %w", err)
	}

	return NewRedisStore(redis.NewClient(opts)), nil
}

// Key returns the Redis key an index named name is stored under.
func Key(name string) string {
	return "pathfinder:index:" + name
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, name string, idx *floydwarshall.Index) error {
	body, err := Encode(idx)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, Key(name), body, 0).Err(); err != nil {
		return fmt.Errorf("indexstore: save %q: %w", name, err)
	}

	return nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, name string) (*floydwarshall.Index, error) {
	body, err := s.client.Get(ctx, Key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("indexstore: load %q: %w", name, err)
	}

	return Decode(body)
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := s.client.Del(ctx, Key(name)).Result()
	if err != nil {
		return fmt.Errorf("indexstore: delete %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return nil
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
