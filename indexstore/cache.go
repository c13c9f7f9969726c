package indexstore

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/floydwarshall"
)

// CacheOptions configures a Cache.
type CacheOptions struct {
	// Logger receives builds and stale loads. Defaults to a no-op logger.
	Logger *zap.Logger

	// Workers is passed to floydwarshall.WithWorkers on every build.
	Workers int
}

// CacheOption mutates CacheOptions.
type CacheOption func(*CacheOptions)

// DefaultCacheOptions returns a no-op logger and one worker.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{Logger: zap.NewNop(), Workers: 1}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *zap.Logger) CacheOption {
	if l == nil {
		panic("indexstore: WithLogger(nil)")
	}

	return func(o *CacheOptions) {
		o.Logger = l
	}
}

// WithWorkers sets the build parallelism. Panics if n < 1.
func WithWorkers(n int) CacheOption {
	if n < 1 {
		panic("indexstore: WithWorkers needs at least one worker")
	}

	return func(o *CacheOptions) {
		o.Workers = n
	}
}

// Cache loads indexes from a Store and builds the missing ones.
type Cache struct {
	store   Store
	options CacheOptions
	group   singleflight.Group
}

// NewCache returns a Cache over store. Panics if store is nil.
func NewCache(store Store, opts ...CacheOption) *Cache {
	if store == nil {
		panic("indexstore: nil store")
	}
	o := DefaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache{store: store, options: o}
}

// LoadOrBuild returns the index stored under name if it covers exactly the
// nodes of n, in n.All() order. Otherwise it indexes n, saves the result
// under name and returns it. built reports which of the two happened.
func (c *Cache) LoadOrBuild(ctx context.Context, name string, n core.Network) (idx *floydwarshall.Index, built bool, err error) {
	type result struct {
		idx   *floydwarshall.Index
		built bool
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		log := c.options.Logger.With(zap.String("index", name))

		// 1) Reuse a stored index of the same node set.
		stored, err := c.store.Load(ctx, name)
		switch {
		case err == nil && slices.Equal(stored.Labels(), n.All()):
			return result{idx: stored}, nil
		case err == nil:
			log.Info("stored index is stale, rebuilding")
		case errors.Is(err, ErrNotFound):
		default:
			return nil, err
		}

		// 2) Build and save.
		began := time.Now()
		fresh, err := floydwarshall.Build(n,
			floydwarshall.WithContext(ctx),
			floydwarshall.WithWorkers(c.options.Workers),
		)
		if err != nil {
			return nil, err
		}
		if err := c.store.Save(ctx, name, fresh); err != nil {
			return nil, err
		}
		log.Info("index built",
			zap.Int("nodes", fresh.Len()),
			zap.Bool("negative_cycle", fresh.NegativeCycle()),
			zap.Duration("took", time.Since(began)),
		)

		return result{idx: fresh, built: true}, nil
	})
	if err != nil {
		return nil, false, err
	}
	r := v.(result)

	return r.idx, r.built, nil
}
