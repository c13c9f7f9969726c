package pathfinding

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/heuristic"
)

// SinglePathfinder answers single-source, single-goal queries.
type SinglePathfinder interface {
	// Between returns the nodes from start to goal, both inclusive.
	Between(start, goal string) ([]string, error)
}

// MultiPathfinder answers single-source, all-goals queries.
type MultiPathfinder interface {
	// From returns one path per node reachable from start, excluding start.
	From(start string) (map[string][]string, error)
}

// Pathfinder answers both kinds of query.
type Pathfinder interface {
	SinglePathfinder
	MultiPathfinder
}

// ShortestPathForest is a precomputed next-hop table.
type ShortestPathForest interface {
	// NextStepOnTheRoadBetween returns the node after start on the best path to goal.
	NextStepOnTheRoadBetween(start, goal string) (string, error)
}

// Indexer precomputes all-pairs results. Both products are cached after first use.
type Indexer interface {
	AllShortestPaths() (ShortestPathForest, error)
	Heuristic() (heuristic.Heuristic, error)
}

// Options configures a search.
type Options struct {
	// Ctx is checked once per dequeue, relaxation round or indexing step.
	Ctx context.Context

	// OnExpand, if set, is called with every node whose neighbours are examined.
	OnExpand func(node string)

	// MaxCost bounds exploration: nodes that cost more to reach are not expanded.
	MaxCost float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a background context, no hook and no cost bound.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.Inf(1),
	}
}

// Configure applies opts on top of DefaultOptions.
func Configure(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets the cancellation context. Panics if ctx is nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("pathfinding: WithContext(nil)")
	}

	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithOnExpand installs an expansion hook. Panics if fn is nil.
func WithOnExpand(fn func(node string)) Option {
	if fn == nil {
		panic("pathfinding: WithOnExpand(nil)")
	}

	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithMaxCost bounds exploration to nodes reachable within c. Panics if c is NaN.
func WithMaxCost(c float64) Option {
	if math.IsNaN(c) {
		panic("pathfinding: WithMaxCost(NaN)")
	}

	return func(o *Options) {
		o.MaxCost = c
	}
}

// Interrupted returns a wrapped context error once the search must stop.
func (o Options) Interrupted() error {
	if err := o.Ctx.Err(); err != nil {
		return fmt.Errorf("pathfinding: search interrupted: %w", err)
	}

	return nil
}

// Expand reports node to the expansion hook, if any.
func (o Options) Expand(node string) {
	if o.OnExpand != nil {
		o.OnExpand(node)
	}
}
