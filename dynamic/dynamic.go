package dynamic

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/astar"
	"github.com/katalvlaran/pathfinder/bellmanford"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/dijkstra"
	"github.com/katalvlaran/pathfinder/heuristic"
	"github.com/katalvlaran/pathfinder/metric"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Algorithm names reported by Strategy.
const (
	AStar       = "astar"
	Dijkstra    = "dijkstra"
	BellmanFord = "bellman-ford"
)

// Strategy names the algorithms behind each kind of query.
type Strategy struct {
	Single string
	Multi  string
}

// String renders "single/multi".
func (s Strategy) String() string { return s.Single + "/" + s.Multi }

// Options configures strategy selection.
type Options struct {
	// Metric backs the default heuristic. Defaults to 2D Euclidean.
	Metric core.Metric

	// Logger receives the selected strategy at debug level. Defaults to a no-op logger.
	Logger *zap.Logger

	// Search is passed to every underlying algorithm.
	Search []pathfinding.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 2D Euclidean, a no-op logger and default search options.
func DefaultOptions() Options {
	return Options{
		Metric: metric.Euclidean(2),
		Logger: zap.NewNop(),
	}
}

// WithMetric sets the metric of the default heuristic. Panics if m is nil.
func WithMetric(m core.Metric) Option {
	if m == nil {
		panic("dynamic: WithMetric(nil)")
	}

	return func(o *Options) {
		o.Metric = m
	}
}

// WithLogger sets the logger. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dynamic: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithSearchOptions forwards opts to the selected algorithms.
func WithSearchOptions(opts ...pathfinding.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// Pathfinder delegates to the algorithms chosen for its graph.
type Pathfinder struct {
	single   pathfinding.SinglePathfinder
	multi    pathfinding.MultiPathfinder
	strategy Strategy
}

var _ pathfinding.Pathfinder = (*Pathfinder)(nil)

// New selects algorithms for n. Panics if n is nil.
func New(n core.Network, opts ...Option) *Pathfinder {
	if n == nil {
		panic("dynamic: nil network")
	}

	return choose(n, nil, configure(opts))
}

// WithHeuristic selects algorithms for h.Environment(), guiding A* with h
// instead of the default heuristic. Panics if h is nil.
func WithHeuristic(h heuristic.Heuristic, opts ...Option) *Pathfinder {
	if h == nil {
		panic("dynamic: nil heuristic")
	}

	return choose(h.Environment(), h, configure(opts))
}

func configure(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func choose(n core.Network, h heuristic.Heuristic, o Options) *Pathfinder {
	traits := n.Traits()
	custom := h != nil
	p := &Pathfinder{}

	switch {
	case traits.Has(core.Geometric), traits.Has(core.NegativeEdges):
		// View returns geometric environments unchanged and places
		// everything else at the origin, where every estimate is 0.
		if h == nil {
			h = heuristic.Safely(heuristic.Direct(o.Metric, core.View(n)))
		}
		p.single = astar.New(h, o.Search...)
		p.strategy.Single = AStar
	default:
		p.single = dijkstra.NewSingle(n, o.Search...)
		p.strategy.Single = Dijkstra
	}

	if traits.Has(core.NegativeEdges) {
		p.multi = bellmanford.New(n, o.Search...)
		p.strategy.Multi = BellmanFord
	} else {
		p.multi = dijkstra.NewMulti(n, o.Search...)
		p.strategy.Multi = Dijkstra
	}

	o.Logger.Debug("pathfinder strategy selected",
		zap.Stringer("traits", traits),
		zap.String("single", p.strategy.Single),
		zap.String("multi", p.strategy.Multi),
		zap.Bool("custom_heuristic", custom && p.strategy.Single == AStar),
	)

	return p
}

// Strategy reports the selected algorithms.
func (p *Pathfinder) Strategy() Strategy { return p.strategy }

// Between returns the path from start to goal, both inclusive.
func (p *Pathfinder) Between(start, goal string) ([]string, error) {
	return p.single.Between(start, goal)
}

// From returns one path per node reachable from start, excluding start.
func (p *Pathfinder) From(start string) (map[string][]string, error) {
	return p.multi.From(start)
}
