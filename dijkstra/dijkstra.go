package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Single answers single-goal queries with early termination.
type Single struct {
	network core.Network
	options pathfinding.Options
}

// Multi answers all-goals queries.
type Multi struct {
	network core.Network
	options pathfinding.Options
}

var (
	_ pathfinding.SinglePathfinder = (*Single)(nil)
	_ pathfinding.MultiPathfinder  = (*Multi)(nil)
)

// NewSingle returns a single-goal Dijkstra search over n. Panics if n is nil.
func NewSingle(n core.Network, opts ...pathfinding.Option) *Single {
	if n == nil {
		panic("dijkstra: nil network")
	}

	return &Single{network: n, options: pathfinding.Configure(opts...)}
}

// NewMulti returns an all-goals Dijkstra search over n. Panics if n is nil.
func NewMulti(n core.Network, opts ...pathfinding.Option) *Multi {
	if n == nil {
		panic("dijkstra: nil network")
	}

	return &Multi{network: n, options: pathfinding.Configure(opts...)}
}

// Between returns the cheapest path from start to goal, both inclusive.
//
// Preconditions (in order):
//  1. start must exist (pathfinding.ErrNonExistingStart).
//  2. goal must exist (pathfinding.ErrNoSuchPath).
func (s *Single) Between(start, goal string) ([]string, error) {
	// 1) Validate endpoints before any traversal.
	if !s.network.Has(start) {
		return nil, pathfinding.NonExistingStart(start)
	}
	if !s.network.Has(goal) {
		return nil, pathfinding.NoSuchPath(start, goal)
	}

	// 2) Search until goal is dequeued.
	r := newRunner(s.network, s.options)
	r.goal, r.hasGoal = goal, true
	r.init(start)
	reached, err := r.process()
	if err != nil {
		return nil, err
	}
	if !reached {
		return nil, pathfinding.NoSuchPath(start, goal)
	}

	// 3) Rebuild the path.
	return pathfinding.Retrace(start, goal, r.prev)
}

// From returns one cheapest path per node reachable from start, start excluded.
// Unreachable nodes are simply absent.
func (m *Multi) From(start string) (map[string][]string, error) {
	_, prev, err := m.Tree(start)
	if err != nil {
		return nil, err
	}

	return pathfinding.Paths(start, prev)
}

// Tree returns the distance and predecessor maps of a full search from start.
// dist holds every reached node (start at 0); prev has no entry for start.
func (m *Multi) Tree(start string) (dist map[string]float64, prev map[string]string, err error) {
	if !m.network.Has(start) {
		return nil, nil, pathfinding.NonExistingStart(start)
	}
	r := newRunner(m.network, m.options)
	r.init(start)
	if _, err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	n       core.Network          // The input graph; read-only.
	options pathfinding.Options   // Cancellation, hooks and cost bound.
	dist    map[string]float64    // Best known distance from start; absent means +Inf.
	prev    map[string]string     // Predecessor on the best known path.
	visited map[string]bool       // Closed set: nodes already expanded.
	pq      *pathfinding.Frontier // Min-heap keyed by distance.
	goal    string                // Early-exit target, if hasGoal.
	hasGoal bool
}

func newRunner(n core.Network, options pathfinding.Options) *runner {
	return &runner{
		n:       n,
		options: options,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
		pq:      pathfinding.NewFrontier(16),
	}
}

// init seeds the frontier with start at distance zero.
func (r *runner) init(start string) {
	r.dist[start] = 0
	r.pq.Push(start, 0)
}

// process is the core loop. It returns true once the goal is dequeued.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The goal is dequeued.
//   - The minimum distance in the heap exceeds MaxCost.
//   - The context is done.
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		if err := r.options.Interrupted(); err != nil {
			return false, err
		}

		// 1) Pop the closest node; skip stale entries of expanded nodes.
		u, d := r.pq.Pop()
		if r.visited[u] {
			continue
		}

		// 2) Nothing beyond the cost bound gets expanded.
		if d > r.options.MaxCost {
			break
		}
		r.visited[u] = true

		// 3) Early exit for single-goal queries.
		if r.hasGoal && u == r.goal {
			return true, nil
		}

		// 4) Relax outgoing edges.
		r.options.Expand(u)
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax improves the distance of every unexpanded neighbour of u reachable more cheaply through u.
func (r *runner) relax(u string) error {
	for _, v := range r.n.NeighboursOf(u) {
		if r.visited[v] {
			continue
		}
		w, err := r.n.MovementCostBetween(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: relaxing %s→%s: %w", u, v, err)
		}
		alt := r.dist[u] + w
		if alt > r.options.MaxCost {
			continue
		}
		if old, seen := r.dist[v]; seen && alt >= old {
			continue
		}
		r.dist[v] = alt
		r.prev[v] = u
		r.pq.Push(v, alt)
	}

	return nil
}
