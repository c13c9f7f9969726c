// Package bellmanford implements single-source, all-goals search that
// tolerates negative edge costs and detects negative cycles.
//
// Algorithm:
//
//  1. dist[start] = 0; every other node is implicitly +Inf.
//  2. Up to |V| rounds: relax every edge of the graph, visiting nodes in
//     All() order and edges in declaration order. A round that improves
//     nothing ends the loop early; the remaining rounds could not change
//     anything either.
//  3. Verification pass: if any edge can still be relaxed, a negative cycle
//     is reachable from start and the query fails with a
//     *pathfinding.NegativeCycleError naming that edge's endpoints.
//
// Unreached nodes are simply absent from the result.
//
// Complexity: O(V·E) time, O(V) space.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Pathfinder answers all-goals queries with Bellman-Ford.
type Pathfinder struct {
	network core.Network
	options pathfinding.Options
}

var _ pathfinding.MultiPathfinder = (*Pathfinder)(nil)

// New returns a Bellman-Ford search over n. Panics if n is nil.
func New(n core.Network, opts ...pathfinding.Option) *Pathfinder {
	if n == nil {
		panic("bellmanford: nil network")
	}

	return &Pathfinder{network: n, options: pathfinding.Configure(opts...)}
}

// From returns one cheapest path per node reachable from start, start excluded.
func (p *Pathfinder) From(start string) (map[string][]string, error) {
	_, prev, err := p.Tree(start)
	if err != nil {
		return nil, err
	}

	return pathfinding.Paths(start, prev)
}

// Tree returns the converged distance and predecessor maps from start.
func (p *Pathfinder) Tree(start string) (dist map[string]float64, prev map[string]string, err error) {
	if !p.network.Has(start) {
		return nil, nil, pathfinding.NonExistingStart(start)
	}

	r := &runner{
		n:       p.network,
		options: p.options,
		nodes:   p.network.All(),
		dist:    map[string]float64{start: 0},
		prev:    make(map[string]string),
	}
	if err = r.converge(); err != nil {
		return nil, nil, err
	}
	if err = r.verify(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one query.
type runner struct {
	n       core.Network
	options pathfinding.Options
	nodes   []string
	dist    map[string]float64 // absent means +Inf
	prev    map[string]string
}

func (r *runner) distance(node string) float64 {
	if d, ok := r.dist[node]; ok {
		return d
	}

	return math.Inf(1)
}

// converge runs at most |V| relaxation rounds.
func (r *runner) converge() error {
	for round := len(r.nodes); round > 0; round-- {
		if err := r.options.Interrupted(); err != nil {
			return err
		}
		changed := false
		for _, from := range r.nodes {
			d := r.distance(from)
			if math.IsInf(d, 1) {
				continue
			}
			r.options.Expand(from)
			for _, to := range r.n.NeighboursOf(from) {
				w, err := r.n.MovementCostBetween(from, to)
				if err != nil {
					return fmt.Errorf("bellmanford: relaxing %s→%s: %w", from, to, err)
				}
				if d+w < r.distance(to) {
					r.dist[to] = d + w
					r.prev[to] = from
					changed = true
				}
			}
		}
		if !changed {
			return nil
		}
	}

	return nil
}

// verify fails on the first edge that can still be relaxed.
func (r *runner) verify() error {
	for _, from := range r.nodes {
		d := r.distance(from)
		if math.IsInf(d, 1) {
			continue
		}
		for _, to := range r.n.NeighboursOf(from) {
			w, err := r.n.MovementCostBetween(from, to)
			if err != nil {
				return fmt.Errorf("bellmanford: verifying %s→%s: %w", from, to, err)
			}
			if d+w < r.distance(to) {
				return pathfinding.NegativeCycle(from, to)
			}
		}
	}

	return nil
}
