package astar

import (
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/heuristic"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Pathfinder answers single-goal queries with A*.
type Pathfinder struct {
	h       heuristic.Heuristic
	env     core.Environment
	options pathfinding.Options
}

var _ pathfinding.SinglePathfinder = (*Pathfinder)(nil)

// New returns an A* search over h.Environment(). Panics if h is nil.
func New(h heuristic.Heuristic, opts ...pathfinding.Option) *Pathfinder {
	if h == nil {
		panic("astar: nil heuristic")
	}

	return &Pathfinder{h: h, env: h.Environment(), options: pathfinding.Configure(opts...)}
}

// Heuristic returns the heuristic guiding the search.
func (p *Pathfinder) Heuristic() heuristic.Heuristic { return p.h }

// Between returns the path from start to goal, both inclusive.
//
// Preconditions (in order):
//  1. start must exist (pathfinding.ErrNonExistingStart).
//  2. goal must exist (pathfinding.ErrNoSuchPath).
func (p *Pathfinder) Between(start, goal string) ([]string, error) {
	if !p.env.Has(start) {
		return nil, pathfinding.NonExistingStart(start)
	}
	if !p.env.Has(goal) {
		return nil, pathfinding.NoSuchPath(start, goal)
	}

	r := &runner{
		p:       p,
		goal:    goal,
		g:       map[string]float64{start: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
		pq:      pathfinding.NewFrontier(16),
	}
	r.pq.Push(start, p.h.Estimate(start, goal))

	reached, err := r.process()
	if err != nil {
		return nil, err
	}
	if !reached {
		return nil, pathfinding.NoSuchPath(start, goal)
	}

	return pathfinding.Retrace(start, goal, r.prev)
}

// runner holds the mutable state of one query.
type runner struct {
	p       *Pathfinder
	goal    string
	g       map[string]float64    // best known cost from start
	prev    map[string]string     // predecessor on that path
	visited map[string]bool       // closed set
	pq      *pathfinding.Frontier // keyed by g + h
}

func (r *runner) process() (bool, error) {
	opts := r.p.options
	for r.pq.Len() > 0 {
		if err := opts.Interrupted(); err != nil {
			return false, err
		}

		// 1) Lowest g+h first; stale entries of closed nodes are skipped.
		u, _ := r.pq.Pop()
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// 2) Goal dequeued: the path to it is settled.
		if u == r.goal {
			return true, nil
		}

		// 3) Relax.
		opts.Expand(u)
		if err := r.relax(u); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (r *runner) relax(u string) error {
	env, opts := r.p.env, r.p.options
	for _, v := range env.NeighboursOf(u) {
		if r.visited[v] {
			continue
		}
		w, err := env.MovementCostBetween(u, v)
		if err != nil {
			return fmt.Errorf("astar: relaxing %s→%s: %w", u, v, err)
		}
		alt := r.g[u] + w
		if alt > opts.MaxCost {
			continue
		}
		if old, seen := r.g[v]; seen && alt >= old {
			continue
		}
		r.g[v] = alt
		r.prev[v] = u
		r.pq.Push(v, alt+r.p.h.Estimate(v, r.goal))
	}

	return nil
}
