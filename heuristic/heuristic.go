// Package heuristic estimates the remaining cost between two nodes of an
// Environment, for use by informed searches such as A*.
//
// The set of heuristics is closed; every value is one of four variants, each
// holding only the state it needs:
//
//	Direct(m, env)   – metric distance between the two nodes' positions.
//	Indexed(t, env)  – lookup in a precomputed distance table; +Inf for unknown pairs.
//	Safely(h)        – exact edge cost when the nodes are neighbours, else h.
//	Rebind(h, env)   – h's estimates, reported against a different environment.
//
// Variants nest freely: Safely(Rebind(Indexed(...), env)) is valid.
//
// Estimates are advisory. A* returns optimal paths only when the heuristic
// never overestimates; nothing here verifies that. Rebind in particular
// reuses estimates that were exact for an older graph and may mislead the
// search on the new one, trading guaranteed optimality for fewer expansions.
package heuristic

import (
	"math"

	"github.com/katalvlaran/pathfinder/core"
)

// Heuristic estimates the cost from start to goal inside Environment().
type Heuristic interface {
	// Estimate returns the estimated cost from start to goal.
	Estimate(start, goal string) float64

	// Environment returns the graph the heuristic answers for.
	Environment() core.Environment

	sealed()
}

// DistanceTable is a precomputed all-pairs distance source.
type DistanceTable interface {
	// Distance returns the shortest known distance and whether the pair is known.
	Distance(start, goal string) (float64, bool)
}

// Direct estimates with the metric distance between positions.
// Panics if m or env is nil.
func Direct(m core.Metric, env core.Environment) Heuristic {
	if m == nil || env == nil {
		panic("heuristic: Direct needs a metric and an environment")
	}

	return direct{metric: m, env: env}
}

// Indexed estimates by table lookup. Pairs missing from the table estimate
// to +Inf so that the search deprioritizes them instead of failing.
// Panics if table or env is nil.
func Indexed(table DistanceTable, env core.Environment) Heuristic {
	if table == nil || env == nil {
		panic("heuristic: Indexed needs a table and an environment")
	}

	return indexed{table: table, env: env}
}

// Safely wraps h so that direct neighbours are estimated at their exact edge cost.
// Panics if h is nil.
func Safely(h Heuristic) Heuristic {
	if h == nil {
		panic("heuristic: Safely(nil)")
	}

	return safe{inner: h}
}

// Rebind keeps h's estimates but reports env as the environment to search.
// No staleness check is made. Panics if h or env is nil.
func Rebind(h Heuristic, env core.Environment) Heuristic {
	if h == nil || env == nil {
		panic("heuristic: Rebind needs a heuristic and an environment")
	}

	return rebound{inner: h, env: env}
}

type direct struct {
	metric core.Metric
	env    core.Environment
}

func (d direct) Estimate(start, goal string) float64 {
	return d.metric.DistanceBetween(d.env.PositionOf(start), d.env.PositionOf(goal))
}

func (d direct) Environment() core.Environment { return d.env }
func (direct) sealed()                         {}

type indexed struct {
	table DistanceTable
	env   core.Environment
}

func (x indexed) Estimate(start, goal string) float64 {
	if d, ok := x.table.Distance(start, goal); ok {
		return d
	}

	return math.Inf(1)
}

func (x indexed) Environment() core.Environment { return x.env }
func (indexed) sealed()                         {}

type safe struct {
	inner Heuristic
}

func (s safe) Estimate(start, goal string) float64 {
	env := s.inner.Environment()
	if env.AreNeighbours(start, goal) {
		if c, err := env.MovementCostBetween(start, goal); err == nil {
			return c
		}
	}

	return s.inner.Estimate(start, goal)
}

func (s safe) Environment() core.Environment { return s.inner.Environment() }
func (safe) sealed()                         {}

type rebound struct {
	inner Heuristic
	env   core.Environment
}

func (r rebound) Estimate(start, goal string) float64 { return r.inner.Estimate(start, goal) }
func (r rebound) Environment() core.Environment       { return r.env }
func (rebound) sealed()                               {}
