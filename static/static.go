// Package static answers shortest-path queries from a precomputed forest,
// typically a floydwarshall.Index, without traversing the graph.
//
// Results are only as fresh as the forest. Every walk is capped at the
// number of nodes in the graph: a longer chain can only come from a forest
// built over a negative cycle, and fails with pathfinding.ErrNegativeCycle
// instead of looping.
package static

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/pathfinding"
)

// Pathfinder walks next hops of a ShortestPathForest.
type Pathfinder struct {
	forest  pathfinding.ShortestPathForest
	network core.Network
}

var _ pathfinding.Pathfinder = (*Pathfinder)(nil)

// New returns a pathfinder over forest, which must have been built for n.
// Panics if either is nil.
func New(forest pathfinding.ShortestPathForest, n core.Network) *Pathfinder {
	if forest == nil || n == nil {
		panic("static: New needs a forest and a network")
	}

	return &Pathfinder{forest: forest, network: n}
}

// Between returns the path from start to goal, both inclusive.
func (p *Pathfinder) Between(start, goal string) ([]string, error) {
	if !p.network.Has(start) {
		return nil, pathfinding.NonExistingStart(start)
	}

	return p.walk(start, goal, len(p.network.All()))
}

// From returns the path to every other node the forest can reach from start.
// Pairs the forest has no path for are left out; any other failure aborts.
func (p *Pathfinder) From(start string) (map[string][]string, error) {
	if !p.network.Has(start) {
		return nil, pathfinding.NonExistingStart(start)
	}

	nodes := p.network.All()
	paths := make(map[string][]string, len(nodes))
	for _, goal := range nodes {
		if goal == start {
			continue
		}
		path, err := p.walk(start, goal, len(nodes))
		if errors.Is(err, pathfinding.ErrNoSuchPath) {
			continue
		}
		if err != nil {
			return nil, err
		}
		paths[goal] = path
	}

	return paths, nil
}

func (p *Pathfinder) walk(start, goal string, limit int) ([]string, error) {
	path := []string{start}
	for at := start; at != goal; {
		if len(path) > limit {
			return nil, fmt.Errorf("%w: walk from %q to %q exceeds %d steps",
				pathfinding.ErrNegativeCycle, start, goal, limit)
		}
		hop, err := p.forest.NextStepOnTheRoadBetween(at, goal)
		if err != nil {
			return nil, err
		}
		path = append(path, hop)
		at = hop
	}

	return path, nil
}
