// File: graph.go
// Role: Immutable Graph implementing Network and Environment.
// Determinism:
//   - All() returns labels in declaration order.
//   - NeighboursOf() returns targets in edge declaration order.
// Concurrency:
//   - No mutation after New; concurrent reads need no locks.

package core

import (
	"fmt"
	"math"
)

// Graph is an immutable directed, weighted graph, optionally located in space.
type Graph struct {
	labels    []string             // declaration order
	index     map[string]int       // label → position in labels
	edges     [][]Edge             // per node, declaration order
	costs     []map[string]float64 // per node, target → cost
	positions []Position           // nil unless every vertex is located
	traits    Traits
}

// New validates the vertices and builds a Graph.
//
// Validation (in order):
//  1. Every label is non-empty (ErrEmptyLabel) and unique (ErrDuplicateNode).
//  2. Positions are given for all vertices or for none (ErrMixedPositions).
//  3. No vertex repeats a target (ErrDuplicateEdge); every target exists (ErrUnknownTarget).
//  4. WithEdgeCostsFrom requires located vertices (ErrNoPositions).
//
// Complexity: O(V + E).
func New(vertices []Vertex, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(vertices)
	g := &Graph{
		labels: make([]string, 0, n),
		index:  make(map[string]int, n),
		edges:  make([][]Edge, n),
		costs:  make([]map[string]float64, n),
	}

	// 1) Labels.
	located := 0
	for i, v := range vertices {
		if v.Label == "" {
			return nil, fmt.Errorf("%w: vertex #%d", ErrEmptyLabel, i)
		}
		if _, dup := g.index[v.Label]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, v.Label)
		}
		g.index[v.Label] = i
		g.labels = append(g.labels, v.Label)
		if v.Position != nil {
			located++
		}
	}

	// 2) Positions.
	if located != 0 && located != n {
		return nil, fmt.Errorf("%w: %d of %d located", ErrMixedPositions, located, n)
	}
	if located > 0 {
		g.positions = make([]Position, n)
		for i, v := range vertices {
			g.positions[i] = *v.Position
		}
		g.traits |= Geometric
	}
	if cfg.EdgeCosts != nil && g.positions == nil {
		return nil, ErrNoPositions
	}

	// 3) Edges.
	for i, v := range vertices {
		g.edges[i] = make([]Edge, 0, len(v.Edges))
		g.costs[i] = make(map[string]float64, len(v.Edges))
		for _, e := range v.Edges {
			j, ok := g.index[e.To]
			if !ok {
				return nil, fmt.Errorf("%w: %s→%s", ErrUnknownTarget, v.Label, e.To)
			}
			if _, dup := g.costs[i][e.To]; dup {
				return nil, fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, v.Label, e.To)
			}
			cost := e.Cost
			if cfg.EdgeCosts != nil {
				cost = cost - 1 + cfg.EdgeCosts.DistanceBetween(g.positions[i], g.positions[j])
			}
			if cost < 0 {
				g.traits |= NegativeEdges
			}
			g.edges[i] = append(g.edges[i], Edge{To: e.To, Cost: cost})
			g.costs[i][e.To] = cost
		}
	}

	return g, nil
}

// All returns every label in declaration order.
func (g *Graph) All() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.labels) }

// Has reports whether node is part of the graph.
func (g *Graph) Has(node string) bool {
	_, ok := g.index[node]

	return ok
}

// NeighboursOf lists the targets of node's outgoing edges in declaration order.
func (g *Graph) NeighboursOf(node string) []string {
	i, ok := g.index[node]
	if !ok {
		return nil
	}
	out := make([]string, len(g.edges[i]))
	for k, e := range g.edges[i] {
		out[k] = e.To
	}

	return out
}

// EdgesOf returns a copy of node's outgoing edges.
func (g *Graph) EdgesOf(node string) []Edge {
	i, ok := g.index[node]
	if !ok {
		return nil
	}
	out := make([]Edge, len(g.edges[i]))
	copy(out, g.edges[i])

	return out
}

// AreNeighbours reports whether the edge source→neighbour exists.
func (g *Graph) AreNeighbours(source, neighbour string) bool {
	i, ok := g.index[source]
	if !ok {
		return false
	}
	_, ok = g.costs[i][neighbour]

	return ok
}

// MovementCostBetween returns the cost of source→neighbour.
func (g *Graph) MovementCostBetween(source, neighbour string) (float64, error) {
	if i, ok := g.index[source]; ok {
		if c, ok := g.costs[i][neighbour]; ok {
			return c, nil
		}
	}

	return math.NaN(), fmt.Errorf("%w: %s→%s", ErrNotNeighbours, source, neighbour)
}

// PositionOf returns node's coordinates, or the origin for unknown nodes
// and for graphs without positions.
func (g *Graph) PositionOf(node string) Position {
	i, ok := g.index[node]
	if !ok || g.positions == nil {
		return At()
	}

	return g.positions[i]
}

// Traits reports Geometric for located graphs and NegativeEdges when any cost is below zero.
func (g *Graph) Traits() Traits { return g.traits }
