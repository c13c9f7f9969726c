// File: types.go
// Role: Graph capabilities (Network, Environment, Metric), Traits tag, sentinel errors.

package core

import (
	"errors"
	"strings"
)

// Sentinel errors for graph construction and lookups.
var (
	// ErrEmptyLabel indicates a vertex declared with an empty label.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrDuplicateNode indicates two vertices share one label.
	ErrDuplicateNode = errors.New("core: duplicate vertex")

	// ErrDuplicateEdge indicates a vertex declares the same target more than once.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrUnknownTarget indicates an edge pointing at a label that is not a vertex.
	ErrUnknownTarget = errors.New("core: edge target is not a vertex")

	// ErrMixedPositions indicates that only some of the vertices carry a position.
	ErrMixedPositions = errors.New("core: positions must be given for all vertices or none")

	// ErrNoPositions indicates metric-derived edge costs on a graph without positions.
	ErrNoPositions = errors.New("core: edge costs from a metric need located vertices")

	// ErrNotNeighbours indicates a cost lookup between nodes that share no edge.
	ErrNotNeighbours = errors.New("core: nodes are not neighbours")
)

// Traits declares which optional properties a graph carries.
// Algorithms select behavior by testing these flags, never by type inspection.
type Traits uint8

const (
	// Geometric marks graphs whose nodes carry meaningful positions.
	Geometric Traits = 1 << iota

	// NegativeEdges marks graphs with at least one edge cost below zero.
	NegativeEdges
)

// Has reports whether every flag in f is set.
func (t Traits) Has(f Traits) bool { return t&f == f }

// String lists the set flags, e.g. "geometric|negative-edges".
func (t Traits) String() string {
	var parts []string
	if t.Has(Geometric) {
		parts = append(parts, "geometric")
	}
	if t.Has(NegativeEdges) {
		parts = append(parts, "negative-edges")
	}
	if len(parts) == 0 {
		return "plain"
	}

	return strings.Join(parts, "|")
}

// Network is the read-only capability every pathfinder consumes.
//
// Implementations must be safe for concurrent reads; nothing in this module
// mutates a Network.
type Network interface {
	// All enumerates every node label.
	All() []string

	// Has reports whether node is part of the graph.
	Has(node string) bool

	// NeighboursOf lists the targets of node's outgoing edges in declaration order.
	// Unknown nodes have no neighbours.
	NeighboursOf(node string) []string

	// AreNeighbours reports whether an edge source→neighbour exists.
	AreNeighbours(source, neighbour string) bool

	// MovementCostBetween returns the cost of the edge source→neighbour,
	// or an error wrapping ErrNotNeighbours if there is no such edge.
	MovementCostBetween(source, neighbour string) (float64, error)

	// Traits reports the optional properties of the graph.
	Traits() Traits
}

// Environment is a Network whose nodes have coordinates.
type Environment interface {
	Network

	// PositionOf returns the coordinates of node. Unknown nodes sit at the origin.
	PositionOf(node string) Position
}

// Metric measures the distance between two positions.
type Metric interface {
	DistanceBetween(a, b Position) float64
}

// Edge is one outgoing connection of a vertex.
type Edge struct {
	// To is the target label.
	To string

	// Cost is the price of moving along the edge; it may be negative.
	Cost float64
}

// Vertex describes one node handed to New.
type Vertex struct {
	// Label uniquely identifies the node.
	Label string

	// Position is nil for vertices of a non-geometric graph.
	Position *Position

	// Edges are the outgoing connections, kept in order.
	Edges []Edge
}

// Options configures New.
type Options struct {
	// EdgeCosts, when set, rewrites every edge cost as declared-1+distance.
	EdgeCosts Metric
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero configuration: edge costs are taken as declared.
func DefaultOptions() Options {
	return Options{}
}

// WithEdgeCostsFrom derives edge costs from the distance between endpoints.
// A unit edge costs exactly the distance; heavier edges add the surplus.
// Panics if m is nil.
func WithEdgeCostsFrom(m Metric) Option {
	if m == nil {
		panic("core: WithEdgeCostsFrom(nil)")
	}

	return func(o *Options) {
		o.EdgeCosts = m
	}
}
