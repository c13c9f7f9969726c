// Package core defines the read-only graph contract consumed by every
// pathfinder in this module, together with an immutable Graph that satisfies it.
//
// A graph G = (V, E) is a fixed set of labeled nodes, each carrying an ordered
// sequence of directed, weighted edges:
//
//   - Labels are opaque, unique, non-empty strings.
//   - Edges are directed: A→B implies nothing about B→A.
//   - Costs are float64 and may be negative.
//   - Every edge target must itself be a node of the graph.
//
// Capabilities:
//
//	Network      – All, Has, NeighboursOf, AreNeighbours, MovementCostBetween, Traits
//	Environment  – Network + PositionOf (a node's n-dimensional coordinates)
//
// Traits is an explicit tag rather than something discovered by inspecting
// concrete types. A graph reports Geometric when its nodes carry meaningful
// positions and NegativeEdges when any edge cost is below zero; strategy
// selection branches on these flags only.
//
// Position is an immutable n-dimensional coordinate. Reading an axis beyond
// the declared dimensions yields 0, so a 2D position compares cleanly against
// a 3D one.
//
// Building graphs:
//
//	g, err := core.New([]core.Vertex{
//	    core.Node("A", core.To("B", 5), core.To("C", 8)),
//	    core.Node("B", core.To("D", 9)),
//	    core.Node("C", core.To("D", 4)),
//	    core.Node("D"),
//	})
//
// Located vertices (core.Location) produce a geometric graph. With
// WithEdgeCostsFrom, each edge cost becomes declared-1+distance, so unit
// edges (core.ToAll) cost exactly the distance between their endpoints.
//
// View adapts any Network to an Environment; non-geometric graphs are placed
// entirely at the origin so that metric-based heuristics degrade to zero.
//
// Errors:
//
//	ErrEmptyLabel      – vertex label is the empty string.
//	ErrDuplicateNode   – two vertices share a label.
//	ErrDuplicateEdge   – a vertex declares the same target twice.
//	ErrUnknownTarget   – an edge points at a label that is not a vertex.
//	ErrMixedPositions  – some vertices are located and others are not.
//	ErrNoPositions     – edge costs derived from a metric on an unlocated graph.
//	ErrNotNeighbours   – cost lookup for a pair that shares no edge.
//
// A Graph never changes after New returns, so concurrent queries against the
// same value are safe without locking.
package core
