// File: factory.go
// Role: Thin helpers for declaring vertices and edges.

package core

// Node declares an unlocated vertex.
func Node(label string, edges ...Edge) Vertex {
	return Vertex{Label: label, Edges: edges}
}

// Location declares a vertex at pos.
func Location(label string, pos Position, edges ...Edge) Vertex {
	return Vertex{Label: label, Position: &pos, Edges: edges}
}

// To declares an edge towards target.
func To(target string, cost float64) Edge {
	return Edge{To: target, Cost: cost}
}

// ToAll declares unit-cost edges towards every target, in order.
func ToAll(targets ...string) []Edge {
	out := make([]Edge, len(targets))
	for i, t := range targets {
		out[i] = Edge{To: t, Cost: 1}
	}

	return out
}
