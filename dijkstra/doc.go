// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Network, in two flavours:
//
//   - Single: Between(start, goal) stops the moment goal is dequeued.
//   - Multi:  From(start) runs until the frontier is empty and returns one
//     path per reachable node other than start.
//
// Overview:
//
//   - The frontier is a min-priority queue keyed by distance from start.
//   - Each node is expanded at most once (closed set); improving a queued node
//     pushes a fresh entry and the stale one is skipped when popped.
//   - Predecessors are recorded on every strict improvement and retraced
//     into label sequences at the end.
//
// Negative edges:
//
// Costs below zero do not make the search fail or loop, since closed nodes are
// never reopened, but the result is then no longer guaranteed optimal. Use
// bellmanford, or let dynamic pick, when NegativeEdges is set.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holding up to E entries under lazy decrease-key.
//
// Errors:
//
//   - pathfinding.ErrNonExistingStart: start is not a node.
//   - pathfinding.ErrNoSuchPath:       goal is not a node or cannot be reached (Single only).
//   - wrapped context errors when the search is cancelled via pathfinding.WithContext.
package dijkstra
