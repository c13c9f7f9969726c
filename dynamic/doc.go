// Package dynamic picks a search strategy for a graph once, at construction,
// and answers both single-goal and all-goals queries with it.
//
// Policy, keyed on the graph's core.Traits:
//
//	geometric          → A* with Safely(Direct(metric, graph)) for Between;
//	                     Bellman-Ford for From if any edge is negative, else Dijkstra.
//	negative edges     → A* over core.View(graph), where every estimate is 0
//	                     and Safely supplies exact one-hop costs; Bellman-Ford for From.
//	plain              → Dijkstra for both.
//
// WithHeuristic replaces the default heuristic of the first two cases. A
// plain graph has nothing for a heuristic to improve on and keeps Dijkstra.
package dynamic
