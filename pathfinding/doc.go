// Package pathfinding holds the contracts shared by every search in this module:
// the pathfinder interfaces, the "no path available" error family, search
// options, predecessor retracing and the min-priority frontier.
//
// Contracts:
//
//	SinglePathfinder    – Between(start, goal) → [start … goal]
//	MultiPathfinder     – From(start) → {goal: [start … goal]} for every reachable goal ≠ start
//	Pathfinder          – both of the above
//	ShortestPathForest  – NextStepOnTheRoadBetween(start, goal) → next hop
//	Indexer             – AllShortestPaths() → forest; Heuristic() → indexed estimate
//
// Errors:
//
// Every failure to answer a query belongs to one family, so callers that only
// care whether a path exists can test errors.Is(err, ErrNoPathAvailable):
//
//	ErrNonExistingStart  – start is not a node; raised before any traversal.
//	ErrNoSuchPath        – goal is absent or unreachable.
//	ErrNegativeCycle     – a negative cycle makes "shortest" undefined.
//
// NegativeCycleError names the two endpoints of the edge that could still be
// relaxed and unwraps to ErrNegativeCycle. Contract violations of the graph
// itself (for example asking the cost of a non-edge) surface as core errors.
//
// Options:
//
//	WithContext(ctx)   – cancellation checked once per dequeue, round or step.
//	WithOnExpand(fn)   – called with every node whose neighbours get examined.
//	WithMaxCost(c)     – nodes costing more than c to reach are not expanded.
//
// Predecessor maps are keyed by node; a missing key means "no predecessor".
// Retrace turns such a map into a path and Paths into the per-goal mapping of
// an all-goals query.
package pathfinding
