// Package floydwarshall precomputes every shortest path of a graph at once
// and answers later queries by table lookup.
//
// An Indexer runs the Floyd–Warshall closure the first time one of its
// products is asked for and caches the resulting Index:
//
//   - AllShortestPaths returns the Index as a pathfinding.ShortestPathForest
//     (next hop from any node towards any other node);
//   - Heuristic returns a heuristic.Indexed estimate backed by the same
//     distance table, exact for the graph it was built from.
//
// Algorithm (dense, row-major tables of size |V|²):
//
//  1. dist[i][i] = 0, dist[i][j] = cost(i→j) for every edge, +Inf elsewhere;
//     next[i][j] = j for every edge, -1 elsewhere.
//  2. For every intermediate k, for every row i with dist[i][k] < +Inf, and
//     every column j: if dist[i][k] + dist[k][j] < dist[i][j], store the sum
//     and set next[i][j] = next[i][k].
//
// Row k is copied before each pass, so the rows of one pass are independent
// and WithWorkers may spread them over several goroutines. The result is
// identical for any worker count.
//
// No negative-cycle check is made while indexing. A graph with a negative
// cycle still produces an Index; Index.NegativeCycle reports the condition,
// and next-hop chains through the cycle never reach their goal.
//
// Complexity: O(V³) time, O(V²) space. Indexing is meant to run rarely, at
// key moments, and off the hot path.
package floydwarshall
