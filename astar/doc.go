// Package astar implements heuristic-guided single-goal search (A*).
//
// The search runs over the environment its heuristic is bound to, so a
// heuristic built for one graph and rebound to another (heuristic.Rebind)
// searches the new graph with the old estimates.
//
// Algorithm:
//
//   - Frontier priority is g(n) + h(n, goal), where g is the best known cost
//     from start and h the heuristic estimate.
//   - Each node is expanded at most once. Neighbours that were already
//     expanded are never relaxed again.
//   - The search ends successfully when goal is dequeued, and fails with
//     pathfinding.ErrNoSuchPath once the frontier is empty.
//
// Optimality holds when h never overestimates the true remaining cost and is
// consistent; nothing here checks that. heuristic.Safely guards the one-hop
// case by answering with the exact edge cost. With an admissible heuristic
// A* expands no more nodes than Dijkstra, which is the point of using it.
//
// Complexity: O((V + E) log V) time, O(V + E) space; heuristic calls are
// counted in E.
package astar
