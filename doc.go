// Package pathfinder finds cheapest routes through weighted graphs, from
// free-form networks to located environments and price grids.
//
// 🚀 What is pathfinder?
//
//	A family of interchangeable pathfinders behind two small interfaces:
//		• Single-goal search: A*, Dijkstra
//		• All-goals search: Dijkstra, Bellman-Ford (negative costs, cycle detection)
//		• All-pairs index: Floyd-Warshall, walked by a static pathfinder
//		• Heuristics: metric estimates, indexed distances, safe and rebound variants
//		• A dynamic pathfinder that picks the algorithm from the graph's traits
//
// ✨ Why choose pathfinder?
//
//   - One error family – every "no answer" wraps pathfinding.ErrNoPathAvailable
//   - Cancellable – every search honours pathfinding.WithContext
//   - Reusable indexes – persist them to SQLite or Redis and rebuild only when the graph changes
//
// Packages:
//
//	core/          — Network and Environment contracts, the immutable Graph, traits
//	metric/        — Euclidean, Taxicab and Chebyshev distances
//	gridgraph/     — price grids as environments, A1-style labels, regions
//	heuristic/     — Direct, Indexed, Safely, Rebind
//	pathfinding/   — shared options, errors, frontier and path reconstruction
//	astar/         — heuristic-guided single-goal search
//	dijkstra/      — single- and all-goals search without negative costs
//	bellmanford/   — all-goals search with negative costs
//	floydwarshall/ — all-pairs next-hop index and snapshots
//	static/        — answers read off a prebuilt index
//	dynamic/       — strategy selection by graph traits
//	graphfile/     — YAML graph documents
//	indexstore/    — SQLite and Redis index stores, build-once cache
//	instrument/    — Prometheus metrics and zap logging around any pathfinder
//	cmd/pathfind   — command-line front end
//
// Quick ASCII example:
//
//	A──5──B
//	│     │
//	8     9
//	│     │
//	C──4──D
//
// With A→B 5, A→C 8, C→D 4 the cheapest way from A to D is A → C → D (12).
//
//	go install github.com/katalvlaran/pathfinder/cmd/pathfind@latest
package pathfinder
