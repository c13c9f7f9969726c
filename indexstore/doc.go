// Package indexstore persists floydwarshall indexes so that the expensive
// closure runs once per graph, not once per process.
//
// Indexes are stored as YAML snapshots (see Encode) under a caller-chosen
// name. Two Store implementations are provided:
//
//   - SQLiteStore keeps every snapshot in one table of a local database file;
//   - RedisStore keeps each snapshot under the key "pathfinder:index:<name>".
//
// Cache sits in front of a Store: LoadOrBuild returns the stored index for a
// network, or builds, saves and returns a fresh one. Concurrent callers asking
// for the same name share one load or build.
package indexstore
