// Package rgraph implements the graph primitives shared by every later
// analysis stage: ordered adjacency, simple-path enumeration, and unique
// source/sink detection over an rmodel.Region.
//
// Grounded on github.com/katalvlaran/lvlath's core/methods_adjacent.go
// (Neighbors) and dfs/dfs.go (recursive traversal with an explicit stack
// discipline), adapted from a concurrency-safe, Edge.ID-sorted API to the
// single-threaded, insertion-order-preserving one spec §5 requires: this
// analyzer runs one synchronous pass per invocation (no goroutines touch
// a Region concurrently), so the teacher's sync.RWMutex-guarded adjacency
// maps are replaced by a plain, build-once adjacency index; and ordering
// is by Region insertion order, not by a sorted Edge.ID, because spec §5
// makes iteration order an observable tie-break, not an implementation
// detail to normalize away.
//
// Complexity: Neighbors is O(1) after an O(len(Region)) adjacency build.
// AllPaths is O(number of simple paths × path length) — the scaling
// hotspot spec §5 calls out; callers bound it via a depth cap.
//
// Errors:
//   - ErrMultipleSourcesOrSinks — SourceAndSink found zero or more than
//     one vertex with no incoming (or no outgoing) arc.
package rgraph
