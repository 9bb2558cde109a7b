// Package cycle implements C2: detection of the simple cycles of an
// rmodel.Region that a DFS closes by a back-edge (not necessarily every
// simple cycle; see Detect), with per-cycle UUIDs and critical-arc
// marking.
//
// Grounded on github.com/katalvlaran/lvlath's dfs/cycle.go (three-color
// DFS with back-edge detection, canonical rotation-normalized dedup via
// Booth's algorithm) and the Python original's cycle.py (which assigns
// each cycle a uuid.uuid4() — carried forward here via google/uuid, the
// same identifier library github.com/cue-lang/cue's internal tooling
// uses). Unlike the teacher, which detects cycles over an
// Edge.ID-sorted, concurrency-safe core.Graph, this operates over a
// single build of rgraph.Adjacency in region-insertion order (spec §5)
// using an explicit recursion-stack discipline (design note 9) rather
// than Go call recursion, so long acyclic chains do not risk stack
// overflow.
//
// Complexity: O(V + E + C·L) time, O(V + L_max) memory, matching the
// teacher's documented bound (C = #cycles, L = average cycle length).
//
// Errors: none; an acyclic region yields an empty cycle list.
package cycle
