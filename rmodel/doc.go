// Package rmodel defines the core data model shared by every analysis
// component: Vertex, Arc, Region, and the ε (epsilon) condition sentinel.
//
// What:
//   - Vertex is an opaque string identifier; equality is by value.
//   - Arc is a directed edge carrying a stable rid, a reuse limit l, a
//     condition label c, and a derived eRU.
//   - Region is an ordered sequence of Arcs. Order is significant: it is
//     the input insertion order, and it governs tie-breaking throughout
//     the pipeline (rgraph.AllPaths, contraction, activity extraction).
//
// Why:
//   - Every component (rgraph, cycle, region, abstractarc, eru, join,
//     safety, contraction, activity) operates over these same few types,
//     so they live in one leaf package with no dependencies of their own.
//
// Errors: none; rmodel is pure data, validated by its callers.
package rmodel
