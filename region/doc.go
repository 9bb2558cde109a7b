// Package region implements C3: splitting a flat arc list into a
// top-level region R1 and one reset-bound subsystem (RBS) region per
// center, given the caller-supplied center set and in-/out-bridge lists.
//
// For each center c, the arcs incident to c are extended to the subgraph
// induced by every vertex reachable from c without crossing an in- or
// out-bridge arc (spec §4.3); that subgraph's arcs become R2_c. Arcs not
// claimed by any R2_c — including the bridges themselves, which must
// remain visible to R1 as the seam between regions — form R1.
//
// Grounded on the Python original's input_rdlt.py (extract_rdlt), adapted
// from its one-shot "arcs touching center minus bridges, then re-expand"
// approximation to the full reachability closure spec.md §4.3 describes,
// using the same explicit-stack BFS discipline as rgraph.HasClosedWalk.
//
// Every output arc receives an rid tagged with its host region
// ("R1-<n>" or "R<i>-<n>" for the i-th center, i starting at 2), per
// spec §4.3's closing sentence and the data-model invariant that rid is
// preserved across all derivations.
//
// Errors:
//   - ErrUnknownBridge — an in-/out-bridge record names a (source, target)
//     pair that is not among the input arcs.
package region
