// Package join implements C6: classifying join vertices (AND / OR / MIX)
// from the condition (`c`) attributes of their incoming arcs, per spec
// §4.6.
//
// Grounded on the Python original's joins.py (TestJoins.group_arcs_by_target_vertex,
// checkSimilarTargetVertexAndUpdate): that source groups arcs by target
// vertex and compares c-attributes within a group to decide whether R1
// alone suffices or R2 must be folded in. This package keeps the grouping
// step (Classify) but drops the R1-vs-R1+R2 branching — spec §4.6 only
// asks for the join *kind*, not a region-merge decision; the merge
// question is answered once, upstream, by package analyzer folding
// abstract arcs into the working region before classification ever runs.
package join
