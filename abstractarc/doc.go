// Package abstractarc implements C4: summarizing a reset-bound subsystem
// (RBS) region R2 as shortcut "abstract arcs" inside R1, so R1's analysis
// never needs to traverse R2 directly.
//
// Three steps, per spec §4.4:
//
//   - Step A (shortcut arcs): for every in-bridge target u and every other
//     abstract vertex v (centers, in-bridge targets, out-bridge sources),
//     if a simple path u→v exists in R2, emit the abstract arc u→v.
//   - Step B (self-loops): every in-bridge target u always emits a
//     self-loop u→u (an RBS is assumed, by construction, to contain a
//     reset cycle).
//   - Step C (attributes): c := ε; eRU := Σ over in-bridges i targeting u
//     of L(i)·(reusability(i,u,v)+1); l := eRU+1.
//
// Grounded on the Python original's abstract.py (AbstractArc class:
// make_abstract_arcs_stepA/B/C, calculate_eRU, get_path_reusability).
// That source's get_path_reusability delegates self-loop counting to
// find_all_paths(R2, u, u), which returns immediately on start==end
// before exploring any neighbor — so in the reference implementation,
// self-loop reusability is always exactly 1 regardless of R2's actual
// cyclic structure. Spec §9's first Open Question flags exactly this
// ambiguity ("whether Step B must enumerate all distinct closed walks at
// u or only assert existence") and asks implementers to expose a flag
// rather than silently pick one reading. WithClosedWalkEnumeration(true)
// switches from the reference's "assert existence, reusability=1" reading
// to genuine enumeration of simple cycles through u (bounded by the same
// depth cap used elsewhere, so it stays finite on cyclic R2s); the
// default keeps the reference's behavior.
package abstractarc
