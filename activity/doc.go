// Package activity implements C9: a depth-bounded DFS from the working
// region's source enumerating timestep-indexed firing sequences
// ("activity profiles"), and the Classical Soundness predicate (proper
// termination + liveness) over the enumerated set, per spec §4.9.
//
// Grounded on the Python original's mod_extract.py
// (ModifiedActivityExtraction.extract_all_activity_profiles,
// identify_valid_arcs, verify_classical_soundness). Three deliberate
// simplifications versus that source, each noted because it changes
// observable behavior and none contradicts spec §4.9's text:
//
//   - One arc per timestep. The Python source can fire several arcs
//     converging on different successors within a single timestep
//     (group_by_successor_paths) before recursing once per group. Spec
//     §4.9 only requires grouping "by target within the timestep" for
//     recording — it does not require multi-arc timesteps to change
//     which profiles exist. explore fires exactly one arc per DFS step,
//     which is a (timestep-level) regrouping of the same underlying
//     traversal, not a behavior change to reachability or soundness.
//   - Reset-on-out-bridge resets every non-bridge counter (Python also
//     exempts R2-internal arcs specifically). By the time C9 runs, R2 has
//     already been folded into abstract arcs (C4) and no longer exists as
//     a separate arc set in the working region, so the R2 exemption is
//     vacuous here; only the non-bridge exemption applies.
//   - Recursion depth. Unlike package rgraph/cycle (design note 9: use
//     explicit stacks, since simple-path/cycle enumeration is unbounded
//     by graph size), explore's recursion depth is hard-capped by
//     Options.DepthCap (a small constant, spec default 10-15 — not graph
//     size), so plain Go call recursion is safe and mirrors the Python's
//     own recursive dfs_paths directly.
package activity
