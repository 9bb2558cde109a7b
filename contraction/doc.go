// Package contraction implements C8: for a violating arc, greedily
// contracting a source→sink path in a fresh copy of the working region
// under a monotonically growing superset Σ of allowed conditions, per
// spec §4.8.
//
// Grounded on the Python original's contraction.py (ContractionPath
// class: can_contract, contract_paths_for_violation). Two deliberate
// deviations from that source, both following spec §4.8's text over the
// Python's exact behavior:
//
//   - can_contract there tests EVERY incoming arc of the target,
//     including the candidate arc itself, against the superset — so an
//     arc whose own condition isn't yet in Σ can spuriously conflict with
//     itself. Spec §4.8 says "every OTHER incoming arc"; canContract here
//     excludes the candidate arc from its own conflict check.
//   - The Python recomputes contraction once per violating arc (a fresh
//     deepcopy each time) even though the computation never reads
//     anything violation-specific — source, sink, and Σ all come from the
//     region alone. Run computes the single result once; ForViolations
//     maps it to every violation key, matching the Python's observable
//     output while skipping the redundant recomputation.
package contraction
