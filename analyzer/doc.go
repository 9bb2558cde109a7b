// Package analyzer orchestrates the full pipeline described in spec §2:
// region splitting (C3), per-center abstract-arc synthesis (C4), cycle
// detection and eRU assignment (C2, C5), the L-safeness matrix (C7), and,
// when violations are found, contraction (C8) and activity extraction
// (C9) to additionally determine classical soundness.
//
// Grounded on the Python original's main.py, which wires the same stages
// (Input_RDLT.evaluate → Cycle.evaluate_cycle over R2 → ProcessR1, which
// internally calls AbstractArc and the matrix/contraction/activity
// modules) behind one script; here that wiring is a single Analyze call
// using Go's explicit error returns in place of that source's
// print-and-continue error handling.
package analyzer
