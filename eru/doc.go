// Package eru implements C5: assignment of the effective Reusability Unit
// (eRU) to every arc of a region, from the cycles it belongs to.
//
// For each arc a: if a lies in at least one cycle κ, eRU(a) is the minimum
// L over min_{b ∈ κ} L(b) across every such κ; otherwise eRU(a) = 0.
// Idempotent — recomputing over the same region and cycle set yields the
// same result (spec §4.5, invariant 1 of §8: eRU(a) ≤ L(a)).
//
// Grounded on cycle.py's calculate_eRU_for_arcs, adapted to use the
// precomputed cycle.Index (package cycle) instead of re-scanning the
// cycle list per arc.
package eru
