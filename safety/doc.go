// Package safety implements C7: the L-safeness matrix. It builds one
// MatrixRow per arc in a working region, carrying the cycle vector, the
// out-cycle vector, loop-safeness, critical-arc safeness, and
// join-safeness verdicts, per spec §4.7, and reduces them to an overall
// L-safe verdict (spec: L-safe iff every row's joinsafe, loopsafe, and
// safeCA is non-negative).
//
// Grounded on the Python original's matrix construction (the
// cv/ocv/loopsafe/safeCA/joinsafe rules below are transcribed directly
// from spec §4.7, with matrix.py's join-safeness control flow used as a
// cross-check) and on joins.py (package join) for the join-vertex
// grouping join-safeness builds on.
//
// Two resolved ambiguities, both recorded per spec §9's instruction to
// expose a flag rather than silently guess:
//
//   - Symbolic values. Spec §9 suggests representing `+a`/`-a`/`ε`/`0` as
//     a tagged variant {Pos(cond), Neg(cond), Epsilon, Zero}; this package
//     does exactly that (type Symbol) and implements literalOR as the
//     closed table spec §4.7 gives, plus one necessary extension: the
//     table has no entry for two differently-conditioned Pos/Neg symbols
//     (it only ever arises between an arc's own cv/ocv/ls/js-derived
//     symbols, which always share that arc's own condition, so the gap is
//     unreachable from spec's own formulas — but Build defends against it
//     anyway by treating Neg as absorbing, to fail closed rather than
//     silently drop a violation).
//   - Join-safeness's `joinsafe := literalOR(js · op, op)` names a bare
//     `op` as literalOR's second operand, not a signed term. Of the four
//     tagged cases only Epsilon is nullary like that, and literalOR's own
//     `ε∨ε=ε` identity already makes Epsilon behave as a safe stand-in for
//     an unsigned operand in this position — combining js·op with Epsilon
//     reduces to js·op in every case Build exercises. Build does exactly
//     that: joinsafe := literalOR(js·op, Epsilon).
//
// Spec §9's Open Question "whether MIX-joins are allowed at all in L-safe
// models" is left open by design: Options.MixJoinsAllowed selects between
// the prose reading (a MIX-join with ≥2 distinct non-ε incoming
// conditions always violates joinsafe — the default) and the "matrix
// code" reading (MIX-joins are not penalized merely for differing
// conditions).
package safety
