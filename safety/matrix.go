package safety

import (
	"github.com/katalvlaran/rdlt/cycle"
	"github.com/katalvlaran/rdlt/join"
	"github.com/katalvlaran/rdlt/rgraph"
	"github.com/katalvlaran/rdlt/rmodel"
)

// Build constructs the L-safeness matrix for r, given r's precomputed
// cycle index idx (package cycle; r's arcs must already carry eRU values,
// as produced by package eru). isBridge classifies arcs for package
// join's bridge-classification rule.
func Build(r rmodel.Region, idx *cycle.Index, isBridge func(rmodel.Arc) bool, opts Options) Result {
	adj := rgraph.Build(r)

	rows := make(map[string]*MatrixRow, len(r))
	order := make([]string, 0, len(r))
	for _, a := range r {
		row := &MatrixRow{Arc: a}
		cv := cycleVectorSign(idx, a)
		row.CV = cv
		row.Cycle = signed(cv, a.C)

		ocv := outCycleVectorSign(r, idx, a, cv)
		row.OCV = ocv
		row.SafeCA = literalOR(signed(ocv, a.C), row.Cycle)

		ls := loopSafenessSign(idx, a, cv)
		row.LS = ls
		row.LoopSafe = signed(ls, a.C)

		// js defaults to vacuously safe; applyJoinSafeness below overrides
		// it for each arc its rules (a)-(f) find at fault.
		row.JS = 1
		row.JoinSafe = literalOR(signed(1, a.C), Eps)

		rows[a.Rid] = row
		order = append(order, a.Rid)
	}

	var violations []Violation
	for _, j := range join.Classify(r, isBridge) {
		violations = append(violations, applyJoinSafeness(r, adj, j, rows, opts)...)
	}
	for _, rid := range order {
		row := rows[rid]
		if row.CV == -1 && row.OCV == -1 {
			violations = append(violations, Violation{
				Kind: VSafeCA, ArcRid: rid, Arc: row.Arc,
				Detail: "critical_arc_without_safe_sibling",
			})
		}
		if row.CV == 1 && row.LS == -1 {
			violations = append(violations, Violation{
				Kind: VLoopSafe, ArcRid: rid, Arc: row.Arc,
				Detail: "reuse_limit_not_exceeding_eru",
			})
		}
	}

	out := make([]MatrixRow, 0, len(order))
	lsafe := true
	for _, rid := range order {
		row := *rows[rid]
		out = append(out, row)
		if !row.LSafe() {
			lsafe = false
		}
	}
	return Result{Rows: out, Violations: violations, LSafe: lsafe}
}

// cycleVectorSign computes spec §4.7's cv: -1 if a is a critical arc in
// some cycle, +1 if it is in a non-critical cycle, 0 otherwise.
func cycleVectorSign(idx *cycle.Index, a rmodel.Arc) int {
	if idx.IsCritical(a.Rid) {
		return -1
	}
	if idx.InAnyCycle(a.Rid) {
		return 1
	}
	return 0
}

// outCycleVectorSign computes spec §4.7's ocv.
func outCycleVectorSign(r rmodel.Region, idx *cycle.Index, a rmodel.Arc, cv int) int {
	if cv == -1 {
		for _, sib := range r.Outgoing(a.Source) {
			if sib.Rid == a.Rid {
				continue
			}
			if cycleVectorSign(idx, sib) != -1 {
				return 1 // safe branch: a sibling escapes the critical cycle
			}
		}
		return -1
	}
	if idx.InAnyCycle(a.Rid) {
		return 1
	}
	return 0
}

// loopSafenessSign computes spec §4.7's ls.
func loopSafenessSign(idx *cycle.Index, a rmodel.Arc, cv int) int {
	if cv != 1 {
		return 0
	}
	if a.L > a.ERU {
		return 1
	}
	return -1
}

// applyJoinSafeness evaluates spec §4.7's join-safeness rules (a)-(f) for
// join j and returns the Violations it found. Each rule marks only the
// specific arc it found at fault — never the whole of j.Incoming — the
// way mark_arc_unsafe does in the original: a split's one bad outgoing
// arc, an intermediate vertex's one escaping arc, the later-occurring
// duplicate of a repeated AND-join condition, the arcs diverging from an
// OR/AND-join's majority condition or L value.
func applyJoinSafeness(r rmodel.Region, adj *rgraph.Adjacency, j join.Join, rows map[string]*MatrixRow, opts Options) []Violation {
	splits := candidateSplits(r, adj, j.Vertex, opts.DepthCap)

	var violations []Violation
	markRow := func(rid string, arc rmodel.Arc, detail string) {
		row := rows[rid]
		row.JS = -1
		row.JoinSafe = literalOR(signed(-1, arc.C), Eps)
		violations = append(violations, Violation{Kind: VJoinSafe, ArcRid: rid, Arc: arc, Detail: detail})
	}

	lastArcOf := map[string]bool{} // rid of any arc that is the final hop of a split→j path

	for _, s := range splits {
		paths := rgraph.AllPaths(adj, s, j.Vertex, opts.DepthCap)
		pathVertexSet := map[rmodel.Vertex]bool{s: true, j.Vertex: true}
		startedRid := map[string]bool{}
		for _, p := range paths {
			if len(p) == 0 {
				continue
			}
			startedRid[p[0].Rid] = true
			lastArcOf[p[len(p)-1].Rid] = true
			for _, v := range p.Vertices() {
				pathVertexSet[v] = true
			}
		}
		// rule (a): mark only the specific outgoing arc of s that starts no
		// path to j, mirroring validate_split_to_join_path's per-"{split},
		// {outgoing}" marking — s's other outgoing arcs stay safe.
		for _, oe := range r.Outgoing(s) {
			if !startedRid[oe.Rid] {
				markRow(oe.Rid, oe, "split_path_structural")
			}
		}
		// rule (b): mark only the specific arc by which an intermediate
		// path vertex escapes the path set, mirroring
		// check_intermediate_node_connections's per-vertex marking.
		for _, p := range paths {
			vs := p.Vertices()
			for _, v := range vs[1 : len(vs)-1] {
				for _, oe := range r.Outgoing(v) {
					if oe.Target != j.Vertex && !pathVertexSet[oe.Target] {
						markRow(oe.Rid, oe, "split_path_structural")
					}
				}
			}
		}
	}

	// rule (c): when j has at least one candidate split, an incoming arc
	// that is never the final hop of any split→j path is unsafe. Vacuous
	// when j has no split upstream at all — nothing for this rule to
	// check an incoming arc's path membership against.
	if len(splits) > 0 {
		for _, ia := range j.Incoming {
			if !lastArcOf[ia.Rid] {
				markRow(ia.Rid, ia, "arc_not_on_valid_path")
			}
		}
	}

	// rule (d): condition-based violations, already scoped to the specific
	// offending incoming arcs by conditionCheck.
	for _, fa := range conditionCheck(j, opts) {
		markRow(fa.arc.Rid, fa.arc, fa.detail)
	}

	// rule (e): AND-join incoming arcs whose L diverges from the
	// majority, mirroring check_equal_l_values's reference_l_value rule.
	if j.Kind == join.AND {
		for _, fa := range andUnequalL(j.Incoming) {
			markRow(fa.arc.Rid, fa.arc, fa.detail)
		}
	}

	// rule (f): each incoming arc's own JoinSafe additionally requires its
	// own SafeCA (OR-joins) or LoopSafe (AND/MIX-joins) to be non-negative.
	for _, ia := range j.Incoming {
		row := rows[ia.Rid]
		if j.Kind == join.OR {
			if !row.SafeCA.NonNegative() {
				markRow(ia.Rid, ia, "or_requires_nonnegative_safeCA")
			}
		} else if !row.LoopSafe.NonNegative() {
			markRow(ia.Rid, ia, "and_mix_requires_nonnegative_loopsafe")
		}
	}

	return violations
}

// candidateSplits returns, in r's vertex-insertion order, every vertex
// with out-degree ≥ 2 that can reach target via a simple path.
func candidateSplits(r rmodel.Region, adj *rgraph.Adjacency, target rmodel.Vertex, depthCap int) []rmodel.Vertex {
	var splits []rmodel.Vertex
	for _, v := range r.Vertices() {
		if v == target || len(r.Outgoing(v)) < 2 {
			continue
		}
		if len(rgraph.AllPaths(adj, v, target, depthCap)) > 0 {
			splits = append(splits, v)
		}
	}
	return splits
}

// flaggedArc pairs an offending incoming arc with the detail tag its
// violation should carry.
type flaggedArc struct {
	arc    rmodel.Arc
	detail string
}

// andUnequalL marks only the AND-join incoming arcs whose L differs from
// the majority (mode) L value, mirroring check_equal_l_values's
// reference_l_value = max(l_values, key=l_values.count) rule: arcs
// sharing the majority L stay safe. Ties break toward the L value that
// occurs earliest among j.Incoming, matching max()'s first-encountered
// semantics over a list.
func andUnequalL(incoming []rmodel.Arc) []flaggedArc {
	counts := map[int]int{}
	firstIdx := map[int]int{}
	for i, a := range incoming {
		if _, ok := firstIdx[a.L]; !ok {
			firstIdx[a.L] = i
		}
		counts[a.L]++
	}
	if len(counts) < 2 {
		return nil
	}
	reference, bestCount, bestIdx := 0, -1, len(incoming)
	for l, n := range counts {
		if idx := firstIdx[l]; n > bestCount || (n == bestCount && idx < bestIdx) {
			reference, bestCount, bestIdx = l, n, idx
		}
	}
	var flagged []flaggedArc
	for _, a := range incoming {
		if a.L != reference {
			flagged = append(flagged, flaggedArc{a, "unequal_l_value"})
		}
	}
	return flagged
}

// conditionCheck applies spec §4.7 rule (d), returning only the specific
// incoming arcs that violate it.
func conditionCheck(j join.Join, opts Options) []flaggedArc {
	switch j.Kind {
	case join.AND:
		return andDuplicateConditions(j.Incoming)
	case join.OR:
		return orDifferentConditions(j.Incoming)
	case join.MIX:
		if opts.MixJoinsAllowed {
			return nil
		}
		return mixDifferentConditions(j.Incoming)
	}
	return nil
}

// andDuplicateConditions marks only the later-occurring arc(s) of each
// repeated non-ε condition among an AND-join's incoming arcs, mirroring
// check_duplicate_conditions's AND-JOIN branch (duplicate_arcs[1:]): the
// first arc to carry a condition stays safe.
func andDuplicateConditions(incoming []rmodel.Arc) []flaggedArc {
	counts := map[string]int{}
	for _, a := range incoming {
		if !a.IsUnconditional() {
			counts[a.C]++
		}
	}
	seen := map[string]bool{}
	var flagged []flaggedArc
	for _, a := range incoming {
		if a.IsUnconditional() || counts[a.C] < 2 {
			continue
		}
		if seen[a.C] {
			flagged = append(flagged, flaggedArc{a, "and_join_duplicate_condition"})
		}
		seen[a.C] = true
	}
	return flagged
}

// orDifferentConditions marks the OR-join incoming arcs whose condition
// differs from the majority (mode) condition, mirroring
// check_duplicate_conditions's OR-JOIN branch. Ties break toward the
// condition occurring earliest among j.Incoming.
func orDifferentConditions(incoming []rmodel.Arc) []flaggedArc {
	counts := map[string]int{}
	firstIdx := map[string]int{}
	for i, a := range incoming {
		if _, ok := firstIdx[a.C]; !ok {
			firstIdx[a.C] = i
		}
		counts[a.C]++
	}
	if len(counts) < 2 {
		return nil
	}
	reference, bestCount, bestIdx := "", -1, len(incoming)
	for cond, n := range counts {
		if idx := firstIdx[cond]; n > bestCount || (n == bestCount && idx < bestIdx) {
			reference, bestCount, bestIdx = cond, n, idx
		}
	}
	var flagged []flaggedArc
	for _, a := range incoming {
		if a.C != reference {
			flagged = append(flagged, flaggedArc{a, "or_join_different_conditions"})
		}
	}
	return flagged
}

// mixDifferentConditions marks the MIX-join incoming non-ε arcs whose
// condition differs from the first non-ε condition encountered among
// j.Incoming, mirroring check_duplicate_conditions's MIX-JOIN branch.
func mixDifferentConditions(incoming []rmodel.Arc) []flaggedArc {
	reference, have := "", false
	for _, a := range incoming {
		if !a.IsUnconditional() {
			reference, have = a.C, true
			break
		}
	}
	if !have {
		return nil
	}
	distinct := map[string]bool{}
	for _, a := range incoming {
		if !a.IsUnconditional() {
			distinct[a.C] = true
		}
	}
	if len(distinct) < 2 {
		return nil
	}
	var flagged []flaggedArc
	for _, a := range incoming {
		if !a.IsUnconditional() && a.C != reference {
			flagged = append(flagged, flaggedArc{a, "mix_join_different_conditions"})
		}
	}
	return flagged
}
