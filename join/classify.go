package join

import "github.com/katalvlaran/rdlt/rmodel"

// Classify finds every join vertex in r and classifies its Kind, per spec
// §4.6. isBridge reports whether an arc crosses a region boundary (an
// in-/out-bridge, as produced by package region's split); callers analyzing
// a region with no bridges (e.g. R2 alone) may pass a predicate that always
// returns false.
//
// A vertex is a join only if it has at least two incoming arcs AND all of
// them agree on bridge-classification (all bridges, or all non-bridges);
// a vertex whose incoming arcs are a mix of bridge and non-bridge arcs is
// not classified as a join at all. Results are returned in the order join
// vertices are first seen as an arc target in r.
func Classify(r rmodel.Region, isBridge func(rmodel.Arc) bool) []Join {
	var order []rmodel.Vertex
	groups := make(map[rmodel.Vertex][]rmodel.Arc)
	seen := make(map[rmodel.Vertex]bool)
	for _, a := range r {
		if !seen[a.Target] {
			seen[a.Target] = true
			order = append(order, a.Target)
		}
		groups[a.Target] = append(groups[a.Target], a)
	}

	var joins []Join
	for _, v := range order {
		incoming := groups[v]
		if len(incoming) < 2 {
			continue
		}
		if !shareBridgeClassification(incoming, isBridge) {
			continue
		}
		joins = append(joins, Join{
			Vertex:   v,
			Incoming: incoming,
			Kind:     classifyKind(incoming),
		})
	}
	return joins
}

func shareBridgeClassification(incoming []rmodel.Arc, isBridge func(rmodel.Arc) bool) bool {
	first := isBridge(incoming[0])
	for _, a := range incoming[1:] {
		if isBridge(a) != first {
			return false
		}
	}
	return true
}

// classifyKind applies spec §4.6's AND/OR/MIX rules to a join's incoming
// arcs.
func classifyKind(incoming []rmodel.Arc) Kind {
	allUnconditional := true
	conditions := make(map[string]int) // condition -> occurrence count
	var order []string
	for _, a := range incoming {
		if !a.IsUnconditional() {
			allUnconditional = false
		}
		if _, ok := conditions[a.C]; !ok {
			order = append(order, a.C)
		}
		conditions[a.C]++
	}

	if allUnconditional {
		return OR
	}
	if len(order) == 1 && !isEpsilon(order[0]) {
		return OR
	}

	noEpsilon := conditions[rmodel.Epsilon] == 0
	pairwiseDistinct := true
	for _, c := range conditions {
		if c > 1 {
			pairwiseDistinct = false
			break
		}
	}
	if noEpsilon && pairwiseDistinct {
		return AND
	}
	return MIX
}

func isEpsilon(c string) bool {
	return c == rmodel.Epsilon
}
