// File: index.go
// Role: precompute an arc → containing-cycle index, so downstream
// consumers (package eru, package safety) avoid repeated linear scans
// over the cycle list (design note: "Cycles and cycle-membership lookup:
// precompute arc → cycle_ids as an index; C7's cycle-vector evaluation
// then avoids repeated scans").
package cycle

// Index maps an arc's Rid to the indices (into the Cycles slice it was
// built from) of every cycle containing that arc.
type Index struct {
	Cycles  []Cycle
	byRid   map[string][]int
}

// BuildIndex builds an Index over cycles. Complexity: O(Σ len(cycle)).
func BuildIndex(cycles []Cycle) *Index {
	idx := &Index{Cycles: cycles, byRid: make(map[string][]int)}
	for i, c := range cycles {
		for _, a := range c.Arcs {
			idx.byRid[a.Rid] = append(idx.byRid[a.Rid], i)
		}
	}
	return idx
}

// CyclesOf returns the cycles containing the arc with the given rid.
func (idx *Index) CyclesOf(rid string) []Cycle {
	ids := idx.byRid[rid]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Cycle, len(ids))
	for i, id := range ids {
		out[i] = idx.Cycles[id]
	}
	return out
}

// IsCritical reports whether the arc with the given rid is a critical arc
// in at least one of its containing cycles.
func (idx *Index) IsCritical(rid string) bool {
	for _, c := range idx.CyclesOf(rid) {
		if c.Contains(rid) {
			for _, ca := range c.CriticalArcs {
				if ca.Rid == rid {
					return true
				}
			}
		}
	}
	return false
}

// InAnyCycle reports whether the arc with the given rid belongs to at
// least one cycle.
func (idx *Index) InAnyCycle(rid string) bool {
	return len(idx.byRid[rid]) > 0
}
