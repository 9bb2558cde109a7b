package eru

import (
	"github.com/katalvlaran/rdlt/cycle"
	"github.com/katalvlaran/rdlt/rmodel"
)

// Compute returns a fresh region with each arc's ERU field set: the
// minimum L over every cycle in idx containing that arc, or 0 if the arc
// is in no cycle. r is not mutated.
func Compute(r rmodel.Region, idx *cycle.Index) rmodel.Region {
	out := make(rmodel.Region, len(r))
	for i, a := range r {
		out[i] = a
		out[i].ERU = eruOf(a.Rid, idx)
	}
	return out
}

func eruOf(rid string, idx *cycle.Index) int {
	cycles := idx.CyclesOf(rid)
	if len(cycles) == 0 {
		return 0
	}
	min := cycles[0].MinL()
	for _, c := range cycles[1:] {
		if m := c.MinL(); m < min {
			min = m
		}
	}
	return min
}
