package cycle

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/rdlt/rmodel"
)

// Color is a DFS visitation marker: White (unvisited), Gray (on the
// current recursion stack), Black (fully explored).
type Color int

const (
	White Color = iota
	Gray
	Black
)

// Cycle is a non-empty, ordered, closed walk of arcs, plus its critical
// arcs (those of minimum L within the cycle; ties are retained).
type Cycle struct {
	ID           uuid.UUID
	Arcs         []rmodel.Arc
	CriticalArcs []rmodel.Arc
}

// Contains reports whether the cycle includes the arc with the given rid.
func (c Cycle) Contains(rid string) bool {
	for _, a := range c.Arcs {
		if a.Rid == rid {
			return true
		}
	}
	return false
}

// MinL returns the minimum L over the cycle's arcs.
func (c Cycle) MinL() int {
	min := c.Arcs[0].L
	for _, a := range c.Arcs[1:] {
		if a.L < min {
			min = a.L
		}
	}
	return min
}
