// File: detect.go
// Role: DFS back-edge detection of simple cycles in a region (C2).
package cycle

import (
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/rdlt/rgraph"
	"github.com/katalvlaran/rdlt/rmodel"
)

// dfsFrame is one level of the explicit recursion stack.
type dfsFrame struct {
	vertex   rmodel.Vertex
	nextArcI int
}

// Detect finds the simple cycles of r that a three-color DFS closes by a
// back-edge. Each vertex reappearing on the recursion stack (a Gray→Gray
// back-edge) closes a cycle, extracted as the path slice from its first
// occurrence to the current top, closed back to the re-entry point. An
// arc into an already fully explored (Black) vertex closes nothing, so a
// cycle that is only reachable through such an arc is not reported: the
// result is not necessarily every simple cycle of r. Cycles are
// deduplicated by rotation-normalized arc signature (package-local
// canonicalSignature) and assigned fresh UUIDs. Returns the empty slice
// if r is acyclic; never errors (spec §4.2).
func Detect(r rmodel.Region) []Cycle {
	adj := rgraph.Build(r)
	vertices := adj.Vertices()

	state := make(map[rmodel.Vertex]Color, len(vertices))
	seen := make(map[string]struct{})
	var cycles []Cycle

	for _, start := range vertices {
		if state[start] != White {
			continue
		}
		dfsFrom(adj, start, state, seen, &cycles)
	}

	sort.SliceStable(cycles, func(i, j int) bool {
		return joinSig(ridsOf(cycles[i].Arcs)) < joinSig(ridsOf(cycles[j].Arcs))
	})
	return cycles
}

// dfsFrom runs the explicit-stack DFS rooted at start, recording cycles
// found along the way into *cycles.
func dfsFrom(adj *rgraph.Adjacency, start rmodel.Vertex, state map[rmodel.Vertex]Color, seen map[string]struct{}, cycles *[]Cycle) {
	pathV := []rmodel.Vertex{start}
	pathA := make([]rmodel.Arc, 0, 8) // pathA[i] is the arc entering pathV[i+1]
	state[start] = Gray
	stack := []dfsFrame{{vertex: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := adj.Neighbors(top.vertex)

		if top.nextArcI >= len(neighbors) {
			state[top.vertex] = Black
			stack = stack[:len(stack)-1]
			pathV = pathV[:len(pathV)-1]
			if len(pathA) > 0 {
				pathA = pathA[:len(pathA)-1]
			}
			continue
		}

		arc := neighbors[top.nextArcI]
		top.nextArcI++

		switch state[arc.Target] {
		case White:
			state[arc.Target] = Gray
			pathV = append(pathV, arc.Target)
			pathA = append(pathA, arc)
			stack = append(stack, dfsFrame{vertex: arc.Target})
		case Gray:
			idx := indexOfVertex(pathV, arc.Target)
			if idx < 0 {
				continue
			}
			cycleArcs := append(append([]rmodel.Arc(nil), pathA[idx:]...), arc)
			recordCycle(cycleArcs, seen, cycles)
		case Black:
			// fully explored already: no cycle is recorded through this arc
		}
	}
}

func indexOfVertex(path []rmodel.Vertex, v rmodel.Vertex) int {
	for i, p := range path {
		if p == v {
			return i
		}
	}
	return -1
}

// recordCycle canonicalizes cycleArcs and, if new, appends a fresh Cycle
// (with UUID and critical arcs) to *cycles.
func recordCycle(cycleArcs []rmodel.Arc, seen map[string]struct{}, cycles *[]Cycle) {
	sig, canon := canonicalSignature(cycleArcs)
	if _, ok := seen[sig]; ok {
		return
	}
	seen[sig] = struct{}{}

	*cycles = append(*cycles, Cycle{
		ID:           uuid.New(),
		Arcs:         canon,
		CriticalArcs: criticalArcs(canon),
	})
}

// criticalArcs returns every arc of minimum L within the cycle (ties
// retained), per spec §3.
func criticalArcs(arcs []rmodel.Arc) []rmodel.Arc {
	min := arcs[0].L
	for _, a := range arcs[1:] {
		if a.L < min {
			min = a.L
		}
	}
	var out []rmodel.Arc
	for _, a := range arcs {
		if a.L == min {
			out = append(out, a)
		}
	}
	return out
}
