// File: paths.go
// Role: enumerate all simple paths between two vertices (C1's all_paths).
//
// Grounded on dfs/dfs.go's traversal discipline, but using an explicit
// frame stack instead of Go call recursion — design note 9 ("Recursion
// depth: C1 and C2 are recursive. Implementers must use explicit stacks to
// tolerate long chains"). Ties are broken by neighbor-insertion order,
// i.e. Adjacency.Neighbors' order, per spec §4.1.
package rgraph

import "github.com/katalvlaran/rdlt/rmodel"

// Path is a simple path: an ordered list of arcs whose sources/targets
// chain together, with no repeated vertex.
type Path []rmodel.Arc

// Vertices returns the path's vertex sequence, including src and dst.
func (p Path) Vertices() []rmodel.Vertex {
	if len(p) == 0 {
		return nil
	}
	out := make([]rmodel.Vertex, 0, len(p)+1)
	out = append(out, p[0].Source)
	for _, a := range p {
		out = append(out, a.Target)
	}
	return out
}

// frame is one level of the explicit DFS stack used by AllPaths.
type frame struct {
	vertex   rmodel.Vertex
	nextArcI int // index into Neighbors(vertex) to try next
}

// AllPaths enumerates every simple path from src to dst in adj (no vertex
// repeats). It is finite because simple paths cannot exceed len(vertices).
// depthCap, if > 0, additionally bounds path length (arc count); this ties
// path enumeration to the same ceiling as C9's depth cap (design note 9).
//
// Tie-break / output order: neighbor-insertion order, i.e. the order in
// which Adjacency indexed each vertex's out-arcs (ultimately the input
// Region's insertion order).
func AllPaths(adj *Adjacency, src, dst rmodel.Vertex, depthCap int) []Path {
	if src == dst {
		return nil // a simple path needs distinct endpoints; self-loops are handled separately (spec §4.4 step B)
	}

	var results []Path
	onStack := map[rmodel.Vertex]bool{src: true}
	arcStack := make([]rmodel.Arc, 0, 8)
	stack := []frame{{vertex: src}}

	// pop removes the top frame and, unless it is the root (which has no
	// arc leading into it), its matching arcStack entry.
	pop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) > 0 { // not the root: one arc led here
			onStack[top.vertex] = false
			arcStack = arcStack[:len(arcStack)-1]
		}
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbors := adj.Neighbors(top.vertex)

		if depthCap > 0 && len(arcStack) >= depthCap {
			pop() // path length ceiling reached: backtrack without exploring further
			continue
		}

		if top.nextArcI >= len(neighbors) {
			pop() // exhausted this vertex's out-arcs: backtrack
			continue
		}

		arc := neighbors[top.nextArcI]
		top.nextArcI++

		if arc.Target == dst {
			found := append(append([]rmodel.Arc(nil), arcStack...), arc)
			results = append(results, Path(found))
			continue
		}
		if onStack[arc.Target] {
			continue // would revisit a vertex already on the current path
		}

		onStack[arc.Target] = true
		arcStack = append(arcStack, arc)
		stack = append(stack, frame{vertex: arc.Target})
	}

	return results
}

// HasClosedWalk reports whether any closed walk u ⇒ u exists, i.e. whether
// u can reach itself by following one or more arcs. Unlike AllPaths, this
// explores every walk (not just simple paths), since a reset cycle may
// revisit intermediate vertices.
func HasClosedWalk(adj *Adjacency, u rmodel.Vertex) bool {
	visited := map[rmodel.Vertex]bool{}
	var stack []rmodel.Vertex
	for _, a := range adj.Neighbors(u) {
		if a.Target == u {
			return true
		}
		if !visited[a.Target] {
			visited[a.Target] = true
			stack = append(stack, a.Target)
		}
	}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range adj.Neighbors(v) {
			if a.Target == u {
				return true
			}
			if !visited[a.Target] {
				visited[a.Target] = true
				stack = append(stack, a.Target)
			}
		}
	}
	return false
}
