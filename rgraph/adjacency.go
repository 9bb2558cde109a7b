// File: adjacency.go
// Role: build an ordered adjacency index from an rmodel.Region and expose
// Neighbors(v) against it.
package rgraph

import "github.com/katalvlaran/rdlt/rmodel"

// Adjacency is a build-once, read-only view of a Region's out-edges, kept
// in Region insertion order. It is the single-threaded counterpart of the
// teacher's core.Graph adjacencyList (core/methods.go): no locks, because
// spec §5 guarantees one synchronous pass per Region.
type Adjacency struct {
	region  rmodel.Region
	out     map[rmodel.Vertex][]rmodel.Arc
	order   []rmodel.Vertex // first-seen vertex order, for deterministic full scans
	inCount map[rmodel.Vertex]int
}

// Build indexes r's arcs by source vertex, preserving r's arc order within
// each vertex's out-list. Complexity: O(len(r)).
func Build(r rmodel.Region) *Adjacency {
	adj := &Adjacency{
		region:  r,
		out:     make(map[rmodel.Vertex][]rmodel.Arc, len(r)),
		inCount: make(map[rmodel.Vertex]int, len(r)),
	}
	seen := make(map[rmodel.Vertex]struct{}, len(r)*2)
	touch := func(v rmodel.Vertex) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			adj.order = append(adj.order, v)
		}
	}
	for _, a := range r {
		adj.out[a.Source] = append(adj.out[a.Source], a)
		adj.inCount[a.Target]++
		touch(a.Source)
		touch(a.Target)
	}
	return adj
}

// Neighbors returns, in region-insertion order, the arcs leaving v. Parallel
// arcs to the same target are preserved and not deduplicated.
func (a *Adjacency) Neighbors(v rmodel.Vertex) []rmodel.Arc {
	return a.out[v]
}

// Vertices returns all vertices touched by the region, in first-seen order.
func (a *Adjacency) Vertices() []rmodel.Vertex {
	return a.order
}

// InDegree returns the number of arcs targeting v.
func (a *Adjacency) InDegree(v rmodel.Vertex) int {
	return a.inCount[v]
}

// OutDegree returns the number of arcs leaving v.
func (a *Adjacency) OutDegree(v rmodel.Vertex) int {
	return len(a.out[v])
}
