package abstractarc

import (
	"fmt"

	"github.com/katalvlaran/rdlt/region"
	"github.com/katalvlaran/rdlt/rgraph"
	"github.com/katalvlaran/rdlt/rmodel"
)

// Options configures abstract-arc derivation.
type Options struct {
	// DepthCap bounds path/walk enumeration in R2 (0 = unbounded).
	DepthCap int
	// ClosedWalkEnumeration resolves spec §9's first Open Question: when
	// true, self-loop reusability genuinely enumerates simple cycles
	// through the in-bridge target; when false (default), it takes the
	// cheaper "assert existence" reading (reusability fixed at 1) rather
	// than pay for cycle enumeration on every abstract self-loop. This is
	// not a reproduction of get_path_reusability's own self-loop output —
	// that function's non-self-loop branch calls find_all_paths against a
	// still-unconverted self.R2, so its reusability values are an artifact
	// of that bug rather than a reference worth matching exactly.
	ClosedWalkEnumeration bool
}

// Input is everything Build needs about one center's RBS.
type Input struct {
	R1      rmodel.Region
	R2      rmodel.Region
	Center  rmodel.Vertex
	Centers []rmodel.Vertex // the full center set, contributes to V*
	In      []region.BridgeKey
	Out     []region.BridgeKey
}

// Build derives the abstract arcs summarizing in.R2, with fresh rids in
// the R1-* namespace (to be appended to R1 by the caller; abstractarc
// itself does not mutate R1). Returns arcs in a deterministic order:
// Step A arcs in (in-bridge target, abstract vertex) iteration order,
// followed by Step B self-loops in in-bridge order.
func Build(in Input, opts Options) rmodel.Region {
	abstractVertices := abstractVertexSet(in)
	adj := rgraph.Build(in.R2)

	inTargets := uniqueOrdered(targetsOf(in.In))

	var pairs [][2]rmodel.Vertex // Step A (u,v) pairs, in emission order
	seenPair := map[[2]rmodel.Vertex]bool{}
	for _, u := range inTargets {
		if !abstractVertices[u] {
			continue
		}
		for _, v := range orderedAbstractVertices(in) {
			if u == v || seenPair[[2]rmodel.Vertex{u, v}] {
				continue
			}
			if len(rgraph.AllPaths(adj, u, v, opts.DepthCap)) > 0 {
				seenPair[[2]rmodel.Vertex{u, v}] = true
				pairs = append(pairs, [2]rmodel.Vertex{u, v})
			}
		}
	}

	// Step B: every in-bridge target always emits its self-loop.
	seenSelfLoop := map[rmodel.Vertex]bool{}
	for _, u := range inTargets {
		if seenSelfLoop[u] {
			continue
		}
		seenSelfLoop[u] = true
		pairs = append(pairs, [2]rmodel.Vertex{u, u})
	}

	out := make(rmodel.Region, 0, len(pairs))
	for i, p := range pairs {
		u, v := p[0], p[1]
		r := reusability(in, adj, u, v, opts)
		eruVal := 0
		for _, ib := range in.In {
			if ib.Target != u {
				continue
			}
			baseL := lOfBridge(in.R1, ib)
			eruVal += baseL * (r + 1)
		}
		out = append(out, rmodel.Arc{
			Rid:    fmt.Sprintf("R1-abs-%d", i),
			Source: u,
			Target: v,
			L:      eruVal + 1,
			C:      rmodel.Epsilon,
			ERU:    eruVal,
		})
	}
	return out
}

// abstractVertexSet returns V* = centers ∪ {target(i) | i ∈ In} ∪
// {source(o) | o ∈ Out}, as a membership set.
func abstractVertexSet(in Input) map[rmodel.Vertex]bool {
	set := make(map[rmodel.Vertex]bool, len(in.Centers)+len(in.In)+len(in.Out))
	for _, c := range in.Centers {
		set[c] = true
	}
	for _, b := range in.In {
		set[b.Target] = true
	}
	for _, b := range in.Out {
		set[b.Source] = true
	}
	return set
}

// orderedAbstractVertices returns V* in a deterministic order: centers,
// then in-bridge targets, then out-bridge sources, each first-seen-only.
func orderedAbstractVertices(in Input) []rmodel.Vertex {
	seen := map[rmodel.Vertex]bool{}
	var out []rmodel.Vertex
	add := func(v rmodel.Vertex) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, c := range in.Centers {
		add(c)
	}
	for _, b := range in.In {
		add(b.Target)
	}
	for _, b := range in.Out {
		add(b.Source)
	}
	return out
}

func targetsOf(bridges []region.BridgeKey) []rmodel.Vertex {
	out := make([]rmodel.Vertex, len(bridges))
	for i, b := range bridges {
		out[i] = b.Target
	}
	return out
}

func uniqueOrdered(vs []rmodel.Vertex) []rmodel.Vertex {
	seen := map[rmodel.Vertex]bool{}
	var out []rmodel.Vertex
	for _, v := range vs {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// lOfBridge looks up the L attribute of the in-bridge arc itself in R1.
func lOfBridge(r1 rmodel.Region, b region.BridgeKey) int {
	for _, a := range r1 {
		if a.Source == b.Source && a.Target == b.Target {
			return a.L
		}
	}
	return 0
}

// reusability computes spec §4.4 Step C's reusability term for the
// abstract arc u→v.
func reusability(in Input, adj *rgraph.Adjacency, u, v rmodel.Vertex, opts Options) int {
	if u == v {
		if !opts.ClosedWalkEnumeration {
			return 1 // default resolution of the self-loop reusability question: assert existence only
		}
		return countSimpleCyclesThrough(adj, u, opts.DepthCap)
	}
	// Each simple path from u to v visits u exactly once (simple paths
	// never revisit a vertex), so Σ count_of_u_in_p over paths reduces to
	// the path count.
	return len(rgraph.AllPaths(adj, u, v, opts.DepthCap))
}

// countSimpleCyclesThrough counts distinct simple cycles through u in adj,
// by summing simple paths back to u from each of u's direct successors.
func countSimpleCyclesThrough(adj *rgraph.Adjacency, u rmodel.Vertex, depthCap int) int {
	count := 0
	for _, out := range adj.Neighbors(u) {
		if out.Target == u {
			count++ // direct self-loop arc
			continue
		}
		count += len(rgraph.AllPaths(adj, out.Target, u, depthCap))
	}
	return count
}
