package rmodel

import "fmt"

// Epsilon is the sentinel condition label denoting "unconditional". The
// input file spells it "0"; internally it is always normalized to Epsilon.
const Epsilon = "ε"

// Vertex is an opaque string identifier. Set membership and equality are
// by value; Vertex carries no other state.
type Vertex = string

// Arc is a directed edge with attributes per spec §3.
//
//   - Rid is a stable identifier of the form "R<i>-<n>"; equality of two
//     Arc values for identity purposes (as opposed to endpoint-containment
//     queries) is on Rid, never on (Source, Target) — parallel edges are
//     otherwise indistinguishable.
//   - L is the positive integer reuse limit.
//   - C is the condition label; Epsilon denotes unconditional.
//   - ERU is derived by the eRU engine (package eru); zero until computed.
type Arc struct {
	Rid    string
	Source Vertex
	Target Vertex
	L      int
	C      string
	ERU    int
}

// IsUnconditional reports whether the arc's condition is Epsilon.
func (a Arc) IsUnconditional() bool {
	return a.C == Epsilon
}

// String renders the arc as "rid: source, target" for diagnostics.
func (a Arc) String() string {
	return fmt.Sprintf("%s: %s, %s", a.Rid, a.Source, a.Target)
}

// Region is an ordered sequence of Arcs. Duplicates by Rid are forbidden;
// duplicate (Source, Target) pairs are permitted (parallel arcs). Order is
// the input insertion order and is an observable part of the contract: it
// governs neighbor-iteration and therefore tie-breaking in every downstream
// component (spec §5).
type Region []Arc

// ByRid returns the arc with the given Rid, or false if none exists.
// Complexity: O(len(r)).
func (r Region) ByRid(rid string) (Arc, bool) {
	for _, a := range r {
		if a.Rid == rid {
			return a, true
		}
	}
	return Arc{}, false
}

// Vertices returns the distinct vertices touched by r's arcs, in
// first-seen order.
func (r Region) Vertices() []Vertex {
	seen := make(map[Vertex]struct{}, len(r)*2)
	out := make([]Vertex, 0, len(r)*2)
	for _, a := range r {
		for _, v := range [2]Vertex{a.Source, a.Target} {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	return out
}

// Outgoing returns, in region order, the arcs whose Source is v.
func (r Region) Outgoing(v Vertex) []Arc {
	var out []Arc
	for _, a := range r {
		if a.Source == v {
			out = append(out, a)
		}
	}
	return out
}

// Incoming returns, in region order, the arcs whose Target is v.
func (r Region) Incoming(v Vertex) []Arc {
	var out []Arc
	for _, a := range r {
		if a.Target == v {
			out = append(out, a)
		}
	}
	return out
}
