package activity

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/rdlt/rmodel"
)

// Extract enumerates activity profiles over r from source to sink, per
// spec §4.9. contractionPath is tried before other outgoing arcs at every
// step (tie-break); failed is excluded from consideration entirely.
// isBridge/isOutBridge classify r's arcs for the reset-on-out-bridge rule.
func Extract(r rmodel.Region, source, sink rmodel.Vertex, contractionPath []rmodel.Arc, failed []rmodel.Arc, isBridge, isOutBridge func(rmodel.Arc) bool, opts Options) Result {
	depthCap := opts.DepthCap
	if depthCap <= 0 {
		depthCap = DefaultDepthCap
	}

	failedRids := make(map[string]bool, len(failed))
	for _, a := range failed {
		failedRids[a.Rid] = true
	}
	contractionRank := make(map[string]int, len(contractionPath))
	for i, a := range contractionPath {
		contractionRank[a.Rid] = i
	}
	reachable := reachableFrom(r, source)

	e := &extraction{
		r:               r,
		sink:            sink,
		failedRids:      failedRids,
		contractionRank: contractionRank,
		reachable:       reachable,
		isBridge:        isBridge,
		isOutBridge:     isOutBridge,
		depthCap:        depthCap,
		memo:            make(map[string]bool),
	}

	// spec §4.9: "at depth 0 the first arc from source is always recorded
	// as timestep 1, even if the search immediately deadlocks".
	for _, a := range contractionPath {
		if a.Source == source {
			e.profiles = append(e.profiles, Profile{
				Path:        []rmodel.Vertex{source, a.Target},
				Timesteps:   [][]rmodel.Arc{{a}},
				ReachedSink: false,
				Reason:      "deadlock",
			})
			break
		}
	}

	e.explore(source, 0, []rmodel.Vertex{source}, nil, map[string]int{}, map[rmodel.Vertex]string{})

	return buildResult(r, reachable, failedRids, e.profiles)
}

type extraction struct {
	r               rmodel.Region
	sink            rmodel.Vertex
	failedRids      map[string]bool
	contractionRank map[string]int
	reachable       map[rmodel.Vertex]bool
	isBridge        func(rmodel.Arc) bool
	isOutBridge     func(rmodel.Arc) bool
	depthCap        int
	memo            map[string]bool
	profiles        []Profile
}

func (e *extraction) explore(v rmodel.Vertex, depth int, path []rmodel.Vertex, timesteps [][]rmodel.Arc, traversed map[string]int, commit map[rmodel.Vertex]string) {
	sig := signature(v, traversed, commit)
	if e.memo[sig] {
		return
	}
	e.memo[sig] = true

	if depth > e.depthCap {
		e.record(path, timesteps, false, "deadlock")
		return
	}
	if v == e.sink {
		e.record(path, timesteps, true, "")
		return
	}

	valid := e.validOutgoing(v, traversed, commit)
	if len(valid) == 0 {
		e.record(path, timesteps, false, "no_valid_outgoing_arcs")
		return
	}

	for _, a := range valid {
		newTraversed := cloneCounts(traversed)
		newTraversed[a.Rid]++
		newCommit := cloneCommit(commit)
		if !a.IsUnconditional() {
			newCommit[a.Target] = a.C
		}
		if e.isOutBridge(a) {
			newCommit = map[rmodel.Vertex]string{}
			for rid := range newTraversed {
				if arc, ok := e.r.ByRid(rid); ok && !e.isBridge(arc) {
					newTraversed[rid] = 0
				}
			}
		}
		newPath := append(append([]rmodel.Vertex(nil), path...), a.Target)
		newTimesteps := append(append([][]rmodel.Arc(nil), timesteps...), []rmodel.Arc{a})
		e.explore(a.Target, depth+1, newPath, newTimesteps, newTraversed, newCommit)
	}
}

// validOutgoing selects v's outgoing arcs eligible for firing: both
// endpoints reachable from source, not a failed contraction, condition
// compatible with any existing commitment on the target, and under its l
// limit. Contraction-path arcs sort first (tie-break).
func (e *extraction) validOutgoing(v rmodel.Vertex, traversed map[string]int, commit map[rmodel.Vertex]string) []rmodel.Arc {
	outs := e.r.Outgoing(v)
	ordered := make([]rmodel.Arc, 0, len(outs))
	var rest []rmodel.Arc
	for _, a := range outs {
		if _, ok := e.contractionRank[a.Rid]; ok {
			ordered = append(ordered, a)
		} else {
			rest = append(rest, a)
		}
	}
	ordered = append(ordered, rest...)

	var valid []rmodel.Arc
	for _, a := range ordered {
		if !e.reachable[a.Source] || !e.reachable[a.Target] {
			continue
		}
		if e.failedRids[a.Rid] {
			continue
		}
		if traversed[a.Rid] >= a.L {
			continue
		}
		if c, ok := commit[a.Target]; ok && !a.IsUnconditional() && c != a.C {
			continue
		}
		valid = append(valid, a)
	}
	return valid
}

func (e *extraction) record(path []rmodel.Vertex, timesteps [][]rmodel.Arc, reachedSink bool, reason string) {
	e.profiles = append(e.profiles, Profile{
		Path:        append([]rmodel.Vertex(nil), path...),
		Timesteps:   append([][]rmodel.Arc(nil), timesteps...),
		ReachedSink: reachedSink,
		Reason:      reason,
	})
}

func cloneCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneCommit(m map[rmodel.Vertex]string) map[rmodel.Vertex]string {
	out := make(map[rmodel.Vertex]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// signature is the DFS memoization key: (vertex, traversed arc counts,
// per-target condition commitments), per spec §4.9's state description.
func signature(v rmodel.Vertex, traversed map[string]int, commit map[rmodel.Vertex]string) string {
	tparts := make([]string, 0, len(traversed))
	for rid, c := range traversed {
		if c > 0 {
			tparts = append(tparts, rid+":"+strconv.Itoa(c))
		}
	}
	sort.Strings(tparts)

	cparts := make([]string, 0, len(commit))
	for vtx, cond := range commit {
		cparts = append(cparts, vtx+":"+cond)
	}
	sort.Strings(cparts)

	return v + "|" + strings.Join(tparts, ",") + "|" + strings.Join(cparts, ",")
}

// reachableFrom returns the set of vertices reachable from source by
// following r's arcs forward.
func reachableFrom(r rmodel.Region, source rmodel.Vertex) map[rmodel.Vertex]bool {
	visited := map[rmodel.Vertex]bool{source: true}
	stack := []rmodel.Vertex{source}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range r.Outgoing(v) {
			if !visited[a.Target] {
				visited[a.Target] = true
				stack = append(stack, a.Target)
			}
		}
	}
	return visited
}

// buildResult derives the Classical Soundness verdict from the
// enumerated profiles, per spec §4.9.
func buildResult(r rmodel.Region, reachable map[rmodel.Vertex]bool, failedRids map[string]bool, profiles []Profile) Result {
	properTermination := true
	fired := map[string]bool{}
	for _, p := range profiles {
		if !p.ReachedSink {
			properTermination = false
		}
		for _, ts := range p.Timesteps {
			for _, a := range ts {
				fired[a.Rid] = true
			}
		}
	}

	var neverFired []rmodel.Arc
	for _, a := range r {
		if !reachable[a.Source] || !reachable[a.Target] || failedRids[a.Rid] {
			continue
		}
		if !fired[a.Rid] {
			neverFired = append(neverFired, a)
		}
	}
	liveness := len(neverFired) == 0

	return Result{
		Profiles:          profiles,
		ProperTermination: properTermination,
		Liveness:          liveness,
		ClassicallySound:  properTermination && liveness,
		NeverFired:        neverFired,
	}
}
