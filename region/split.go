package region

import (
	"fmt"

	"github.com/katalvlaran/rdlt/rmodel"
)

// BridgeKey identifies an in- or out-bridge by its endpoints, matching an
// arc's (Source, Target) pair.
type BridgeKey struct {
	Source rmodel.Vertex
	Target rmodel.Vertex
}

// Input is the raw, pre-region arc list produced by the (out-of-scope)
// file-format parser: Rid is not yet assigned.
type Input struct {
	Arcs    []rmodel.Arc // Rid ignored; Source/Target/L/C are authoritative
	Centers []rmodel.Vertex
	In      []BridgeKey
	Out     []BridgeKey
}

// Result is the outcome of splitting: R1 plus one R2 per center, keyed by
// center vertex, in the order Centers was given (Order preserves that).
type Result struct {
	R1    rmodel.Region
	R2    map[rmodel.Vertex]rmodel.Region
	Order []rmodel.Vertex // center iteration order, for deterministic reporting
}

// Split partitions in.Arcs into R1 and one R2 per center, per spec §4.3.
func Split(in Input) (Result, error) {
	if err := validateBridges(in); err != nil {
		return Result{}, err
	}

	bridgeSet := make(map[BridgeKey]struct{}, len(in.In)+len(in.Out))
	for _, b := range in.In {
		bridgeSet[b] = struct{}{}
	}
	for _, b := range in.Out {
		bridgeSet[b] = struct{}{}
	}

	claimedVertex := make(map[rmodel.Vertex]rmodel.Vertex, len(in.Arcs)*2) // vertex -> claiming center
	reachablePerCenter := make(map[rmodel.Vertex]map[rmodel.Vertex]bool, len(in.Centers))

	for _, c := range in.Centers {
		reach := reachableWithoutBridges(in.Arcs, bridgeSet, c)
		reachablePerCenter[c] = reach
		for v := range reach {
			if _, already := claimedVertex[v]; !already {
				claimedVertex[v] = c
			}
		}
	}

	r2raw := make(map[rmodel.Vertex][]rmodel.Arc, len(in.Centers))
	var r1raw []rmodel.Arc

	for _, a := range in.Arcs {
		key := BridgeKey{Source: a.Source, Target: a.Target}
		if _, isBridge := bridgeSet[key]; isBridge {
			r1raw = append(r1raw, a)
			continue
		}
		center, claimedBySrc := claimedVertex[a.Source]
		center2, claimedByDst := claimedVertex[a.Target]
		if claimedBySrc && claimedByDst && center == center2 &&
			reachablePerCenter[center][a.Source] && reachablePerCenter[center][a.Target] {
			r2raw[center] = append(r2raw[center], a)
			continue
		}
		r1raw = append(r1raw, a)
	}

	r1 := make(rmodel.Region, len(r1raw))
	for i, a := range r1raw {
		a.Rid = fmt.Sprintf("R1-%d", i)
		r1[i] = a
	}

	r2 := make(map[rmodel.Vertex]rmodel.Region, len(in.Centers))
	for i, c := range in.Centers {
		arcs := r2raw[c]
		out := make(rmodel.Region, len(arcs))
		for j, a := range arcs {
			a.Rid = fmt.Sprintf("R%d-%d", i+2, j)
			out[j] = a
		}
		r2[c] = out
	}

	return Result{R1: r1, R2: r2, Order: append([]rmodel.Vertex(nil), in.Centers...)}, nil
}

// reachableWithoutBridges returns the set of vertices reachable from
// center by following arcs (in either direction) that are not bridges.
func reachableWithoutBridges(arcs []rmodel.Arc, bridgeSet map[BridgeKey]struct{}, center rmodel.Vertex) map[rmodel.Vertex]bool {
	adjacent := make(map[rmodel.Vertex][]rmodel.Vertex)
	for _, a := range arcs {
		key := BridgeKey{Source: a.Source, Target: a.Target}
		if _, isBridge := bridgeSet[key]; isBridge {
			continue
		}
		adjacent[a.Source] = append(adjacent[a.Source], a.Target)
		adjacent[a.Target] = append(adjacent[a.Target], a.Source)
	}

	visited := map[rmodel.Vertex]bool{center: true}
	stack := []rmodel.Vertex{center}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range adjacent[v] {
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return visited
}

func validateBridges(in Input) error {
	known := make(map[BridgeKey]struct{}, len(in.Arcs))
	for _, a := range in.Arcs {
		known[BridgeKey{Source: a.Source, Target: a.Target}] = struct{}{}
	}
	for _, b := range in.In {
		if _, ok := known[b]; !ok {
			return fmt.Errorf("%w: in-bridge %s, %s", ErrUnknownBridge, b.Source, b.Target)
		}
	}
	for _, b := range in.Out {
		if _, ok := known[b]; !ok {
			return fmt.Errorf("%w: out-bridge %s, %s", ErrUnknownBridge, b.Source, b.Target)
		}
	}
	return nil
}
