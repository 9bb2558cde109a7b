package contraction

import (
	"fmt"

	"github.com/katalvlaran/rdlt/rgraph"
	"github.com/katalvlaran/rdlt/rmodel"
)

type pairKey struct {
	source, target rmodel.Vertex
}

// Run contracts r from its unique source under spec §4.8's growing
// superset discipline. If r has no unique source or no unique sink
// (ErrMultipleSourcesOrSinks or ErrEmptyRegion from package rgraph), it
// returns the zero Report.
func Run(r rmodel.Region) Report {
	source, _, err := rgraph.SourceAndSink(r)
	if err != nil {
		return Report{}
	}

	pairOf := make(map[string]pairKey, len(r)) // rid -> its (source,target) pair
	siblingsOf := make(map[pairKey][]string, len(r))
	for _, a := range r {
		key := pairKey{a.Source, a.Target}
		pairOf[a.Rid] = key
		siblingsOf[key] = append(siblingsOf[key], a.Rid)
	}

	superset := map[string]bool{rmodel.Epsilon: true}
	for _, a := range r.Outgoing(source) {
		if !a.IsUnconditional() {
			superset[a.C] = true
		}
	}

	reached := map[rmodel.Vertex]bool{source: true}
	reachedOrder := []rmodel.Vertex{source}
	contractedPair := map[pairKey]bool{}
	unreached := make(map[string]bool, len(r))
	for _, a := range r {
		unreached[a.Rid] = true
	}

	var contractedPath, successful []rmodel.Arc
	var failed []FailedContraction

	for {
		candidates := collectCandidates(r, reachedOrder, contractedPair, unreached)
		if len(candidates) == 0 {
			break
		}

		var roundFailed []FailedContraction
		progressed := false
		for _, a := range candidates {
			key := pairOf[a.Rid]
			if contractedPair[key] {
				continue // collapsed by an earlier candidate in this same round
			}
			ok, reason, conflicts := canContract(r, a, superset)
			if !ok {
				roundFailed = append(roundFailed, FailedContraction{Arc: a, Reason: reason, ConflictingArcs: conflicts})
				continue
			}

			contractedPair[key] = true
			for _, rid := range siblingsOf[key] {
				unreached[rid] = false
			}
			successful = append(successful, a)
			contractedPath = append(contractedPath, a)
			progressed = true

			if !reached[a.Target] {
				reached[a.Target] = true
				reachedOrder = append(reachedOrder, a.Target)
			}
			for _, oe := range r.Outgoing(a.Target) {
				if !superset[oe.C] {
					superset[oe.C] = true
				}
			}
		}
		failed = roundFailed // spec §4.8: failed arcs are retried once Σ grows, so each round's
		// failure list fully replaces the last — a prior failure that now
		// succeeds must not linger as reported-failed.
		if !progressed {
			break
		}
	}

	return Report{ContractedPath: contractedPath, SuccessfulContractions: successful, FailedContractions: failed}
}

// ForViolations maps Run's single region-level Report to every violation
// rid, matching spec §4.8's "emits, per violation" framing (see doc.go:
// the result does not actually depend on which arc is violating).
func ForViolations(r rmodel.Region, violationRids []string) map[string]Report {
	report := Run(r)
	out := make(map[string]Report, len(violationRids))
	for _, rid := range violationRids {
		out[rid] = report
	}
	return out
}

// collectCandidates gathers, in reached-vertex order then region-arc
// order, every outgoing arc of a reached vertex whose pair has not yet
// been contracted and whose arc is still unreached — deduplicating
// parallel arcs to the same pair within a single round.
func collectCandidates(r rmodel.Region, reachedOrder []rmodel.Vertex, contractedPair map[pairKey]bool, unreached map[string]bool) []rmodel.Arc {
	seenThisRound := map[pairKey]bool{}
	var out []rmodel.Arc
	for _, v := range reachedOrder {
		for _, a := range r.Outgoing(v) {
			if !unreached[a.Rid] {
				continue
			}
			key := pairKey{a.Source, a.Target}
			if contractedPair[key] || seenThisRound[key] {
				continue
			}
			seenThisRound[key] = true
			out = append(out, a)
		}
	}
	return out
}

// canContract applies spec §4.8's contractibility rule: a is contractible
// w.r.t. superset iff it is the only incoming arc of its target, or every
// OTHER incoming arc of the target has a condition already in superset
// (or is itself unconditional).
func canContract(r rmodel.Region, a rmodel.Arc, superset map[string]bool) (bool, string, []rmodel.Arc) {
	incoming := r.Incoming(a.Target)
	if len(incoming) <= 1 {
		return true, "", nil
	}

	var conflicts []rmodel.Arc
	for _, other := range incoming {
		if other.Rid == a.Rid {
			continue
		}
		if !other.IsUnconditional() && !superset[other.C] {
			conflicts = append(conflicts, other)
		}
	}
	if len(conflicts) > 0 {
		return false, fmt.Sprintf("incoming_condition_not_in_superset(%d conflicting)", len(conflicts)), conflicts
	}
	return true, "", nil
}
