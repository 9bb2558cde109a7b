// File: rotation.go
// Role: canonicalize a closed arc sequence to its lexicographically
// minimal rotation (or that of its reverse), for cycle deduplication.
//
// Adapted from dfs/utils.go's IndexOf/Reverse/Compare/JoinSig/
// MinimalRotation helpers (Booth's algorithm), generalized from vertex-id
// slices to rmodel.Arc slices keyed by Rid, since spec's arc identity is
// the Rid, not the (source, target) pair (design note "arc identity vs
// key").
package cycle

import (
	"strings"

	"github.com/katalvlaran/rdlt/rmodel"
)

// ridsOf returns the Rid of each arc in order.
func ridsOf(arcs []rmodel.Arc) []string {
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.Rid
	}
	return out
}

// joinSig concatenates rids with commas, producing a dedup signature.
func joinSig(rids []string) string {
	return strings.Join(rids, ",")
}

// reverseArcs returns a new slice with arcs in reverse order.
func reverseArcs(arcs []rmodel.Arc) []rmodel.Arc {
	out := make([]rmodel.Arc, len(arcs))
	for i := range arcs {
		out[i] = arcs[len(arcs)-1-i]
	}
	return out
}

// compareRids lexicographically compares two equal-length rid slices.
func compareRids(a, b []string) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		} else if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// minimalRotationRids implements Booth's algorithm to find the
// lexicographically minimal rotation of s (a slice of Rids). O(n) time.
func minimalRotationRids(s []string) []string {
	n := len(s)
	if n == 0 {
		return s
	}
	doubled := append(append([]string(nil), s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]string, n)
	for i := 0; i < n; i++ {
		res[i] = doubled[k+i]
	}
	return res
}

// canonicalSignature picks the minimal rotation among the cycle's forward
// and reversed rid sequence and returns its joined signature plus the
// corresponding arc slice, reordered to match.
func canonicalSignature(arcs []rmodel.Arc) (string, []rmodel.Arc) {
	rids := ridsOf(arcs)
	rotF := minimalRotationRids(rids)
	rotB := minimalRotationRids(ridsOf(reverseArcs(arcs)))

	ridsPicked, arcsPicked := rotF, rotateArcsTo(arcs, rotF)
	if compareRids(rotB, rotF) < 0 {
		ridsPicked, arcsPicked = rotB, rotateArcsTo(reverseArcs(arcs), rotB)
	}

	return joinSig(ridsPicked), arcsPicked
}

// rotateArcsTo reorders arcs to start at the position implied by rotated
// rid order (rotated is a rotation of ridsOf(arcs)).
func rotateArcsTo(arcs []rmodel.Arc, rotated []string) []rmodel.Arc {
	if len(arcs) == 0 {
		return arcs
	}
	// Find the rotation offset: index in arcs whose Rid equals rotated[0],
	// disambiguated by matching the full sequence (Rids are unique per
	// region, so the first match suffices).
	for start := range arcs {
		if arcs[start].Rid != rotated[0] {
			continue
		}
		out := make([]rmodel.Arc, len(arcs))
		for i := range arcs {
			out[i] = arcs[(start+i)%len(arcs)]
		}
		return out
	}
	return arcs
}
