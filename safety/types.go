package safety

import (
	"encoding/json"

	"github.com/katalvlaran/rdlt/rmodel"
)

// Options configures matrix construction.
type Options struct {
	// DepthCap bounds split→join path enumeration (0 = unbounded).
	DepthCap int
	// MixJoinsAllowed resolves spec §9's second Open Question: when false
	// (default), a MIX-join with two or more distinct non-ε incoming
	// conditions always violates joinsafe; when true, differing
	// conditions alone no longer penalize a MIX-join.
	MixJoinsAllowed bool
}

// MatrixRow is the per-arc analysis record (spec §4.7).
type MatrixRow struct {
	Arc rmodel.Arc

	CV    int // raw cycle-vector sign: -1 critical, +1 non-critical cycle member, 0 acyclic
	Cycle Symbol

	OCV    int // raw out-cycle-vector sign
	SafeCA Symbol

	LS       int // raw loop-safeness sign
	LoopSafe Symbol

	JS       int // raw join-safeness sign
	JoinSafe Symbol
}

// LSafe reports whether this row alone satisfies spec §4.7's per-row
// L-safeness condition.
func (row MatrixRow) LSafe() bool {
	return row.JoinSafe.NonNegative() && row.LoopSafe.NonNegative() && row.SafeCA.NonNegative()
}

// ViolationKind tags which of the three L-safeness predicates a
// Violation reports against.
type ViolationKind int

const (
	VJoinSafe ViolationKind = iota
	VLoopSafe
	VSafeCA
)

func (k ViolationKind) String() string {
	switch k {
	case VJoinSafe:
		return "JoinSafe"
	case VLoopSafe:
		return "LoopSafe"
	case VSafeCA:
		return "SafeCA"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders k as its String() form for reporting layers.
func (k ViolationKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Violation is one L-safeness failure, tagged with a short machine-
// readable Detail (e.g. "unequal_l_value", "mix_join_different_conditions").
type Violation struct {
	Kind   ViolationKind
	ArcRid string
	Arc    rmodel.Arc
	Detail string
}

// Result is the outcome of Build.
type Result struct {
	Rows       []MatrixRow
	Violations []Violation
	LSafe      bool
}
