package contraction

import "github.com/katalvlaran/rdlt/rmodel"

// FailedContraction is an arc that could not be contracted in the round
// it was last attempted, with the conflicting incoming arcs that blocked
// it.
type FailedContraction struct {
	Arc             rmodel.Arc
	Reason          string
	ConflictingArcs []rmodel.Arc
}

// Report is the outcome of contracting one working region from its
// source, per spec §4.8.
type Report struct {
	ContractedPath         []rmodel.Arc
	SuccessfulContractions []rmodel.Arc
	FailedContractions     []FailedContraction
}
