package activity

import "github.com/katalvlaran/rdlt/rmodel"

// Options configures activity extraction.
type Options struct {
	// DepthCap bounds DFS depth (spec default 10-15); 0 selects DefaultDepthCap.
	DepthCap int
}

// DefaultDepthCap is used when Options.DepthCap is 0.
const DefaultDepthCap = 12

// Profile is one enumerated firing sequence from source.
type Profile struct {
	Path        []rmodel.Vertex
	Timesteps   [][]rmodel.Arc // Timesteps[i] is the arcs fired at timestep i+1
	ReachedSink bool
	Reason      string // non-empty iff !ReachedSink: "deadlock" or "no_valid_outgoing_arcs"
}

// Result is the outcome of Extract.
type Result struct {
	Profiles          []Profile
	ProperTermination bool // every profile reached the sink
	Liveness          bool // every valid arc fired in at least one profile
	ClassicallySound  bool // ProperTermination && Liveness
	NeverFired        []rmodel.Arc
}
