package analyzer

import (
	"github.com/katalvlaran/rdlt/abstractarc"
	"github.com/katalvlaran/rdlt/activity"
	"github.com/katalvlaran/rdlt/contraction"
	"github.com/katalvlaran/rdlt/safety"
)

// Options configures the analysis pipeline. Use the With* functions
// below rather than constructing Options directly, so future fields
// default safely.
type Options struct {
	depthCap              int
	closedWalkEnumeration bool
	mixJoinsAllowed       bool
}

// Option mutates an Options value under construction.
type Option func(*Options)

// WithDepthCap bounds every stage's path/walk/DFS enumeration (C1, C4,
// C7, C9). 0 (the default) selects each stage's own default.
func WithDepthCap(n int) Option {
	return func(o *Options) { o.depthCap = n }
}

// WithClosedWalkEnumeration threads spec §9's first Open Question
// resolution through to C4 (package abstractarc): true enumerates
// distinct simple cycles for self-loop reusability instead of the
// reference's assert-existence default.
func WithClosedWalkEnumeration(v bool) Option {
	return func(o *Options) { o.closedWalkEnumeration = v }
}

// WithMixJoinsAllowed threads spec §9's second Open Question resolution
// through to C7 (package safety): true stops differing non-ε conditions
// alone from penalizing a MIX-join's join-safeness.
func WithMixJoinsAllowed(v bool) Option {
	return func(o *Options) { o.mixJoinsAllowed = v }
}

func resolve(opts []Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

func (o Options) abstractarcOptions() abstractarc.Options {
	return abstractarc.Options{DepthCap: o.depthCap, ClosedWalkEnumeration: o.closedWalkEnumeration}
}

func (o Options) safetyOptions() safety.Options {
	return safety.Options{DepthCap: o.depthCap, MixJoinsAllowed: o.mixJoinsAllowed}
}

func (o Options) activityOptions() activity.Options {
	return activity.Options{DepthCap: o.depthCap}
}

// Result is the analysis outcome exposed to the reporting layer (spec §6).
type Result struct {
	LSafe              bool
	Matrix             []safety.MatrixRow
	Violations         []safety.Violation
	ContractionReports map[string]contraction.Report
	ActivityProfiles   []activity.Profile
	ClassicallySound   bool
	// SoundnessReason is set to "depth cap" when every non-terminating
	// profile was truncated by the depth cap rather than genuinely
	// deadlocked (spec §7, AnalysisIncomplete): soundness is then
	// unknown-but-reported-unsafe rather than a confirmed counterexample.
	SoundnessReason string
}
