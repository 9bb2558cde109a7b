package analyzer

import (
	"fmt"

	"github.com/katalvlaran/rdlt/abstractarc"
	"github.com/katalvlaran/rdlt/activity"
	"github.com/katalvlaran/rdlt/contraction"
	"github.com/katalvlaran/rdlt/cycle"
	"github.com/katalvlaran/rdlt/eru"
	"github.com/katalvlaran/rdlt/region"
	"github.com/katalvlaran/rdlt/rgraph"
	"github.com/katalvlaran/rdlt/rmodel"
	"github.com/katalvlaran/rdlt/safety"
)

// Analyze runs the full pipeline over in (as produced by inputfmt.Parse):
// C3 region splitting, C4 abstract-arc synthesis per center, C2 cycle
// detection and C5 eRU assignment on the resulting working region, C7
// L-safeness, and — only when C7 finds violations — C8 contraction and
// C9 activity extraction to determine classical soundness.
func Analyze(in region.Input, opts ...Option) (Result, error) {
	o := resolve(opts)

	split, err := region.Split(in)
	if err != nil {
		return Result{}, fmt.Errorf("analyzer: %w", err)
	}

	working := append(rmodel.Region(nil), split.R1...)
	for i, center := range split.Order {
		r2 := split.R2[center]
		absIn := abstractarc.Input{
			R1:      split.R1,
			R2:      r2,
			Center:  center,
			Centers: split.Order,
			In:      filterIn(in.In, center),
			Out:     filterOut(in.Out, center, r2),
		}
		abstracts := abstractarc.Build(absIn, o.abstractarcOptions())
		for j, a := range abstracts {
			a.Rid = fmt.Sprintf("R1-abs-%d-%d", i, j)
			working = append(working, a)
		}
	}

	if len(working) == 0 {
		return Result{}, ErrEmptyRegion
	}

	idx := cycle.BuildIndex(cycle.Detect(working))
	working = eru.Compute(working, idx)

	bridgeKeys := make(map[region.BridgeKey]bool, len(in.In)+len(in.Out))
	outBridgeKeys := make(map[region.BridgeKey]bool, len(in.Out))
	for _, b := range in.In {
		bridgeKeys[b] = true
	}
	for _, b := range in.Out {
		bridgeKeys[b] = true
		outBridgeKeys[b] = true
	}
	isBridge := func(a rmodel.Arc) bool {
		return bridgeKeys[region.BridgeKey{Source: a.Source, Target: a.Target}]
	}
	isOutBridge := func(a rmodel.Arc) bool {
		return outBridgeKeys[region.BridgeKey{Source: a.Source, Target: a.Target}]
	}

	matrixResult := safety.Build(working, idx, isBridge, o.safetyOptions())

	result := Result{
		LSafe:      matrixResult.LSafe,
		Matrix:     matrixResult.Rows,
		Violations: matrixResult.Violations,
	}
	if matrixResult.LSafe {
		result.ClassicallySound = true
		return result, nil
	}

	violationRids := make([]string, 0, len(matrixResult.Violations))
	seen := map[string]bool{}
	for _, v := range matrixResult.Violations {
		if !seen[v.ArcRid] {
			seen[v.ArcRid] = true
			violationRids = append(violationRids, v.ArcRid)
		}
	}
	result.ContractionReports = contraction.ForViolations(working, violationRids)

	source, sink, err := rgraph.SourceAndSink(working)
	if err != nil {
		return result, fmt.Errorf("analyzer: %w", err)
	}

	var contractedPath []rmodel.Arc
	var failed []rmodel.Arc
	if len(violationRids) > 0 {
		report := result.ContractionReports[violationRids[0]]
		contractedPath = report.ContractedPath
		for _, fc := range report.FailedContractions {
			failed = append(failed, fc.Arc)
		}
	}

	activityResult := activity.Extract(working, source, sink, contractedPath, failed, isBridge, isOutBridge, o.activityOptions())
	result.ActivityProfiles = activityResult.Profiles
	result.ClassicallySound = activityResult.ClassicallySound

	if !activityResult.ProperTermination && allDepthCapped(activityResult.Profiles, o.depthCap) {
		result.ClassicallySound = false
		result.SoundnessReason = "depth cap"
	}

	return result, nil
}

// filterIn returns the in-bridges targeting center.
func filterIn(bridges []region.BridgeKey, center rmodel.Vertex) []region.BridgeKey {
	var out []region.BridgeKey
	for _, b := range bridges {
		if b.Target == center {
			out = append(out, b)
		}
	}
	return out
}

// filterOut returns the out-bridges leaving center's RBS: those whose
// source is center or any vertex of r2.
func filterOut(bridges []region.BridgeKey, center rmodel.Vertex, r2 rmodel.Region) []region.BridgeKey {
	inRBS := map[rmodel.Vertex]bool{center: true}
	for _, a := range r2 {
		inRBS[a.Source] = true
		inRBS[a.Target] = true
	}
	var out []region.BridgeKey
	for _, b := range bridges {
		if inRBS[b.Source] {
			out = append(out, b)
		}
	}
	return out
}

// allDepthCapped reports whether every profile that failed to reach the
// sink did so by hitting the depth cap (reason "deadlock" with more
// timesteps than the cap allows) rather than a genuine absence of valid
// outgoing arcs or the one-arc depth-0 record — spec §7's
// AnalysisIncomplete condition.
func allDepthCapped(profiles []activity.Profile, depthCap int) bool {
	if depthCap <= 0 {
		depthCap = activity.DefaultDepthCap
	}
	sawCapped := false
	for _, p := range profiles {
		if p.ReachedSink {
			continue
		}
		if p.Reason != "deadlock" || len(p.Timesteps) <= depthCap {
			return false
		}
		sawCapped = true
	}
	return sawCapped
}
