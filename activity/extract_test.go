package activity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdlt/activity"
	"github.com/katalvlaran/rdlt/rmodel"
)

func arc(rid, src, dst, c string, l int) rmodel.Arc {
	return rmodel.Arc{Rid: rid, Source: src, Target: dst, C: c, L: l}
}

func noBridges(rmodel.Arc) bool { return false }

func TestExtract_TrivialPath_SoundAndLive(t *testing.T) {
	r := rmodel.Region{arc("A", "s", "sink", rmodel.Epsilon, 1)}

	result := activity.Extract(r, "s", "sink", nil, nil, noBridges, noBridges, activity.Options{})

	require.Len(t, result.Profiles, 1)
	assert.True(t, result.Profiles[0].ReachedSink)
	assert.True(t, result.ProperTermination)
	assert.True(t, result.Liveness)
	assert.True(t, result.ClassicallySound)
	assert.Empty(t, result.NeverFired)
}

// TestExtract_DeadEndBranch_ImproperTermination builds a source with two
// branches: one reaching the sink, one a genuine dead end. Both arcs
// fire (liveness holds) but the dead-end branch never reaches the sink,
// so proper termination — and overall soundness — fails.
func TestExtract_DeadEndBranch_ImproperTermination(t *testing.T) {
	r := rmodel.Region{
		arc("A", "s", "sink", rmodel.Epsilon, 1),
		arc("B", "s", "extra", rmodel.Epsilon, 1),
	}

	result := activity.Extract(r, "s", "sink", nil, nil, noBridges, noBridges, activity.Options{})

	require.Len(t, result.Profiles, 2)
	var sawSink, sawDeadlock bool
	for _, p := range result.Profiles {
		if p.ReachedSink {
			sawSink = true
		} else {
			sawDeadlock = true
			assert.Equal(t, "no_valid_outgoing_arcs", p.Reason)
		}
	}
	assert.True(t, sawSink)
	assert.True(t, sawDeadlock)
	assert.False(t, result.ProperTermination)
	assert.True(t, result.Liveness)
	assert.False(t, result.ClassicallySound)
}

// TestExtract_ReusesArcUpToL verifies the per-arc l limit: a self-loop
// cycle can fire at most l times before the extractor must route through
// the other outgoing arc to reach the sink.
func TestExtract_ReusesArcUpToL(t *testing.T) {
	r := rmodel.Region{
		arc("A", "s", "s", rmodel.Epsilon, 2), // self-loop, reusable twice
		arc("B", "s", "sink", rmodel.Epsilon, 1),
	}

	result := activity.Extract(r, "s", "sink", nil, nil, noBridges, noBridges, activity.Options{})

	assert.True(t, result.ProperTermination)
	assert.True(t, result.ClassicallySound)
}

// TestExtract_GuaranteedDepth0Profile reproduces spec §4.9's rule that
// the first contraction-path arc from source is always recorded as
// timestep 1, even though normal exploration also succeeds.
func TestExtract_GuaranteedDepth0Profile(t *testing.T) {
	r := rmodel.Region{arc("A", "s", "sink", rmodel.Epsilon, 1)}
	contractionPath := []rmodel.Arc{r[0]}

	result := activity.Extract(r, "s", "sink", contractionPath, nil, noBridges, noBridges, activity.Options{})

	var deadlockRecorded bool
	for _, p := range result.Profiles {
		if !p.ReachedSink && p.Reason == "deadlock" && len(p.Path) == 2 {
			deadlockRecorded = true
		}
	}
	assert.True(t, deadlockRecorded, "expected the guaranteed timestep-1 record even though the arc also reaches the sink normally")
}
