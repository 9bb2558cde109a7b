package safety_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdlt/cycle"
	"github.com/katalvlaran/rdlt/rmodel"
	"github.com/katalvlaran/rdlt/safety"
)

func noBridges(rmodel.Arc) bool { return false }

func buildIndex(r rmodel.Region) *cycle.Index {
	return cycle.BuildIndex(cycle.Detect(r))
}

// TestBuild_ANDJoin_UnequalL reproduces spec §8 scenario S5: three
// incoming arcs, two sharing the majority L and one diverging from it.
// Only the divergent arc is marked unsafe — the majority stays safe,
// mirroring check_equal_l_values's reference_l_value rule.
func TestBuild_ANDJoin_UnequalL(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: "a", L: 2},
		{Rid: "a1", Source: "s2", Target: "j", C: "b", L: 2},
		{Rid: "a2", Source: "s3", Target: "j", C: "c", L: 3},
	}
	result := safety.Build(r, buildIndex(r), noBridges, safety.Options{})

	assert.False(t, result.LSafe)
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, safety.VJoinSafe, v.Kind)
	assert.Equal(t, "unequal_l_value", v.Detail)
	assert.Equal(t, "a2", v.ArcRid)

	for _, row := range result.Rows {
		if row.Arc.Rid == "a2" {
			assert.False(t, row.JoinSafe.NonNegative())
		} else {
			assert.True(t, row.JoinSafe.NonNegative())
		}
	}
}

// TestBuild_MIXJoin_DifferentConditions reproduces spec §8 scenario S6:
// an ε arc and two arcs with distinct non-ε conditions. Only the arc
// diverging from the first non-ε condition encountered is marked unsafe
// — the ε arc and the reference condition's own arc stay safe, mirroring
// check_duplicate_conditions's MIX-JOIN branch.
func TestBuild_MIXJoin_DifferentConditions(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: rmodel.Epsilon, L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: "a", L: 1},
		{Rid: "a2", Source: "s3", Target: "j", C: "b", L: 1},
	}
	result := safety.Build(r, buildIndex(r), noBridges, safety.Options{})

	assert.False(t, result.LSafe)
	require.Len(t, result.Violations, 1)
	v := result.Violations[0]
	assert.Equal(t, "mix_join_different_conditions", v.Detail)
	assert.Equal(t, "a2", v.ArcRid)
}

// TestBuild_MIXJoin_DifferentConditions_Allowed exercises the
// Options.MixJoinsAllowed escape hatch for spec §9's open MIX-join
// question: the same region as above no longer violates joinsafe on
// condition grounds alone.
func TestBuild_MIXJoin_DifferentConditions_Allowed(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: rmodel.Epsilon, L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: "a", L: 1},
		{Rid: "a2", Source: "s3", Target: "j", C: "b", L: 1},
	}
	result := safety.Build(r, buildIndex(r), noBridges, safety.Options{MixJoinsAllowed: true})

	assert.True(t, result.LSafe)
	assert.Empty(t, result.Violations)
}

// TestBuild_SimpleORJoin_Safe exercises an uncontroversial passing case:
// an OR-join (two unconditional incoming arcs) on an acyclic region.
func TestBuild_SimpleORJoin_Safe(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: rmodel.Epsilon, L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: rmodel.Epsilon, L: 1},
	}
	result := safety.Build(r, buildIndex(r), noBridges, safety.Options{})

	assert.True(t, result.LSafe)
	assert.Empty(t, result.Violations)
	for _, row := range result.Rows {
		assert.Equal(t, 0, row.CV)
		assert.Equal(t, safety.Eps, row.Cycle)
	}
}

// TestBuild_CriticalArcWithoutSafeSibling exercises safeCA: a 2-cycle
// where both arcs tie for minimum l (both critical, per cycle's
// tie-retention rule) and neither source has an escaping sibling arc.
func TestBuild_CriticalArcWithoutSafeSibling(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "x1", Target: "x2", C: rmodel.Epsilon, L: 2},
		{Rid: "a1", Source: "x2", Target: "x1", C: rmodel.Epsilon, L: 2},
	}
	result := safety.Build(r, buildIndex(r), noBridges, safety.Options{})

	assert.False(t, result.LSafe)
	found := false
	for _, v := range result.Violations {
		if v.Kind == safety.VSafeCA {
			found = true
			assert.Equal(t, "critical_arc_without_safe_sibling", v.Detail)
		}
	}
	assert.True(t, found, "expected a SafeCA violation")
}
