package join_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rdlt/join"
	"github.com/katalvlaran/rdlt/rmodel"
)

func noBridges(rmodel.Arc) bool { return false }

func TestClassify_ORJoin(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: rmodel.Epsilon, L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: rmodel.Epsilon, L: 1},
	}
	joins := join.Classify(r, noBridges)
	if assert.Len(t, joins, 1) {
		assert.Equal(t, join.OR, joins[0].Kind)
	}
}

func TestClassify_ORJoin_SharedCondition(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: "a", L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: "a", L: 1},
	}
	joins := join.Classify(r, noBridges)
	if assert.Len(t, joins, 1) {
		assert.Equal(t, join.OR, joins[0].Kind)
	}
}

// TestClassify_ANDJoin_UnequalL reproduces spec §8 scenario S5: an
// AND-join whose incoming arcs carry distinct conditions but unequal l.
// Classification itself doesn't fail on unequal l (that's a joinsafe
// violation, computed downstream by package safety) — it only asserts
// the join is correctly identified as AND.
func TestClassify_ANDJoin_UnequalL(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: "a", L: 2},
		{Rid: "a1", Source: "s2", Target: "j", C: "b", L: 3},
	}
	joins := join.Classify(r, noBridges)
	if assert.Len(t, joins, 1) {
		assert.Equal(t, join.AND, joins[0].Kind)
	}
}

// TestClassify_MIXJoin reproduces spec §8 scenario S6: three incoming
// arcs with c ∈ {ε, a, b}.
func TestClassify_MIXJoin(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: rmodel.Epsilon, L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: "a", L: 1},
		{Rid: "a2", Source: "s3", Target: "j", C: "b", L: 1},
	}
	joins := join.Classify(r, noBridges)
	if assert.Len(t, joins, 1) {
		assert.Equal(t, join.MIX, joins[0].Kind)
	}
}

func TestClassify_MIXJoin_DuplicateCondition(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: "a", L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: "a", L: 1},
		{Rid: "a2", Source: "s3", Target: "j", C: "b", L: 1},
	}
	joins := join.Classify(r, noBridges)
	if assert.Len(t, joins, 1) {
		assert.Equal(t, join.MIX, joins[0].Kind)
	}
}

func TestClassify_SingleIncoming_NotAJoin(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: rmodel.Epsilon, L: 1},
	}
	assert.Empty(t, join.Classify(r, noBridges))
}

func TestClassify_MixedBridgeStatus_NotAJoin(t *testing.T) {
	r := rmodel.Region{
		{Rid: "a0", Source: "s1", Target: "j", C: "a", L: 1},
		{Rid: "a1", Source: "s2", Target: "j", C: "b", L: 1},
	}
	bridgeOnFirst := func(a rmodel.Arc) bool { return a.Rid == "a0" }
	assert.Empty(t, join.Classify(r, bridgeOnFirst))
}
