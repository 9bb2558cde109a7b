package eru_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rdlt/cycle"
	"github.com/katalvlaran/rdlt/eru"
	"github.com/katalvlaran/rdlt/rmodel"
)

func TestCompute(t *testing.T) {
	r := rmodel.Region{
		{Rid: "r0", Source: "x1", Target: "x2", L: 3, C: rmodel.Epsilon},
		{Rid: "r1", Source: "x2", Target: "x3", L: 2, C: rmodel.Epsilon},
		{Rid: "r2", Source: "x3", Target: "x2", L: 2, C: rmodel.Epsilon},
		{Rid: "r3", Source: "x2", Target: "x4", L: 1, C: rmodel.Epsilon},
	}
	idx := cycle.BuildIndex(cycle.Detect(r))
	out := eru.Compute(r, idx)

	byRid := map[string]int{}
	for _, a := range out {
		byRid[a.Rid] = a.ERU
	}
	assert.Equal(t, 0, byRid["r0"])
	assert.Equal(t, 2, byRid["r1"])
	assert.Equal(t, 2, byRid["r2"])
	assert.Equal(t, 0, byRid["r3"])

	for _, a := range out {
		if a.ERU > 0 {
			assert.LessOrEqual(t, a.ERU, a.L, "invariant eRU<=L must hold for %s", a.Rid)
		}
	}
}
