package rgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rdlt/rgraph"
	"github.com/katalvlaran/rdlt/rmodel"
)

func arc(rid, src, dst string) rmodel.Arc {
	return rmodel.Arc{Rid: rid, Source: src, Target: dst, L: 1, C: rmodel.Epsilon}
}

func TestAllPaths_SimplePathsOnly(t *testing.T) {
	r := rmodel.Region{
		arc("r0", "x1", "x2"),
		arc("r1", "x2", "x3"),
		arc("r2", "x3", "x2"), // back-edge: must not produce a path revisiting x2
		arc("r3", "x2", "x4"),
	}
	adj := rgraph.Build(r)
	paths := rgraph.AllPaths(adj, "x1", "x4", 0)

	require := assert.New(t)
	require.Len(paths, 1)
	require.Equal([]string{"x1", "x2", "x4"}, paths[0].Vertices())
}

func TestAllPaths_MultiplePathsPreserveInsertionOrder(t *testing.T) {
	r := rmodel.Region{
		arc("r0", "u", "a"),
		arc("r1", "u", "b"),
		arc("r2", "a", "v"),
		arc("r3", "b", "v"),
	}
	adj := rgraph.Build(r)
	paths := rgraph.AllPaths(adj, "u", "v", 0)

	assert.Len(t, paths, 2)
	assert.Equal(t, []string{"u", "a", "v"}, paths[0].Vertices())
	assert.Equal(t, []string{"u", "b", "v"}, paths[1].Vertices())
}

func TestAllPaths_DepthCap(t *testing.T) {
	r := rmodel.Region{
		arc("r0", "a", "b"),
		arc("r1", "b", "c"),
		arc("r2", "c", "d"),
	}
	adj := rgraph.Build(r)
	assert.Empty(t, rgraph.AllPaths(adj, "a", "d", 2))
	assert.Len(t, rgraph.AllPaths(adj, "a", "d", 3), 1)
}

func TestHasClosedWalk(t *testing.T) {
	r := rmodel.Region{
		arc("r0", "x2", "x3"),
		arc("r1", "x3", "x2"),
	}
	adj := rgraph.Build(r)
	assert.True(t, rgraph.HasClosedWalk(adj, "x2"))
	assert.False(t, rgraph.HasClosedWalk(adj, "x9"))
}

func TestSourceAndSink(t *testing.T) {
	r := rmodel.Region{
		arc("r0", "x1", "x2"),
		arc("r1", "x2", "x3"),
	}
	src, sink, err := rgraph.SourceAndSink(r)
	assert.NoError(t, err)
	assert.Equal(t, "x1", src)
	assert.Equal(t, "x3", sink)
}

func TestSourceAndSink_MultipleSources(t *testing.T) {
	r := rmodel.Region{
		arc("r0", "x1", "x3"),
		arc("r1", "x2", "x3"),
	}
	_, _, err := rgraph.SourceAndSink(r)
	assert.ErrorIs(t, err, rgraph.ErrMultipleSourcesOrSinks)
}
