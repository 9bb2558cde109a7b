package inputfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rdlt/inputfmt"
	"github.com/katalvlaran/rdlt/rmodel"
)

func TestParse_S1(t *testing.T) {
	in, err := inputfmt.Parse("x1, x2, a, 1\nx2, x3, b, 1\n")
	require.NoError(t, err)
	require.Len(t, in.Arcs, 2)
	assert.Equal(t, rmodel.Arc{Source: "x1", Target: "x2", C: "a", L: 1}, in.Arcs[0])
	assert.Empty(t, in.Centers)
}

func TestParse_EpsilonNormalization(t *testing.T) {
	in, err := inputfmt.Parse("x1, x2, 0, 3\n")
	require.NoError(t, err)
	require.Len(t, in.Arcs, 1)
	assert.Equal(t, rmodel.Epsilon, in.Arcs[0].C)
}

func TestParse_S3WithBridges(t *testing.T) {
	src := "x1, x2, a, 1\n" +
		"x2, x3, 0, 2\n" +
		"x3, x2, 0, 3\n" +
		"x2, x4, 0, 4\n" +
		"x3, x4, 0, 1\n" +
		"x4, x5, 0, 6\n" +
		"x4, x6, b, 7\n" +
		"x5, x6, a, 7\n" +
		"x6, x2, a, 5\n" +
		"x6, x7, 0, 1\n" +
		"CENTER\n" +
		"x2\n" +
		"IN\n" +
		"x1, x2\n" +
		"x6, x2\n" +
		"OUT\n" +
		"x4, x5\n" +
		"x4, x6\n"

	in, err := inputfmt.Parse(src)
	require.NoError(t, err)
	assert.Len(t, in.Arcs, 10)
	assert.Equal(t, []rmodel.Vertex{"x2"}, in.Centers)
	assert.Len(t, in.In, 2)
	assert.Len(t, in.Out, 2)
}

func TestParse_MalformedArcLine(t *testing.T) {
	_, err := inputfmt.Parse("x1, x2, a\n")
	assert.ErrorIs(t, err, inputfmt.ErrInputMalformed)
}

func TestParse_NonIntegerL(t *testing.T) {
	_, err := inputfmt.Parse("x1, x2, a, notanumber\n")
	assert.ErrorIs(t, err, inputfmt.ErrAttributeParse)
}

func TestParse_UnknownVertexInBridge(t *testing.T) {
	src := "x1, x2, a, 1\nCENTER\nx9\n"
	_, err := inputfmt.Parse(src)
	assert.ErrorIs(t, err, inputfmt.ErrUnknownVertexInBridge)
}
