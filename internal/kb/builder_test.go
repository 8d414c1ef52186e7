package kb

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func buildTable(t *testing.T, n, depth int) *Table {
	t.Helper()
	table, err := Build(context.Background(), n, depth, quietLogger())
	require.NoError(t, err)
	return table
}

func TestBuildSolvedStateIsDistanceZero(t *testing.T) {
	table := buildTable(t, 2, 1)

	solved, err := cube.New(2)
	require.NoError(t, err)

	d, ok := table.Lookup(solved)
	require.True(t, ok, "solved state must be in the table")
	assert.Equal(t, 0, d)
}

func TestBuildDepthOneNeighbors(t *testing.T) {
	table := buildTable(t, 2, 2)

	solved, err := cube.New(2)
	require.NoError(t, err)

	for _, m := range types.Catalog(2) {
		s, err := cube.Apply(solved, m)
		require.NoError(t, err)

		d, ok := table.Lookup(s)
		require.True(t, ok, "one-move state %v must be in the table", m)
		assert.Equal(t, 1, d, "one-move state %v must be at distance 1", m)
	}
}

func TestBuildFirstWriteWins(t *testing.T) {
	// A depth-1 state is rediscovered at depth 3 (m, m', m); the recorded
	// distance must stay 1.
	table := buildTable(t, 2, 3)

	solved, err := cube.New(2)
	require.NoError(t, err)
	m := types.Move{Axis: types.Horizontal, Layer: 0, Direction: types.CW}
	s, err := cube.Apply(solved, m)
	require.NoError(t, err)

	d, ok := table.Lookup(s)
	require.True(t, ok)
	assert.Equal(t, 1, d)
}

func TestBuildDistancesNeverExceedDepth(t *testing.T) {
	const maxDepth = 2
	table := buildTable(t, 2, maxDepth)

	assert.Greater(t, table.Len(), 1)
	for s, d := range table.states {
		assert.LessOrEqual(t, int(d), maxDepth, "state %s", s.String())
	}
}

func TestBuildCornerPatternIsLowerBound(t *testing.T) {
	table := buildTable(t, 3, 2)

	solved, err := cube.New(3)
	require.NoError(t, err)

	// For a middle-slice horizontal move on a 3x3x3, the corner facets are
	// untouched, so the pattern must map to distance 0 even though the full
	// state is at distance 1.
	mid := types.Move{Axis: types.Horizontal, Layer: 1, Direction: types.CW}
	s, err := cube.Apply(solved, mid)
	require.NoError(t, err)

	full, ok := table.Lookup(s)
	require.True(t, ok)
	assert.Equal(t, 1, full)

	corner, ok := table.LookupCorner(s.CornerPattern())
	require.True(t, ok)
	assert.Equal(t, 0, corner, "corner pattern untouched by a middle-slice move")
}

func TestBuildZeroDepthTable(t *testing.T) {
	table := buildTable(t, 3, 0)
	assert.Equal(t, 1, table.Len(), "depth 0 contains only the solved state")
}

func TestBuildHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, 3, 4, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildRejectsBadDimension(t *testing.T) {
	_, err := Build(context.Background(), 1, 2, quietLogger())
	assert.Error(t, err)
}
