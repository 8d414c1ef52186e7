package search

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/heuristic"
	"github.com/SeamusWaldron/cubesolver/internal/kb"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testEvaluator builds a small exact table so IDA* and the selector have a
// real heuristic to work with.
func testEvaluator(t *testing.T, n, depth int) *heuristic.Evaluator {
	t.Helper()
	table, err := kb.Build(context.Background(), n, depth, quietLogger())
	require.NoError(t, err)
	return heuristic.New(table)
}

func solvedState(t *testing.T, n int) cube.State {
	t.Helper()
	s, err := cube.New(n)
	require.NoError(t, err)
	return s
}

// scrambleBy applies the given notation to a solved cube.
func scrambleBy(t *testing.T, n int, notation string) cube.State {
	t.Helper()
	moves, err := types.ParseMoves(notation)
	require.NoError(t, err)
	s, err := cube.ApplyMoves(solvedState(t, n), moves)
	require.NoError(t, err)
	return s
}

// assertSolves verifies solution soundness: applying it to the scrambled
// state must yield a solved cube.
func assertSolves(t *testing.T, start cube.State, solution Solution) {
	t.Helper()
	end, err := cube.ApplyMoves(start, solution)
	require.NoError(t, err)
	require.True(t, end.IsSolved(), "solution %s does not solve the state", solution.Notation())
}
