package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesolver/internal/heuristic"
)

func TestIDAStarAlreadySolved(t *testing.T) {
	ida := &IDAStar{Evaluator: testEvaluator(t, 3, 1)}
	solution, err := ida.Solve(context.Background(), solvedState(t, 3))
	require.NoError(t, err)
	assert.Empty(t, solution)
}

func TestIDAStarSingleMove(t *testing.T) {
	ida := &IDAStar{Evaluator: testEvaluator(t, 3, 1)}
	start := scrambleBy(t, 3, "s1'")

	solution, err := ida.Solve(context.Background(), start)
	require.NoError(t, err)
	assertSolves(t, start, solution)
	assert.Len(t, solution, 1)
}

func TestIDAStarOptimalWithExactHeuristic(t *testing.T) {
	// With the scramble fully inside the knowledge-base radius, h is exact
	// and IDA* must return an optimal solution on its first threshold.
	eval := testEvaluator(t, 2, 3)
	ida := &IDAStar{Evaluator: eval}
	start := scrambleBy(t, 2, "h0 v1")

	optimal, err := (&BreadthFirst{MaxDepth: 3}).Solve(context.Background(), start)
	require.NoError(t, err)

	solution, err := ida.Solve(context.Background(), start)
	require.NoError(t, err)
	assertSolves(t, start, solution)
	assert.Equal(t, len(optimal), len(solution))
}

func TestIDAStarDeepScrambleWithWeakHeuristic(t *testing.T) {
	// A shallow table forces threshold iteration; the solution must still
	// be sound.
	eval := testEvaluator(t, 2, 2)
	ida := &IDAStar{Evaluator: eval}
	start := scrambleBy(t, 2, "h0 v1 s0 h1 v0")

	solution, err := ida.Solve(context.Background(), start)
	require.NoError(t, err)
	assertSolves(t, start, solution)
}

func TestIDAStarStructuralFallbackOnly(t *testing.T) {
	// No knowledge base at all: the evaluator degrades to the structural
	// estimate and IDA* still terminates on an easy scramble.
	ida := &IDAStar{Evaluator: heuristic.New(nil)}
	start := scrambleBy(t, 3, "h0 v1")

	solution, err := ida.Solve(context.Background(), start)
	require.NoError(t, err)
	assertSolves(t, start, solution)
}

func TestIDAStarExhaustsAtThresholdCap(t *testing.T) {
	ida := &IDAStar{Evaluator: testEvaluator(t, 2, 1), ThresholdCap: 1}
	start := scrambleBy(t, 2, "h0 v1 s0")

	_, err := ida.Solve(context.Background(), start)
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestIDAStarTimesOut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	ida := &IDAStar{Evaluator: testEvaluator(t, 2, 1)}
	_, err := ida.Solve(ctx, scrambleBy(t, 2, "h0 v1 s0"))
	assert.ErrorIs(t, err, ErrTimeout)
}
