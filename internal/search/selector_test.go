package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSelector(t *testing.T, n, depth int) *Selector {
	t.Helper()
	return &Selector{
		Evaluator: testEvaluator(t, n, depth),
		Log:       quietLogger(),
	}
}

func TestSelectorSolvedInputInvokesNothing(t *testing.T) {
	sel := testSelector(t, 3, 1)

	report, err := sel.Solve(context.Background(), solvedState(t, 3))
	require.NoError(t, err)
	assert.Empty(t, report.Solution)
	assert.Empty(t, report.Attempts, "no strategy may run for a solved input")
}

func TestSelectorShallowScrambleUsesBFSFirst(t *testing.T) {
	sel := testSelector(t, 2, 3)
	start := scrambleBy(t, 2, "h0 v1")

	report, err := sel.Solve(context.Background(), start)
	require.NoError(t, err)
	require.NotEmpty(t, report.Attempts)
	assert.Equal(t, StrategyBFS, report.Attempts[0].Strategy)
	assert.Equal(t, StrategyBFS, report.Winner)
	assertSolves(t, start, report.Solution)
}

func TestSelectorPlanOrders(t *testing.T) {
	sel := testSelector(t, 2, 1)
	sel.init()

	assert.Equal(t,
		[]Strategy{StrategyBFS, StrategyBidirectional, StrategyIDAStar},
		sel.plan(sel.Shallow))
	assert.Equal(t,
		[]Strategy{StrategyBidirectional, StrategyBFS, StrategyIDAStar},
		sel.plan(sel.Moderate))
	assert.Equal(t,
		[]Strategy{StrategyIDAStar, StrategyBFS, StrategyBidirectional},
		sel.plan(sel.Moderate+1))
}

func TestSelectorFallsThroughOnExhaustion(t *testing.T) {
	sel := testSelector(t, 2, 2)
	sel.init()
	// Cripple BFS so the first attempt exhausts and the selector must fall
	// through the fixed order.
	sel.engines[StrategyBFS] = &BreadthFirst{MaxDepth: 1}

	start := scrambleBy(t, 2, "h0 v1 s0")

	report, err := sel.Solve(context.Background(), start)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(report.Attempts), 2)
	assert.Equal(t, OutcomeExhausted, report.Attempts[0].Outcome)
	assert.Equal(t, StrategyBidirectional, report.Winner)
	assertSolves(t, start, report.Solution)
}

func TestSelectorReportsAllFailures(t *testing.T) {
	sel := testSelector(t, 2, 1)
	sel.init()
	sel.engines[StrategyBFS] = &BreadthFirst{MaxDepth: 1}
	sel.engines[StrategyBidirectional] = &Bidirectional{MaxDepth: 1}
	sel.engines[StrategyIDAStar] = &IDAStar{Evaluator: sel.Evaluator, ThresholdCap: 1}

	start := scrambleBy(t, 2, "h0 v1 s0 h1 v0 s1")

	report, err := sel.Solve(context.Background(), start)
	require.ErrorIs(t, err, ErrNoSolution)
	assert.Len(t, report.Attempts, 3, "every strategy's outcome must be reported")
	for _, attempt := range report.Attempts {
		assert.NotEqual(t, OutcomeSolved, attempt.Outcome)
		assert.Equal(t, -1, attempt.Moves)
	}
}

func TestSelectorOverrideRunsOnlyThatStrategy(t *testing.T) {
	sel := testSelector(t, 2, 2)
	sel.Override = StrategyBidirectional

	start := scrambleBy(t, 2, "h0 v1")

	report, err := sel.Solve(context.Background(), start)
	require.NoError(t, err)
	require.Len(t, report.Attempts, 1)
	assert.Equal(t, StrategyBidirectional, report.Attempts[0].Strategy)
	assertSolves(t, start, report.Solution)
}

func TestSelectorHonorsCallerDeadline(t *testing.T) {
	sel := testSelector(t, 2, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	report, err := sel.Solve(ctx, scrambleBy(t, 2, "h0 v1 s0 h1"))
	require.ErrorIs(t, err, ErrNoSolution)
	// The caller's deadline was already gone, so the selector must not have
	// burned through every strategy budget.
	assert.LessOrEqual(t, len(report.Attempts), 1)
}

func TestSelectorRacePicksBestResult(t *testing.T) {
	sel := testSelector(t, 2, 3)
	start := scrambleBy(t, 2, "h0 v1 s0")

	report, err := sel.Race(context.Background(), start, 0)
	require.NoError(t, err)
	assert.Len(t, report.Attempts, 3, "race runs every strategy")
	assertSolves(t, start, report.Solution)

	// No reported solver may have produced fewer moves than the winner.
	for _, attempt := range report.Attempts {
		if attempt.Outcome == OutcomeSolved {
			assert.GreaterOrEqual(t, attempt.Moves, len(report.Solution))
		}
	}
}

func TestSelectorRaceSolvedInput(t *testing.T) {
	sel := testSelector(t, 2, 1)

	report, err := sel.Race(context.Background(), solvedState(t, 2), 0)
	require.NoError(t, err)
	assert.Empty(t, report.Solution)
	assert.Empty(t, report.Attempts)
}
