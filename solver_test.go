package cubesolver

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestSolver(t *testing.T, opts ...Option) *Solver {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger()), WithDimension(2), WithExplorationDepth(3)}, opts...)
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func TestSolveAlreadySolvedIsEmpty(t *testing.T) {
	s := newTestSolver(t)

	report, err := s.Solve(context.Background(), s.SolvedState())
	require.NoError(t, err)
	assert.Empty(t, report.Moves)
	assert.Equal(t, "", report.Notation)
	assert.Empty(t, report.Attempts, "no strategy may be invoked for a solved state")
	assert.NotEmpty(t, report.ID)
}

func TestSolveRejectsMalformedState(t *testing.T) {
	s := newTestSolver(t)

	_, err := s.Solve(context.Background(), "not a cube")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSolveRandomScrambleEndToEnd(t *testing.T) {
	s := newTestSolver(t)
	require.NoError(t, s.BuildKnowledgeBase(context.Background()))

	state, scramble := s.Scramble(3, 5)
	report, err := s.Solve(context.Background(), state)
	require.NoError(t, err, "scramble was %v", scramble)

	solved, err := Verify(state, report.Moves)
	require.NoError(t, err)
	assert.True(t, solved, "returned sequence must solve the scramble")
	assert.NotEmpty(t, report.Attempts)
	for _, attempt := range report.Attempts {
		assert.Positive(t, attempt.Elapsed)
	}
}

func TestSolveWithStrategyOverride(t *testing.T) {
	s := newTestSolver(t, WithStrategy(StrategyIDAStar))
	require.NoError(t, s.BuildKnowledgeBase(context.Background()))

	state, _ := s.Scramble(2, 3)
	report, err := s.Solve(context.Background(), state)
	require.NoError(t, err)
	require.Len(t, report.Attempts, 1)
	assert.Equal(t, StrategyIDAStar, report.Attempts[0].Strategy)
	assert.Equal(t, StrategyIDAStar, report.Winner)
}

func TestSolveRaceMode(t *testing.T) {
	s := newTestSolver(t, WithRace(0), WithBudget(10*time.Second))
	require.NoError(t, s.BuildKnowledgeBase(context.Background()))

	state, _ := s.Scramble(3, 4)
	report, err := s.Solve(context.Background(), state)
	require.NoError(t, err)
	assert.Len(t, report.Attempts, 3, "race mode runs every strategy")

	solved, err := Verify(state, report.Moves)
	require.NoError(t, err)
	assert.True(t, solved)
}

func TestKnowledgeBasePersistenceAcrossSolvers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knowledge.db")

	builder := newTestSolver(t)
	require.NoError(t, builder.BuildKnowledgeBase(context.Background()))
	require.NoError(t, builder.SaveKnowledgeBase(context.Background(), path))

	reloaded := newTestSolver(t, WithKnowledgeBasePath(path))
	assert.Equal(t, builder.KnowledgeBaseSize(), reloaded.KnowledgeBaseSize())

	state, _ := reloaded.Scramble(2, 3)
	report, err := reloaded.Solve(context.Background(), state)
	require.NoError(t, err)

	solved, err := Verify(state, report.Moves)
	require.NoError(t, err)
	assert.True(t, solved)
}

func TestMissingKnowledgeBaseDegradesGracefully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	s := newTestSolver(t, WithKnowledgeBasePath(path))
	assert.Zero(t, s.KnowledgeBaseSize())

	// The solver still works on structural estimates alone.
	state, _ := s.Scramble(2, 2)
	report, err := s.Solve(context.Background(), state)
	require.NoError(t, err)

	solved, err := Verify(state, report.Moves)
	require.NoError(t, err)
	assert.True(t, solved)
}

func TestSaveWithoutBuildFails(t *testing.T) {
	s := newTestSolver(t)
	err := s.SaveKnowledgeBase(context.Background(), filepath.Join(t.TempDir(), "kb.db"))
	assert.ErrorIs(t, err, ErrKnowledgeBaseUnavailable)
}

func TestNewRejectsBadDimension(t *testing.T) {
	_, err := New(WithDimension(1), WithLogger(quietLogger()))
	assert.ErrorIs(t, err, ErrInvalidState)
}
