// Package cubesolver finds move sequences that solve scrambled NxNxN
// combination puzzles. It models puzzle states as immutable values, builds a
// breadth-first pattern database for admissible distance estimates, and
// dispatches adaptively between breadth-first, bidirectional, and
// iterative-deepening A* search with timeout-bounded fallback.
package cubesolver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/heuristic"
	"github.com/SeamusWaldron/cubesolver/internal/kb"
	"github.com/SeamusWaldron/cubesolver/internal/search"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Strategy names a search strategy.
type Strategy = search.Strategy

// The available strategies, in fallback order.
const (
	StrategyBFS           = search.StrategyBFS
	StrategyBidirectional = search.StrategyBidirectional
	StrategyIDAStar       = search.StrategyIDAStar
)

// Report is the result of one solve invocation: the winning move sequence
// plus every attempted strategy with its outcome and elapsed time.
type Report struct {
	ID       string          `json:"id"`
	Moves    []types.Move    `json:"moves"`
	Notation string          `json:"notation"`
	Estimate int             `json:"estimate"`
	Winner   Strategy        `json:"winner,omitempty"`
	Attempts []search.Attempt `json:"attempts"`
}

// Solver is the solve entry point. It owns the knowledge base and heuristic
// evaluator, shared read-only across invocations; each Solve call gets its
// own frontiers and caches, so concurrent solves are independent.
type Solver struct {
	cfg   *config
	table *kb.Table
	eval  *heuristic.Evaluator
	rng   *rand.Rand
}

// New creates a Solver. When a knowledge base path is configured, the
// persisted table is loaded eagerly; if it is missing or corrupt the solver
// degrades to structural estimates rather than failing.
func New(opts ...Option) (*Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.dimension < 2 {
		return nil, fmt.Errorf("%w: dimension %d", ErrInvalidState, cfg.dimension)
	}

	s := &Solver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if cfg.storePath != "" {
		table, err := loadTable(cfg.storePath)
		switch {
		case errors.Is(err, ErrKnowledgeBaseUnavailable):
			cfg.log.WithError(err).Warn("knowledge base unavailable, degrading to structural estimates")
		case err != nil:
			return nil, err
		default:
			s.table = table
			cfg.log.WithField("states", table.Len()).Info("knowledge base loaded")
		}
	}

	s.eval = heuristic.New(s.table)
	return s, nil
}

func loadTable(path string) (*kb.Table, error) {
	store, err := kb.OpenStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load(context.Background())
}

// BuildKnowledgeBase constructs the exact distance table outward from the
// solved state up to the configured exploration depth and makes it the
// solver's heuristic backing. Construction is a one-time operation per
// solver; it must not run concurrently with itself or with solves.
func (s *Solver) BuildKnowledgeBase(ctx context.Context) error {
	table, err := kb.Build(ctx, s.cfg.dimension, s.cfg.buildDepth, s.cfg.log)
	if err != nil {
		return err
	}
	s.table = table
	s.eval = heuristic.New(table)
	return nil
}

// SaveKnowledgeBase persists the current table to the SQLite database at
// path with exact round-trip fidelity.
func (s *Solver) SaveKnowledgeBase(ctx context.Context, path string) error {
	if s.table == nil {
		return fmt.Errorf("%w: nothing built to save", ErrKnowledgeBaseUnavailable)
	}
	store, err := kb.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(ctx, s.table)
}

// KnowledgeBaseSize returns the number of exact entries backing the solver,
// zero when it is running on structural estimates alone.
func (s *Solver) KnowledgeBaseSize() int {
	if s.table == nil {
		return 0
	}
	return s.table.Len()
}

// Solve parses a serialized scramble and searches for a move sequence that
// solves it. An already-solved input yields an empty sequence without
// invoking any strategy. The returned report always carries the attempt
// breakdown, even when the error is ErrNoSolution.
func (s *Solver) Solve(ctx context.Context, state string) (*Report, error) {
	start, err := cube.Parse(state)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	log := s.cfg.log.WithField("solve_id", id)

	sel := &search.Selector{
		Evaluator: s.eval,
		Log:       log,
		Budget:    s.cfg.budget,
		Shallow:   s.cfg.shallow,
		Moderate:  s.cfg.moderate,
		Override:  s.cfg.override,
	}

	var result *search.Report
	if s.cfg.race {
		result, err = sel.Race(ctx, start, s.cfg.acceptableMoves)
	} else {
		result, err = sel.Solve(ctx, start)
	}

	report := &Report{
		ID:       id,
		Moves:    result.Solution,
		Notation: result.Solution.Notation(),
		Estimate: result.Estimate,
		Winner:   result.Winner,
		Attempts: result.Attempts,
	}
	if err != nil {
		return report, err
	}

	log.WithFields(logrus.Fields{
		"winner": result.Winner,
		"moves":  len(result.Solution),
	}).Info("solve finished")
	return report, nil
}

// SolvedState returns the serialized solved state for the configured
// dimension.
func (s *Solver) SolvedState() string {
	solved, _ := cube.New(s.cfg.dimension)
	return solved.String()
}

// Scramble produces a random scramble of between minMoves and maxMoves
// moves from the solved state, returning the serialized state and the moves
// that produced it.
func (s *Solver) Scramble(minMoves, maxMoves int) (string, []types.Move) {
	solved, _ := cube.New(s.cfg.dimension)
	state, moves := cube.Scramble(solved, minMoves, maxMoves, s.rng)
	return state.String(), moves
}

// Apply replays a move sequence against a serialized state and returns the
// resulting state.
func Apply(state string, moves []types.Move) (string, error) {
	start, err := cube.Parse(state)
	if err != nil {
		return "", err
	}
	end, err := cube.ApplyMoves(start, moves)
	if err != nil {
		return "", err
	}
	return end.String(), nil
}

// Verify replays a move sequence against a serialized state and reports
// whether it ends solved.
func Verify(state string, moves []types.Move) (bool, error) {
	start, err := cube.Parse(state)
	if err != nil {
		return false, err
	}
	end, err := cube.ApplyMoves(start, moves)
	if err != nil {
		return false, err
	}
	return end.IsSolved(), nil
}
