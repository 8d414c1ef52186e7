// Package search implements the three cooperating solving strategies
// (breadth-first, bidirectional, iterative-deepening A*) and the adaptive
// selector that dispatches among them.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Sentinel errors for the search package.
var (
	// ErrTimeout reports that a strategy ran past its deadline. The
	// selector recovers it by falling through to the next strategy.
	ErrTimeout = errors.New("search: deadline exceeded")

	// ErrExhausted reports that a strategy hit its search-space bound
	// without finding a solution. Recovered the same way as ErrTimeout.
	ErrExhausted = errors.New("search: search space exhausted")

	// ErrNoSolution reports that every attempted strategy timed out or
	// was exhausted. This is the only failure the selector surfaces.
	ErrNoSolution = errors.New("search: all strategies failed")
)

// Solution is an ordered move sequence. Applying it to the input state
// yields the solved state; an empty solution means the input was already
// solved.
type Solution []types.Move

// Notation returns the solution in token form.
func (s Solution) Notation() string {
	return types.FormatMoves(s)
}

// Strategy names a search strategy, in fallback order.
type Strategy string

const (
	StrategyBFS           Strategy = "bfs"
	StrategyBidirectional Strategy = "bidirectional"
	StrategyIDAStar       Strategy = "idastar"
)

// FallbackOrder is the fixed order strategies are retried in after a
// timeout or exhaustion.
var FallbackOrder = []Strategy{StrategyBFS, StrategyBidirectional, StrategyIDAStar}

// Engine is the shared strategy contract. Solve must poll ctx at every
// frontier-expansion step so a blocked strategy can be abandoned within one
// expansion step's cost.
type Engine interface {
	Solve(ctx context.Context, start cube.State) (Solution, error)
}

// Outcome classifies how a strategy attempt ended.
type Outcome string

const (
	OutcomeSolved    Outcome = "solved"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeError     Outcome = "error"
)

// Attempt records one strategy run for the caller's observability.
type Attempt struct {
	Strategy Strategy      `json:"strategy"`
	Outcome  Outcome       `json:"outcome"`
	Elapsed  time.Duration `json:"elapsed"`
	Moves    int           `json:"moves"` // solution length, -1 if none
}

func classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSolved
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	case errors.Is(err, ErrExhausted):
		return OutcomeExhausted
	default:
		return OutcomeError
	}
}

// checkDeadline maps context cancellation onto the ErrTimeout taxonomy.
// Strategies call it once per expansion step; the worst-case overrun is one
// expansion's cost.
func checkDeadline(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	default:
		return nil
	}
}

// extend returns path plus one move, never aliasing the input's backing
// array. Frontier paths are shared between sibling nodes, so an in-place
// append would corrupt them.
func extend(path []types.Move, m types.Move) []types.Move {
	out := make([]types.Move, len(path)+1)
	copy(out, path)
	out[len(path)] = m
	return out
}
