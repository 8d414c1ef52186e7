package search

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/heuristic"
)

// Selector thresholds: scrambles estimated at or below Shallow go to
// breadth-first search first; at or below Moderate to bidirectional; deeper
// ones straight to IDA*.
const (
	DefaultShallowThreshold  = 4
	DefaultModerateThreshold = 8
	DefaultBudget            = 30 * time.Second
)

// Report is what a solve invocation hands back: the winning solution plus
// every attempted strategy with its outcome and elapsed time. Callers lean
// on the attempt list for observability; it is populated even on failure.
type Report struct {
	Solution Solution  `json:"solution"`
	Winner   Strategy  `json:"winner,omitempty"`
	Attempts []Attempt `json:"attempts"`
	Estimate int       `json:"estimate"`
}

// Selector inspects the heuristic estimate of the input state, picks a
// strategy, and falls through the fixed order BFS -> Bidirectional -> IDA*
// on timeout or exhaustion. Each attempt is time-boxed independently.
type Selector struct {
	Evaluator *heuristic.Evaluator
	Log       logrus.FieldLogger

	// Budget is the per-strategy time box; 0 means DefaultBudget.
	Budget time.Duration

	// Shallow and Moderate are the estimate thresholds; 0 means defaults.
	Shallow  int
	Moderate int

	// Override, when non-empty, bypasses adaptive selection and runs only
	// the named strategy.
	Override Strategy

	engines map[Strategy]Engine
	once    sync.Once
}

func (sel *Selector) init() {
	sel.once.Do(func() {
		if sel.Log == nil {
			sel.Log = logrus.StandardLogger()
		}
		if sel.Budget <= 0 {
			sel.Budget = DefaultBudget
		}
		if sel.Shallow <= 0 {
			sel.Shallow = DefaultShallowThreshold
		}
		if sel.Moderate <= 0 {
			sel.Moderate = DefaultModerateThreshold
		}
		sel.engines = map[Strategy]Engine{
			StrategyBFS:           &BreadthFirst{},
			StrategyBidirectional: &Bidirectional{},
			StrategyIDAStar:       &IDAStar{Evaluator: sel.Evaluator},
		}
	})
}

// plan returns the attempt order: the preferred strategy for the estimate,
// then the remaining strategies in fixed fallback order.
func (sel *Selector) plan(estimate int) []Strategy {
	if sel.Override != "" {
		return []Strategy{sel.Override}
	}

	preferred := StrategyIDAStar
	switch {
	case estimate <= sel.Shallow:
		preferred = StrategyBFS
	case estimate <= sel.Moderate:
		preferred = StrategyBidirectional
	}

	order := []Strategy{preferred}
	for _, s := range FallbackOrder {
		if s != preferred {
			order = append(order, s)
		}
	}
	return order
}

// Solve runs the attempt plan sequentially, stopping at the first strategy
// that produces a solution. An already-solved input returns an empty
// solution without invoking any strategy. If every attempt fails, the
// report still carries each attempt's outcome and the error wraps
// ErrNoSolution.
func (sel *Selector) Solve(ctx context.Context, start cube.State) (*Report, error) {
	sel.init()

	report := &Report{Attempts: []Attempt{}}
	if start.IsSolved() {
		report.Solution = Solution{}
		return report, nil
	}

	report.Estimate = sel.Evaluator.Estimate(start)

	for _, name := range sel.plan(report.Estimate) {
		engine, ok := sel.engines[name]
		if !ok {
			return report, fmt.Errorf("search: unknown strategy %q", name)
		}

		attempt := sel.run(ctx, engine, name, start)
		report.Attempts = append(report.Attempts, attempt.Attempt)

		if attempt.err == nil {
			report.Solution = attempt.solution
			report.Winner = name
			return report, nil
		}
		if ctx.Err() != nil {
			break // the caller's own deadline is gone, stop burning budgets
		}
	}

	return report, fmt.Errorf("%w: %s", ErrNoSolution, summarize(report.Attempts))
}

// Race runs every planned strategy concurrently and returns the best result:
// fewest moves, ties broken by earliest strategy in fallback order. A result
// at or under acceptableMoves cancels the strategies still in flight;
// cancellation is cooperative, so each stops within one expansion step.
func (sel *Selector) Race(ctx context.Context, start cube.State, acceptableMoves int) (*Report, error) {
	sel.init()

	report := &Report{Attempts: []Attempt{}}
	if start.IsSolved() {
		report.Solution = Solution{}
		return report, nil
	}

	report.Estimate = sel.Evaluator.Estimate(start)
	plan := sel.plan(report.Estimate)

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan raceResult, len(plan))
	for _, name := range plan {
		engine, ok := sel.engines[name]
		if !ok {
			return report, fmt.Errorf("search: unknown strategy %q", name)
		}
		go func(name Strategy, engine Engine) {
			results <- raceResult{name: name, attemptResult: sel.run(raceCtx, engine, name, start)}
		}(name, engine)
	}

	byStrategy := make(map[Strategy]attemptResult, len(plan))
	for range plan {
		res := <-results
		byStrategy[res.name] = res.attemptResult
		if res.err == nil && acceptableMoves > 0 && len(res.solution) <= acceptableMoves {
			cancel()
		}
	}

	// Report attempts in plan order regardless of completion order.
	for _, name := range plan {
		report.Attempts = append(report.Attempts, byStrategy[name].Attempt)
	}

	// Fewest moves wins; ties go to the earliest strategy in fallback order.
	var best *attemptResult
	var winner Strategy
	for _, name := range FallbackOrder {
		res, ok := byStrategy[name]
		if !ok || res.err != nil {
			continue
		}
		if best == nil || len(res.solution) < len(best.solution) {
			r := res
			best = &r
			winner = name
		}
	}

	if best == nil {
		return report, fmt.Errorf("%w: %s", ErrNoSolution, summarize(report.Attempts))
	}
	report.Solution = best.solution
	report.Winner = winner
	return report, nil
}

type attemptResult struct {
	Attempt
	solution Solution
	err      error
}

type raceResult struct {
	name Strategy
	attemptResult
}

// run executes one time-boxed strategy attempt and logs its outcome.
func (sel *Selector) run(ctx context.Context, engine Engine, name Strategy, start cube.State) attemptResult {
	attemptCtx, cancel := context.WithTimeout(ctx, sel.Budget)
	defer cancel()

	began := time.Now()
	solution, err := engine.Solve(attemptCtx, start)
	elapsed := time.Since(began)

	res := attemptResult{
		Attempt: Attempt{
			Strategy: name,
			Outcome:  classify(err),
			Elapsed:  elapsed,
			Moves:    -1,
		},
		solution: solution,
		err:      err,
	}
	if err == nil {
		res.Attempt.Moves = len(solution)
	}

	sel.Log.WithFields(logrus.Fields{
		"strategy": name,
		"outcome":  res.Outcome,
		"elapsed":  elapsed.Round(time.Millisecond),
		"moves":    res.Attempt.Moves,
	}).Debug("strategy attempt finished")

	return res
}

func summarize(attempts []Attempt) string {
	parts := make([]string, len(attempts))
	for i, a := range attempts {
		parts[i] = fmt.Sprintf("%s=%s after %s", a.Strategy, a.Outcome, a.Elapsed.Round(time.Millisecond))
	}
	return strings.Join(parts, ", ")
}
