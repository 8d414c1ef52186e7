// Package heuristic combines knowledge-base lookups with fallback estimators
// into an admissible distance-to-solved estimate.
package heuristic

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/kb"
)

// Evaluator produces admissible estimates of the number of moves remaining
// to solve a state. Estimates never exceed the true optimal distance, so
// IDA* driven by this evaluator prunes safely.
//
// Lookup order: exact knowledge-base hit, then the corner sub-pattern table,
// then a structural count of misplaced facets. When several partial
// estimates are available the maximum wins; each is admissible on its own,
// so their maximum is too.
type Evaluator struct {
	table *kb.Table
}

// New creates an evaluator over the given knowledge base. A nil table is
// allowed: the evaluator then degrades to its structural fallback, which is
// how a missing or corrupt persisted knowledge base is recovered.
func New(table *kb.Table) *Evaluator {
	return &Evaluator{table: table}
}

// HasTable reports whether a knowledge base is backing the evaluator.
func (e *Evaluator) HasTable() bool {
	return e.table != nil
}

// Estimate returns an admissible lower bound on the distance to solved.
func (e *Evaluator) Estimate(s cube.State) int {
	if s.IsSolved() {
		return 0
	}

	best := e.structural(s)

	if e.table != nil && e.table.Dimension() == s.Size() {
		if d, ok := e.table.Lookup(s); ok {
			// Exact within the explored radius.
			return d
		}
		if d, ok := e.table.LookupCorner(s.CornerPattern()); ok && d > best {
			best = d
		}
	}

	return best
}

// structural is the weakest admissible estimate: misplaced facets divided by
// the most facets a single move can touch. A slice move relocates 4N strip
// facets and, for an outer layer, permutes the N*N facets of the end face.
func (e *Evaluator) structural(s cube.State) int {
	misplaced := s.MisplacedFacets()
	if misplaced == 0 {
		return 0
	}
	n := s.Size()
	perMove := 4*n + n*n
	return (misplaced + perMove - 1) / perMove
}
