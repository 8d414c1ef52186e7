// Package kb builds and persists the heuristic knowledge base: a table of
// exact distances-to-solved for every state within a bounded exploration
// radius, plus a corner sub-pattern table recorded in the same sweep.
package kb

import (
	"errors"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

// ErrUnavailable is returned when a persisted knowledge base is missing or
// corrupt. Callers degrade to weaker heuristics rather than failing.
var ErrUnavailable = errors.New("kb: knowledge base unavailable")

// Table maps puzzle states to their exact distance from the solved state,
// populated for every state within the explored radius. It is mutated only
// during construction and is safe for concurrent readers afterwards.
type Table struct {
	n        int
	maxDepth int
	states   map[cube.State]uint8
	corners  map[string]uint8
}

// newTable creates an empty table for an NxNxN puzzle explored to maxDepth.
func newTable(n, maxDepth int) *Table {
	return &Table{
		n:        n,
		maxDepth: maxDepth,
		states:   make(map[cube.State]uint8),
		corners:  make(map[string]uint8),
	}
}

// Dimension returns the puzzle size N the table was built for.
func (t *Table) Dimension() int {
	return t.n
}

// MaxDepth returns the exploration radius of the table.
func (t *Table) MaxDepth() int {
	return t.maxDepth
}

// Len returns the number of full-state entries.
func (t *Table) Len() int {
	return len(t.states)
}

// CornerLen returns the number of corner-pattern entries.
func (t *Table) CornerLen() int {
	return len(t.corners)
}

// Lookup returns the exact distance for a state inside the explored radius.
func (t *Table) Lookup(s cube.State) (int, bool) {
	d, ok := t.states[s]
	return int(d), ok
}

// LookupCorner returns the lower-bound distance for a corner pattern. The
// stored value is the minimum distance over every full state sharing the
// pattern, so it never exceeds the true distance of any of them.
func (t *Table) LookupCorner(pattern string) (int, bool) {
	d, ok := t.corners[pattern]
	return int(d), ok
}

// record stores a state distance if the state has not been seen before.
// First write wins, which preserves BFS minimality.
func (t *Table) record(s cube.State, depth int) bool {
	if _, seen := t.states[s]; seen {
		return false
	}
	t.states[s] = uint8(depth)
	if pattern := s.CornerPattern(); pattern != "" {
		if _, seen := t.corners[pattern]; !seen {
			t.corners[pattern] = uint8(depth)
		}
	}
	return true
}
