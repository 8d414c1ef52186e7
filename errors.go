package cubesolver

import (
	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/kb"
	"github.com/SeamusWaldron/cubesolver/internal/search"
)

// Sentinel errors for the cubesolver package. They are the engine's own
// sentinels re-exported, so errors.Is works across the facade boundary.
var (
	// ErrInvalidMove reports an out-of-range layer or malformed move,
	// rejected before any state is touched.
	ErrInvalidMove = cube.ErrInvalidMove

	// ErrInvalidState reports a malformed state import, rejected at the
	// boundary.
	ErrInvalidState = cube.ErrInvalidState

	// ErrTimeout reports that a strategy exceeded its budget. The selector
	// recovers it internally; it only surfaces inside ErrNoSolution detail.
	ErrTimeout = search.ErrTimeout

	// ErrExhausted reports a strategy's search bound was reached with no
	// solution. Recovered like ErrTimeout.
	ErrExhausted = search.ErrExhausted

	// ErrKnowledgeBaseUnavailable reports a missing or corrupt persisted
	// knowledge base. Never fatal: the heuristic degrades to its
	// structural fallback.
	ErrKnowledgeBaseUnavailable = kb.ErrUnavailable

	// ErrNoSolution reports that every attempted strategy timed out or was
	// exhausted. The report alongside it names each attempt's outcome.
	ErrNoSolution = search.ErrNoSolution
)
