package cubesolver

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesolver/internal/search"
)

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	dimension       int
	budget          time.Duration
	shallow         int
	moderate        int
	override        search.Strategy
	race            bool
	acceptableMoves int
	storePath       string
	buildDepth      int
	log             *logrus.Logger
}

func defaultConfig() *config {
	return &config{
		dimension:  3,
		budget:     search.DefaultBudget,
		buildDepth: 5,
		log:        logrus.StandardLogger(),
	}
}

// WithDimension sets the puzzle size N. The default is 3 (a 3x3x3 cube).
func WithDimension(n int) Option {
	return func(c *config) {
		c.dimension = n
	}
}

// WithBudget sets the per-strategy time box. Each strategy attempt gets the
// full budget; the default is 30 seconds.
func WithBudget(d time.Duration) Option {
	return func(c *config) {
		c.budget = d
	}
}

// WithStrategy bypasses adaptive selection and always runs the named
// strategy, with no fallback.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.override = s
	}
}

// WithThresholds tunes the heuristic estimates at or below which the
// selector prefers breadth-first (shallow) and bidirectional (moderate)
// search. Zero keeps the default for that threshold.
func WithThresholds(shallow, moderate int) Option {
	return func(c *config) {
		c.shallow = shallow
		c.moderate = moderate
	}
}

// WithRace runs every strategy concurrently instead of sequentially and
// returns the best result. A result of at most acceptableMoves cancels the
// strategies still in flight; pass 0 to always wait for all of them.
func WithRace(acceptableMoves int) Option {
	return func(c *config) {
		c.race = true
		c.acceptableMoves = acceptableMoves
	}
}

// WithKnowledgeBasePath loads the knowledge base from the SQLite database
// at path during New. A missing or corrupt database is not fatal: the
// solver logs the degradation and falls back to structural estimates.
func WithKnowledgeBasePath(path string) Option {
	return func(c *config) {
		c.storePath = path
	}
}

// WithExplorationDepth sets the layer bound used by BuildKnowledgeBase.
// Table size grows exponentially with depth; the default is 5.
func WithExplorationDepth(depth int) Option {
	return func(c *config) {
		c.buildDepth = depth
	}
}

// WithLogger routes the solver's structured logs to the given logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}
