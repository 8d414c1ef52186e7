// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath    string
	dimension int
	verbose   bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "NxNxN cube solver",
	Long: `cubesolver searches for move sequences that solve NxNxN cube puzzles.

Build a knowledge base of exact solve distances around the solved state,
then solve scrambles with breadth-first, bidirectional, or IDA* search.
Without an explicit strategy the solver picks one from the heuristic
estimate and falls back through the remaining strategies on failure.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Knowledge base file path (default: structural estimates only)")
	rootCmd.PersistentFlags().IntVarP(&dimension, "dimension", "n", 3, "Puzzle size N")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger returns the CLI logger, quiet unless --verbose is set.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// baseOptions assembles the solver options shared by all commands.
func baseOptions() []cubesolver.Option {
	opts := []cubesolver.Option{
		cubesolver.WithDimension(dimension),
		cubesolver.WithLogger(newLogger()),
	}
	if dbPath != "" {
		opts = append(opts, cubesolver.WithKnowledgeBasePath(dbPath))
	}
	return opts
}

func parseStrategy(name string) (cubesolver.Strategy, error) {
	switch name {
	case "bfs":
		return cubesolver.StrategyBFS, nil
	case "bidirectional":
		return cubesolver.StrategyBidirectional, nil
	case "idastar":
		return cubesolver.StrategyIDAStar, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want bfs, bidirectional, or idastar)", name)
	}
}
