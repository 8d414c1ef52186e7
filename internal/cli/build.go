package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
)

var buildDepth int

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and persist the knowledge base",
	Long: `Explore outward from the solved state, record the exact solve distance of
every state reached, and persist the table to the --db file.

Deeper exploration gives tighter heuristic estimates but grows the table
quickly; depth 5 is a practical default for a 3x3x3.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().IntVar(&buildDepth, "depth", 5, "Exploration depth from the solved state")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if dbPath == "" {
		return fmt.Errorf("build requires --db")
	}

	// The existing table is replaced wholesale, so skip loading it.
	solver, err := cubesolver.New(
		cubesolver.WithDimension(dimension),
		cubesolver.WithExplorationDepth(buildDepth),
		cubesolver.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := solver.BuildKnowledgeBase(cmd.Context()); err != nil {
		return fmt.Errorf("building knowledge base: %w", err)
	}
	if err := solver.SaveKnowledgeBase(cmd.Context(), dbPath); err != nil {
		return fmt.Errorf("saving knowledge base: %w", err)
	}

	fmt.Println(titleStyle.Render("Knowledge base built"))
	fmt.Printf("%s %s\n", labelStyle.Render("States:"), valueStyle.Render(fmt.Sprintf("%d", solver.KnowledgeBaseSize())))
	fmt.Printf("%s %s\n", labelStyle.Render("Depth:"), valueStyle.Render(fmt.Sprintf("%d", buildDepth)))
	fmt.Printf("%s %s\n", labelStyle.Render("Elapsed:"), valueStyle.Render(time.Since(start).Round(time.Millisecond).String()))
	fmt.Printf("%s %s\n", labelStyle.Render("Saved to:"), valueStyle.Render(dbPath))
	return nil
}
