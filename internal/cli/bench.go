package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
)

var (
	benchSolves int
	benchMin    int
	benchMax    int
	benchBudget time.Duration
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare strategies on random scrambles",
	Long: `Run the same set of random scrambles through each strategy, plus the
adaptive selector and race mode, and print solve rate, average solution
length, and average wall time per strategy.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchSolves, "solves", 10, "Scrambles per strategy")
	benchCmd.Flags().IntVar(&benchMin, "min", 3, "Scramble minimum moves")
	benchCmd.Flags().IntVar(&benchMax, "max", 6, "Scramble maximum moves")
	benchCmd.Flags().DurationVar(&benchBudget, "budget", 10*time.Second, "Per-strategy time budget")
}

type benchRow struct {
	name   string
	solved int
	moves  int
	took   time.Duration
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchSolves < 1 {
		return fmt.Errorf("bench requires --solves >= 1")
	}
	gen, err := cubesolver.New(baseOptions()...)
	if err != nil {
		return err
	}
	scrambles := make([]string, benchSolves)
	for i := range scrambles {
		scrambles[i], _ = gen.Scramble(benchMin, benchMax)
	}

	candidates := []struct {
		name string
		opts []cubesolver.Option
	}{
		{"auto", nil},
		{"bfs", []cubesolver.Option{cubesolver.WithStrategy(cubesolver.StrategyBFS)}},
		{"bidirectional", []cubesolver.Option{cubesolver.WithStrategy(cubesolver.StrategyBidirectional)}},
		{"idastar", []cubesolver.Option{cubesolver.WithStrategy(cubesolver.StrategyIDAStar)}},
		{"race", []cubesolver.Option{cubesolver.WithRace(0)}},
	}

	rows := make([]benchRow, 0, len(candidates))
	for _, c := range candidates {
		opts := append(baseOptions(), cubesolver.WithBudget(benchBudget))
		opts = append(opts, c.opts...)
		solver, err := cubesolver.New(opts...)
		if err != nil {
			return err
		}

		row := benchRow{name: c.name}
		for _, state := range scrambles {
			start := time.Now()
			report, err := solver.Solve(cmd.Context(), state)
			row.took += time.Since(start)
			if err != nil {
				continue
			}
			row.solved++
			row.moves += len(report.Moves)
		}
		rows = append(rows, row)
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Benchmark: %d scrambles of %d-%d moves", benchSolves, benchMin, benchMax)))
	fmt.Println(headerStyle.Render(fmt.Sprintf("%-14s %8s %11s %10s", "STRATEGY", "SOLVED", "AVG MOVES", "AVG TIME")))
	for _, row := range rows {
		avgMoves := "-"
		if row.solved > 0 {
			avgMoves = fmt.Sprintf("%.1f", float64(row.moves)/float64(row.solved))
		}
		avgTime := row.took / time.Duration(benchSolves)
		fmt.Printf("%-14s %8s %11s %10s\n",
			row.name,
			fmt.Sprintf("%d/%d", row.solved, benchSolves),
			avgMoves,
			avgTime.Round(time.Millisecond))
	}
	return nil
}
