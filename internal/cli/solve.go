package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	solveScramble   string
	solveStrategy   string
	solveRace       bool
	solveAcceptable int
	solveBudget     time.Duration
	solveMin        int
	solveMax        int
)

var solveCmd = &cobra.Command{
	Use:   "solve [state]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube and print the solution with a per-strategy
breakdown.

The scramble comes from one of three sources, in order of precedence:
a serialized state argument (6*N*N facet symbols, faces U D F B R L
row-major), a --scramble move sequence applied to the solved state, or a
random scramble of between --min and --max moves.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble move sequence, e.g. \"h0 v2' s1\"")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "", "Force a single strategy: bfs, bidirectional, or idastar")
	solveCmd.Flags().BoolVar(&solveRace, "race", false, "Run all strategies concurrently")
	solveCmd.Flags().IntVar(&solveAcceptable, "acceptable", 0, "Race mode: cancel the rest once a solution this short is found")
	solveCmd.Flags().DurationVar(&solveBudget, "budget", 0, "Per-strategy time budget (default 30s)")
	solveCmd.Flags().IntVar(&solveMin, "min", 3, "Random scramble minimum moves")
	solveCmd.Flags().IntVar(&solveMax, "max", 6, "Random scramble maximum moves")
}

func runSolve(cmd *cobra.Command, args []string) error {
	opts := baseOptions()
	if solveStrategy != "" {
		strategy, err := parseStrategy(solveStrategy)
		if err != nil {
			return err
		}
		opts = append(opts, cubesolver.WithStrategy(strategy))
	}
	if solveRace {
		opts = append(opts, cubesolver.WithRace(solveAcceptable))
	}
	if solveBudget > 0 {
		opts = append(opts, cubesolver.WithBudget(solveBudget))
	}

	solver, err := cubesolver.New(opts...)
	if err != nil {
		return err
	}

	var state string
	switch {
	case len(args) == 1:
		state = args[0]
	case solveScramble != "":
		moves, err := types.ParseMoves(solveScramble)
		if err != nil {
			return err
		}
		state, err = cubesolver.Apply(solver.SolvedState(), moves)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Scramble:"), valueStyle.Render(types.FormatMoves(moves)))
	default:
		var moves []types.Move
		state, moves = solver.Scramble(solveMin, solveMax)
		fmt.Printf("%s %s\n", labelStyle.Render("Scramble:"), valueStyle.Render(types.FormatMoves(moves)))
	}

	fmt.Println(renderNet(state))

	report, err := solver.Solve(cmd.Context(), state)
	if report != nil {
		printAttempts(report.Attempts)
	}
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solved"))
	if report.Winner != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Winner:"), valueStyle.Render(string(report.Winner)))
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Moves:"), valueStyle.Render(fmt.Sprintf("%d", len(report.Moves))))
	if len(report.Moves) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Solution:"), valueStyle.Render(report.Notation))
	}
	return nil
}
