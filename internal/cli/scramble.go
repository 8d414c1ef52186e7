package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cubesolver "github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

var (
	scrambleMin int
	scrambleMax int
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble from the solved state and print the move
sequence, the serialized state, and the cube net. The sequence never
contains a move immediately followed by its inverse.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMin, "min", 3, "Minimum moves")
	scrambleCmd.Flags().IntVar(&scrambleMax, "max", 6, "Maximum moves")
}

func runScramble(cmd *cobra.Command, args []string) error {
	solver, err := cubesolver.New(
		cubesolver.WithDimension(dimension),
		cubesolver.WithLogger(newLogger()),
	)
	if err != nil {
		return err
	}

	state, moves := solver.Scramble(scrambleMin, scrambleMax)
	fmt.Printf("%s %s\n", labelStyle.Render("Moves:"), valueStyle.Render(types.FormatMoves(moves)))
	fmt.Printf("%s %s\n", labelStyle.Render("State:"), state)
	fmt.Println(renderNet(state))
	return nil
}
