package cube

import (
	"math/rand"

	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Scramble applies between minMoves and maxMoves random catalog moves to the
// state, skipping any move that would immediately cancel the previous one.
// It returns the scrambled state and the moves that were applied.
func Scramble(s State, minMoves, maxMoves int, rng *rand.Rand) (State, []types.Move) {
	if minMoves < 0 {
		minMoves = 0
	}
	if maxMoves < minMoves {
		maxMoves = minMoves
	}

	count := minMoves
	if maxMoves > minMoves {
		count += rng.Intn(maxMoves - minMoves + 1)
	}

	catalog := types.Catalog(s.Size())
	moves := make([]types.Move, 0, count)
	cur := s

	for len(moves) < count {
		m := catalog[rng.Intn(len(catalog))]
		if len(moves) > 0 && moves[len(moves)-1].IsCancellation(m) {
			continue
		}
		next, err := Apply(cur, m)
		if err != nil {
			continue
		}
		cur = next
		moves = append(moves, m)
	}

	return cur, moves
}
