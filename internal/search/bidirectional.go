package search

import (
	"context"
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// DefaultBidirectionalDepth caps the combined number of layers the two
// frontiers may expand.
const DefaultBidirectionalDepth = 14

// Bidirectional searches forward from the start state and backward from the
// solved state in lock-step layers, declaring success on the first state
// present in both visited sets. It reaches roughly twice the depth of
// unidirectional BFS for the same memory, at the documented cost that the
// combined path is near-optimal rather than certified optimal: the layer
// synchronization can meet on a state whose combined distance is slightly
// above the true minimum.
type Bidirectional struct {
	// MaxDepth bounds the total layers expanded across both frontiers;
	// 0 means DefaultBidirectionalDepth.
	MaxDepth int
}

// frontierSide owns one direction's working set: the visited map records
// the move path from that side's origin to each reached state.
type frontierSide struct {
	visited map[cube.State][]types.Move
	queue   []cube.State
}

func newSide(origin cube.State) *frontierSide {
	return &frontierSide{
		visited: map[cube.State][]types.Move{origin: nil},
		queue:   []cube.State{origin},
	}
}

// Solve returns a near-optimal solution, ErrExhausted when both frontiers
// close without meeting inside the depth bound, or ErrTimeout past the
// deadline.
func (b *Bidirectional) Solve(ctx context.Context, start cube.State) (Solution, error) {
	if start.IsSolved() {
		return Solution{}, nil
	}

	maxDepth := b.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultBidirectionalDepth
	}

	solved, err := cube.New(start.Size())
	if err != nil {
		return nil, err
	}

	forward := newSide(start)
	backward := newSide(solved)

	// The scrambled start could itself sit on the backward origin.
	if bp, ok := backward.visited[start]; ok {
		return joinPaths(nil, bp), nil
	}

	catalog := types.Catalog(start.Size())

	for depth := 0; depth < maxDepth; depth++ {
		if len(forward.queue) == 0 && len(backward.queue) == 0 {
			break
		}

		// Expanding the smaller frontier first bounds worst-case memory.
		side, other := forward, backward
		if len(backward.queue) < len(forward.queue) || len(forward.queue) == 0 {
			side, other = backward, forward
		}

		meeting, found, err := b.expandLayer(ctx, side, other, catalog)
		if err != nil {
			return nil, err
		}
		if found {
			return joinPaths(forward.visited[meeting], backward.visited[meeting]), nil
		}
	}

	return nil, fmt.Errorf("%w: frontiers never met within %d layers", ErrExhausted, maxDepth)
}

// expandLayer advances one side by a full layer, then reports the first
// newly reached state already known to the other side.
func (b *Bidirectional) expandLayer(ctx context.Context, side, other *frontierSide, catalog []types.Move) (cube.State, bool, error) {
	next := make([]cube.State, 0, len(side.queue))
	var meeting cube.State
	found := false

	for _, s := range side.queue {
		if err := checkDeadline(ctx); err != nil {
			return cube.State{}, false, err
		}

		path := side.visited[s]
		for _, m := range catalog {
			ns, err := cube.Apply(s, m)
			if err != nil {
				return cube.State{}, false, err
			}
			if _, seen := side.visited[ns]; seen {
				continue
			}
			side.visited[ns] = extend(path, m)
			next = append(next, ns)

			if !found {
				if _, hit := other.visited[ns]; hit {
					meeting = ns
					found = true
				}
			}
		}
	}

	side.queue = next
	return meeting, found, nil
}

// joinPaths concatenates the forward path to the meeting state with the
// backward path played in reverse with every move inverted: the backward
// side recorded moves leading away from solved, so undoing them walks the
// meeting state home.
func joinPaths(forward, backward []types.Move) Solution {
	solution := make(Solution, 0, len(forward)+len(backward))
	solution = append(solution, forward...)
	solution = append(solution, types.InvertMoves(backward)...)
	return solution
}
