package search

import (
	"context"
	"fmt"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// DefaultBFSDepth bounds breadth-first search to shallow scrambles; the
// frontier grows with the branching factor raised to the depth, so anything
// deeper belongs to bidirectional search or IDA*.
const DefaultBFSDepth = 7

// BreadthFirst expands the move graph layer by layer from the start state.
// The first path that reaches a solved state is optimal within MaxDepth.
type BreadthFirst struct {
	// MaxDepth bounds the search; 0 means DefaultBFSDepth.
	MaxDepth int
}

type bfsNode struct {
	state cube.State
	path  []types.Move
}

// Solve returns a shortest solution of at most MaxDepth moves, ErrExhausted
// if none exists within the bound, or ErrTimeout past the deadline.
func (b *BreadthFirst) Solve(ctx context.Context, start cube.State) (Solution, error) {
	if start.IsSolved() {
		return Solution{}, nil
	}

	maxDepth := b.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultBFSDepth
	}

	catalog := types.Catalog(start.Size())
	visited := map[cube.State]bool{start: true}
	frontier := []bfsNode{{state: start}}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		next := make([]bfsNode, 0, len(frontier))

		for _, node := range frontier {
			if err := checkDeadline(ctx); err != nil {
				return nil, err
			}

			for _, m := range catalog {
				ns, err := cube.Apply(node.state, m)
				if err != nil {
					return nil, err
				}
				if visited[ns] {
					continue
				}
				visited[ns] = true

				path := extend(node.path, m)
				if ns.IsSolved() {
					return path, nil
				}
				next = append(next, bfsNode{state: ns, path: path})
			}
		}

		frontier = next
	}

	return nil, fmt.Errorf("%w: no solution within %d moves", ErrExhausted, maxDepth)
}
