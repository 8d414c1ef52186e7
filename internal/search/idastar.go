package search

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/internal/heuristic"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// DefaultThresholdCap is the hard ceiling on the f = g + h threshold.
const DefaultThresholdCap = 20

// IDAStar is iterative-deepening A*: depth-first passes bounded by an
// f = g + h threshold, where the threshold rises to the smallest pruned f
// after each failed pass. Only the current path is retained, so memory is
// O(depth) regardless of scramble difficulty. The depth-first expansion is
// an explicit stack rather than recursion, so deep thresholds on large
// cubes cannot hit a recursion limit.
type IDAStar struct {
	// Evaluator supplies the admissible h estimate; required.
	Evaluator *heuristic.Evaluator

	// ThresholdCap ends the search once the threshold would exceed it;
	// 0 means DefaultThresholdCap.
	ThresholdCap int
}

// successor is a child state with its heuristic, precomputed at frame push
// so children can be tried in ascending-h order.
type successor struct {
	state cube.State
	move  types.Move
	h     int
}

// frame is one level of the explicit depth-first stack.
type frame struct {
	succ []successor
	next int
}

// Solve returns a solution whose length never exceeds the winning
// threshold, ErrExhausted when the threshold cap is hit, or ErrTimeout past
// the deadline.
func (ida *IDAStar) Solve(ctx context.Context, start cube.State) (Solution, error) {
	if start.IsSolved() {
		return Solution{}, nil
	}

	limit := ida.ThresholdCap
	if limit <= 0 {
		limit = DefaultThresholdCap
	}

	catalog := types.Catalog(start.Size())
	threshold := ida.Evaluator.Estimate(start)
	if threshold < 1 {
		threshold = 1
	}

	for threshold <= limit {
		solution, nextThreshold, err := ida.pass(ctx, start, catalog, threshold)
		if err != nil {
			return nil, err
		}
		if solution != nil {
			return solution, nil
		}
		if nextThreshold == math.MaxInt {
			return nil, fmt.Errorf("%w: move graph closed below threshold %d", ErrExhausted, threshold)
		}
		threshold = nextThreshold
	}

	return nil, fmt.Errorf("%w: threshold cap %d exceeded", ErrExhausted, limit)
}

// pass runs one depth-first sweep under the given threshold. It returns the
// solution if one was reached, otherwise the smallest f value that was
// pruned, which seeds the next pass.
func (ida *IDAStar) pass(ctx context.Context, start cube.State, catalog []types.Move, threshold int) (Solution, int, error) {
	nextThreshold := math.MaxInt

	stack := []frame{{succ: ida.successors(start, catalog, nil)}}
	path := make([]types.Move, 0, threshold)

	for len(stack) > 0 {
		if err := checkDeadline(ctx); err != nil {
			return nil, 0, err
		}

		top := &stack[len(stack)-1]
		if top.next >= len(top.succ) {
			stack = stack[:len(stack)-1]
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			continue
		}

		child := top.succ[top.next]
		top.next++

		g := len(path) + 1
		f := g + child.h
		if f > threshold {
			if f < nextThreshold {
				nextThreshold = f
			}
			continue
		}

		if child.state.IsSolved() {
			solution := make(Solution, 0, g)
			solution = append(solution, path...)
			solution = append(solution, child.move)
			return solution, 0, nil
		}

		path = append(path, child.move)
		last := child.move
		stack = append(stack, frame{succ: ida.successors(child.state, catalog, &last)})
	}

	return nil, nextThreshold, nil
}

// successors expands a state's children ordered by ascending heuristic, so
// the most promising branch is walked first. The move that would undo the
// edge into this state is skipped outright; it can only revisit the parent.
func (ida *IDAStar) successors(s cube.State, catalog []types.Move, via *types.Move) []successor {
	succ := make([]successor, 0, len(catalog))
	for _, m := range catalog {
		if via != nil && via.IsCancellation(m) {
			continue
		}
		ns, err := cube.Apply(s, m)
		if err != nil {
			continue
		}
		succ = append(succ, successor{state: ns, move: m, h: ida.Evaluator.Estimate(ns)})
	}
	sort.SliceStable(succ, func(i, j int) bool {
		return succ[i].h < succ[j].h
	})
	return succ
}
