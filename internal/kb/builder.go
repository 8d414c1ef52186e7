package kb

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// Build explores the move graph outward from the solved NxNxN state with a
// layered breadth-first sweep and records the first depth at which each
// state is reached. Because the move set is closed under inversion, the
// distance from solved equals the distance to solved, so the table is an
// exact admissible heuristic within the explored radius.
//
// Expansion halts at maxDepth or when a layer discovers nothing new. Build
// is not reentrant: each call owns its table until it returns. Cancellation
// is checked on every state expansion.
func Build(ctx context.Context, n, maxDepth int, log logrus.FieldLogger) (*Table, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if maxDepth < 0 || maxDepth > 255 {
		return nil, fmt.Errorf("kb: exploration depth %d outside 0..255", maxDepth)
	}

	solved, err := cube.New(n)
	if err != nil {
		return nil, err
	}

	catalog := types.Catalog(n)
	table := newTable(n, maxDepth)
	table.record(solved, 0)

	frontier := []cube.State{solved}

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		start := time.Now()
		var next []cube.State

		for _, s := range frontier {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			for _, m := range catalog {
				ns, err := cube.Apply(s, m)
				if err != nil {
					return nil, err
				}
				if table.record(ns, depth) {
					next = append(next, ns)
				}
			}
		}

		log.WithFields(logrus.Fields{
			"depth":    depth,
			"layer":    len(next),
			"total":    table.Len(),
			"patterns": table.CornerLen(),
			"elapsed":  time.Since(start).Round(time.Millisecond),
		}).Info("knowledge base layer complete")

		frontier = next
	}

	return table, nil
}
