package johnson

import (
	"context"
	"fmt"

	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/digraph"
	"golang.org/x/sync/errgroup"
)

// Options tunes a solve.
type Options struct {
	// Workers bounds the number of concurrent per-source passes. Values below
	// 2 run the passes sequentially on the calling goroutine.
	Workers int
}

// Solve computes all-pairs shortest distances of g or reports infeasibility.
// The only error it returns is the context's, when cancelled mid-solve.
func Solve(ctx context.Context, g *digraph.Graph, opts Options) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	edges := g.Edges()

	h, ok := potentials(g, edges)
	if !ok {
		logger.Debug("Distance graph has a negative cycle.", "nodes", g.Len(), "edges", len(edges))
		return Infeasible(), nil
	}

	n := g.Len()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}

	if opts.Workers > 1 {
		grp, gctx := errgroup.WithContext(ctx)
		grp.SetLimit(opts.Workers)
		for src := 0; src < n; src++ {
			src := src
			grp.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				shortestFrom(g, h, src, dist[src])
				return nil
			})
		}
		if err := grp.Wait(); err != nil {
			return Result{}, fmt.Errorf("distance graph solve interrupted: %w", err)
		}
	} else {
		for src := 0; src < n; src++ {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("distance graph solve interrupted: %w", err)
			}
			shortestFrom(g, h, src, dist[src])
		}
	}

	logger.Debug("Distance graph solved.", "nodes", n, "edges", len(edges), "workers", opts.Workers)
	return Result{Feasible: true, dist: dist, potential: h}, nil
}
