package annealgo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/clusterlab/annealgo/dataset"
)

// MultiStartConfig configures a multi-start annealing search.
type MultiStartConfig struct {
	Config

	// Restarts is the number of independent annealing runs. Must be at
	// least 1.
	Restarts int

	// Iterations is the step budget of each restart.
	Iterations int

	// Parallelism bounds the number of concurrently running restarts.
	// Zero or negative means unbounded.
	Parallelism int

	// BaseSeed seeds restart i with BaseSeed+i, making the whole search
	// reproducible. Ignored when zero unless Seeded is set.
	BaseSeed int64

	// Seeded forces BaseSeed to be honored even when it is zero.
	Seeded bool
}

// MultiStart runs independent annealing restarts and returns the one with
// the lowest final energy.
//
// Each restart anneals its own clone of ds, so ds itself is never mutated.
// The context gates between restarts only: a restart that has started always
// runs its full iteration budget, since a single run is uninterruptible.
func MultiStart(ctx context.Context, ds *dataset.Dataset, cfg MultiStartConfig, optFns ...Option) (*ClusterAnnealer, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if cfg.Restarts < 1 {
		return nil, fmt.Errorf("invalid restart count: %d", cfg.Restarts)
	}

	opts := applyOptions(optFns)
	seeded := cfg.Seeded || cfg.BaseSeed != 0

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}

	var (
		mu          sync.Mutex
		best        *ClusterAnnealer
		bestRestart int
	)

	for i := 0; i < cfg.Restarts; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			restartOpts := slices.Clone(optFns)
			if seeded {
				restartOpts = append(restartOpts, WithSeed(cfg.BaseSeed+int64(i)))
			}

			a, err := New(ds.Clone(), cfg.Config, restartOpts...)
			if err != nil {
				return err
			}
			a.Run(cfg.Iterations)

			opts.logger.LogRestart(ctx, i, a.TotalEnergy())

			mu.Lock()
			if best == nil || a.TotalEnergy() < best.TotalEnergy() {
				best = a
				bestRestart = i
			}
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	opts.logger.LogMultiStart(ctx, cfg.Restarts, bestRestart, best.TotalEnergy())

	return best, nil
}
