package annealgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/annealgo/testutil"
)

func TestMultiStart(t *testing.T) {
	ctx := context.Background()
	ds := testutil.NewRNG(20).ClusteredMatrix(64, 8, 4, 0.05)

	cfg := MultiStartConfig{
		Config: Config{
			Clusters:           4,
			InitialTemperature: 1.0,
			CoolingFactor:      0.999,
		},
		Restarts:    4,
		Iterations:  5000,
		Parallelism: 2,
		BaseSeed:    100,
	}

	best, err := MultiStart(ctx, ds, cfg)
	require.NoError(t, err)
	require.NotNil(t, best)

	assert.Len(t, best.Assignments(), ds.Len())
	assert.Equal(t, 5000, best.Snapshot().Iteration)

	// The input dataset is never mutated; each restart anneals a clone.
	raw := testutil.NewRNG(20).ClusteredMatrix(64, 8, 4, 0.05)
	for i := 0; i < ds.Len(); i++ {
		assert.Equal(t, raw.Row(i), ds.Row(i))
	}
}

func TestMultiStart_BeatsAnySingleRestart(t *testing.T) {
	ctx := context.Background()
	ds := testutil.NewRNG(21).UniformMatrix(48, 6)

	cfg := MultiStartConfig{
		Config:     testConfig,
		Restarts:   3,
		Iterations: 3000,
		BaseSeed:   7,
	}

	best, err := MultiStart(ctx, ds, cfg)
	require.NoError(t, err)

	// Restart i is fully reproducible from seed BaseSeed+i.
	for i := 0; i < cfg.Restarts; i++ {
		a, err := New(ds.Clone(), cfg.Config, WithSeed(cfg.BaseSeed+int64(i)))
		require.NoError(t, err)
		a.Run(cfg.Iterations)

		assert.LessOrEqual(t, best.TotalEnergy(), a.TotalEnergy(), "restart %d", i)
	}
}

func TestMultiStart_Validation(t *testing.T) {
	ctx := context.Background()
	ds := testutil.NewRNG(22).UniformMatrix(8, 4)

	t.Run("NilDataset", func(t *testing.T) {
		_, err := MultiStart(ctx, nil, MultiStartConfig{Config: testConfig, Restarts: 1})
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("NoRestarts", func(t *testing.T) {
		_, err := MultiStart(ctx, ds, MultiStartConfig{Config: testConfig})
		assert.Error(t, err)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := MultiStartConfig{Config: testConfig, Restarts: 2, Iterations: 10}
		cfg.Clusters = 1

		_, err := MultiStart(ctx, ds, cfg)

		var target *ErrInvalidClusterCount
		assert.ErrorAs(t, err, &target)
	})
}

func TestMultiStart_ContextCanceled(t *testing.T) {
	ds := testutil.NewRNG(23).UniformMatrix(8, 4)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MultiStart(ctx, ds, MultiStartConfig{
		Config:     testConfig,
		Restarts:   2,
		Iterations: 10,
		BaseSeed:   1,
	})

	assert.ErrorIs(t, err, context.Canceled)
}
