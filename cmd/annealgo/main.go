// Command annealgo clusters a delimited numeric table by simulated annealing
// and writes the resulting row-to-cluster assignment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/clusterlab/annealgo"
	"github.com/clusterlab/annealgo/blobstore"
	"github.com/clusterlab/annealgo/chart"
	"github.com/clusterlab/annealgo/dataset"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		input      = flag.String("input", "", "input table (required); .gz/.zst/.lz4 are decompressed")
		delimiter  = flag.String("delimiter", "\t", "column delimiter (single character)")
		clusters   = flag.Int("clusters", 8, "number of clusters K")
		temp       = flag.Float64("temp", 10, "initial temperature")
		cool       = flag.Float64("cool", 0.9999, "cooling factor in (0,1)")
		iterations = flag.Int("iterations", 200_000, "annealing steps per run")
		output     = flag.String("output", "clusters.txt", "assignment output; .gz/.zst/.lz4 are compressed")
		chartDir   = flag.String("charts", "", "directory for per-cluster charts (empty disables)")
		seed       = flag.Int64("seed", 0, "random seed (0 = time-based)")
		restarts   = flag.Int("restarts", 1, "independent restarts; lowest-energy result wins")
		parallel   = flag.Int("parallelism", 0, "max concurrent restarts (0 = unbounded)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		return fmt.Errorf("missing -input")
	}
	if utf8.RuneCountInString(*delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", *delimiter)
	}
	delim, _ := utf8.DecodeRuneInString(*delimiter)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := annealgo.NewTextLogger(level)

	ctx := context.Background()

	ds, err := loadTable(ctx, logger, *input, delim)
	if err != nil {
		return err
	}

	cfg := annealgo.Config{
		Clusters:           *clusters,
		InitialTemperature: float32(*temp),
		CoolingFactor:      float32(*cool),
	}

	opts := []annealgo.Option{annealgo.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, annealgo.WithSeed(*seed))
	}

	var best *annealgo.ClusterAnnealer
	if *restarts > 1 {
		best, err = annealgo.MultiStart(ctx, ds, annealgo.MultiStartConfig{
			Config:      cfg,
			Restarts:    *restarts,
			Iterations:  *iterations,
			Parallelism: *parallel,
			BaseSeed:    *seed,
			Seeded:      *seed != 0,
		}, annealgo.WithLogger(logger))
		if err != nil {
			return err
		}
	} else {
		best, err = annealgo.New(ds, cfg, opts...)
		if err != nil {
			return err
		}
		best.Run(*iterations)
	}

	if err := writeAssignments(ctx, logger, *output, best, delim); err != nil {
		return err
	}

	if *chartDir != "" {
		store, err := blobstore.NewLocalStore(*chartDir)
		if err != nil {
			return fmt.Errorf("open chart directory: %w", err)
		}
		if err := chart.RenderClusters(ctx, store, nil, best.Dataset(), best.Clusters(), "cluster-"); err != nil {
			return err
		}
	}

	fmt.Println(best.Snapshot())
	return nil
}

func loadTable(ctx context.Context, logger *annealgo.Logger, name string, delim rune) (*dataset.Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		logger.LogLoad(ctx, 0, 0, err)
		return nil, err
	}
	defer f.Close()

	rc, err := dataset.WrapReader(name, f)
	if err != nil {
		logger.LogLoad(ctx, 0, 0, err)
		return nil, err
	}
	defer rc.Close()

	ds, err := dataset.DSV{Delimiter: delim}.ReadTable(rc)
	if err != nil {
		logger.LogLoad(ctx, 0, 0, err)
		return nil, err
	}
	logger.LogLoad(ctx, ds.Len(), ds.Width(), nil)

	return ds, nil
}

func writeAssignments(ctx context.Context, logger *annealgo.Logger, name string, a *annealgo.ClusterAnnealer, delim rune) error {
	f, err := os.Create(name)
	if err != nil {
		logger.LogWriteAssignments(ctx, name, 0, err)
		return err
	}
	defer f.Close()

	wc, err := dataset.WrapWriter(name, f)
	if err != nil {
		logger.LogWriteAssignments(ctx, name, 0, err)
		return err
	}

	if err := dataset.WriteAssignments(wc, a.Dataset().Labels(), a.Assignments(), delim); err != nil {
		logger.LogWriteAssignments(ctx, name, 0, err)
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		logger.LogWriteAssignments(ctx, name, 0, err)
		return err
	}

	logger.LogWriteAssignments(ctx, name, a.Rows(), nil)
	return nil
}
