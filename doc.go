// Package annealgo provides a simulated-annealing clustering engine for
// labeled numeric tables.
//
// The annealer owns a float32 data matrix, min-max normalizes every row in
// place at construction, assigns rows to K clusters at random and then
// improves the assignment with Metropolis-accepted single-row moves while the
// temperature cools geometrically. The objective is the mean intra-cluster
// pairwise distance across all clusters.
//
// # Quick Start
//
//	ds, _ := dataset.DSV{Delimiter: '\t'}.ReadTable(f)
//
//	annealer, _ := annealgo.New(ds, annealgo.Config{
//	    Clusters:           8,
//	    InitialTemperature: 10,
//	    CoolingFactor:      0.9999,
//	}, annealgo.WithSeed(42))
//
//	annealer.Run(200_000)
//	fmt.Println(annealer.Snapshot())
//
// For rugged energy landscapes, MultiStart runs independent restarts in
// parallel and returns the lowest-energy result:
//
//	best, _ := annealgo.MultiStart(ctx, ds, annealgo.MultiStartConfig{
//	    Config:     cfg,
//	    Restarts:   8,
//	    Iterations: 200_000,
//	    BaseSeed:   42,
//	})
//
// A single Run is synchronous and single-threaded; one annealer must never be
// shared across goroutines. Independent annealers share nothing and may run
// concurrently.
package annealgo
