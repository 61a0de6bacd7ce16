package annealgo

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/time/rate"

	"github.com/clusterlab/annealgo/dataset"
	"github.com/clusterlab/annealgo/distance"
	"github.com/clusterlab/annealgo/internal/math32"
	"github.com/clusterlab/annealgo/internal/membership"
)

// Config holds the algorithmic parameters of a clustering run.
//
// Config is immutable after construction; pass it by value into New. The
// zero Metric is Euclidean.
type Config struct {
	// Clusters is the number of clusters K. Must be at least 2.
	Clusters int

	// InitialTemperature is the starting temperature. Must be positive.
	// Higher temperatures accept more energy-increasing moves early on.
	InitialTemperature float32

	// CoolingFactor multiplies the temperature after every step.
	// Must be in (0, 1); values close to 1 cool slowly.
	CoolingFactor float32

	// Metric selects the row distance. Defaults to Euclidean.
	Metric distance.Metric
}

func (c Config) validate() error {
	if c.Clusters < 2 {
		return &ErrInvalidClusterCount{Clusters: c.Clusters}
	}
	if c.CoolingFactor <= 0 || c.CoolingFactor >= 1 {
		return &ErrInvalidCoolingFactor{Factor: c.CoolingFactor}
	}
	if c.InitialTemperature <= 0 {
		return &ErrInvalidTemperature{Temperature: c.InitialTemperature}
	}
	return nil
}

// Snapshot is a point-in-time view of an annealer's progress.
type Snapshot struct {
	Iteration    int
	Temperature  float32
	TotalEnergy  float32
	ClusterCount int
}

func (s Snapshot) String() string {
	return fmt.Sprintf("iteration=%d temperature=%g total_energy=%g clusters=%d",
		s.Iteration, s.Temperature, s.TotalEnergy, s.ClusterCount)
}

// ClusterAnnealer clusters the rows of a dataset by simulated annealing.
//
// The annealer exclusively owns its dataset: construction normalizes the
// rows in place, so callers that need the raw values must Clone first.
//
// Not safe for concurrent use. A run is single-threaded and uninterruptible;
// independent annealers share no state and may run in parallel.
type ClusterAnnealer struct {
	ds     *dataset.Dataset
	cfg    Config
	distFn distance.Func
	rng    *rand.Rand

	assign   []int
	members  *membership.Index
	energies []float32
	total    float32
	temp     float32
	iter     int

	logger       *Logger
	metrics      MetricsCollector
	progress     func(Snapshot)
	progressGate *rate.Limiter
}

// New creates a ClusterAnnealer over ds.
//
// Construction validates cfg, normalizes every row of ds in place, assigns
// each row to a uniformly random cluster and fills the per-cluster energy
// cache. It either fully succeeds or fails without touching ds.
func New(ds *dataset.Dataset, cfg Config, optFns ...Option) (*ClusterAnnealer, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	distFn, err := distance.Provider(cfg.Metric)
	if err != nil {
		return nil, err
	}

	opts := applyOptions(optFns)

	seed := time.Now().UnixNano()
	if opts.seed != nil {
		seed = *opts.seed
	}

	a := &ClusterAnnealer{
		ds:       ds,
		cfg:      cfg,
		distFn:   distFn,
		rng:      rand.New(rand.NewSource(seed)),
		assign:   make([]int, ds.Len()),
		members:  membership.New(cfg.Clusters),
		energies: make([]float32, cfg.Clusters),
		temp:     cfg.InitialTemperature,
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
		progress: opts.progress,
	}
	if a.progress != nil {
		a.progressGate = rate.NewLimiter(opts.progressRate, 1)
	}

	ds.NormalizeInPlace()

	for row := 0; row < ds.Len(); row++ {
		c := a.rng.Intn(cfg.Clusters)
		a.assign[row] = c
		a.members.Add(c, uint32(row))
	}
	for c := 0; c < cfg.Clusters; c++ {
		a.energies[c] = a.clusterEnergy(c)
	}
	a.total = math32.Mean(a.energies)

	a.logger.WithRows(ds.Len()).WithClusters(cfg.Clusters).Debug("annealer initialized",
		"total_energy", a.total,
		"temperature", a.temp,
	)

	return a, nil
}

// Run executes exactly iterations Metropolis steps and returns the count
// executed. There is no convergence criterion and no early exit; the
// temperature cools by the configured factor every step regardless of
// whether the move was accepted.
func (a *ClusterAnnealer) Run(iterations int) int {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		a.step()
	}
	a.metrics.RecordRun(iterations, time.Since(start))
	a.logger.LogRun(context.Background(), iterations, a.Snapshot())

	return iterations
}

// step performs one Metropolis move attempt.
func (a *ClusterAnnealer) step() {
	row := a.rng.Intn(len(a.assign))
	from := a.assign[row]

	// Uniform draw over the K-1 clusters other than from.
	to := a.rng.Intn(a.cfg.Clusters - 1)
	if to >= from {
		to++
	}

	// Tentative move. Only the two touched clusters are recomputed; the
	// rest of the energy cache stays valid.
	a.assign[row] = to
	a.members.Move(uint32(row), from, to)
	oldFrom, oldTo := a.energies[from], a.energies[to]
	a.energies[from] = a.clusterEnergy(from)
	a.energies[to] = a.clusterEnergy(to)

	newTotal := math32.Mean(a.energies)

	improving := newTotal < a.total
	accepted := improving
	if !accepted {
		// Metropolis: accept an energy-increasing move with probability
		// exp(-delta/T), using a draw independent of the cluster draw above.
		delta := newTotal - a.total
		accepted = a.rng.Float32() < math32.Exp(-delta/a.temp)
	}

	if accepted {
		a.total = newTotal
	} else {
		a.assign[row] = from
		a.members.Move(uint32(row), to, from)
		a.energies[from] = oldFrom
		a.energies[to] = oldTo
	}

	a.temp *= a.cfg.CoolingFactor
	a.iter++

	a.metrics.RecordMove(accepted, improving)
	if a.progress != nil && a.progressGate.Allow() {
		a.progress(a.Snapshot())
	}
}

// clusterEnergy sums the pairwise row distance over all unordered member
// pairs of cluster c. Empty and singleton clusters have energy 0.
func (a *ClusterAnnealer) clusterEnergy(c int) float32 {
	members := a.members.Members(c)
	if len(members) < 2 {
		return 0
	}

	var sum float32
	for i := 0; i < len(members)-1; i++ {
		ri := a.ds.Row(int(members[i]))
		for j := i + 1; j < len(members); j++ {
			sum += a.distFn(ri, a.ds.Row(int(members[j])))
		}
	}

	return sum
}

// Snapshot returns the current progress of the annealer.
func (a *ClusterAnnealer) Snapshot() Snapshot {
	return Snapshot{
		Iteration:    a.iter,
		Temperature:  a.temp,
		TotalEnergy:  a.total,
		ClusterCount: a.cfg.Clusters,
	}
}

// Assignments returns a copy of the current row-to-cluster assignment.
// Cluster indices are 0-based.
func (a *ClusterAnnealer) Assignments() []int {
	out := make([]int, len(a.assign))
	copy(out, a.assign)
	return out
}

// Energies returns a copy of the per-cluster energy cache.
func (a *ClusterAnnealer) Energies() []float32 {
	out := make([]float32, len(a.energies))
	copy(out, a.energies)
	return out
}

// Members returns the rows currently assigned to cluster c, ascending.
func (a *ClusterAnnealer) Members(c int) []uint32 {
	return a.members.Members(c)
}

// Clusters returns the member rows of every cluster, indexed by cluster.
func (a *ClusterAnnealer) Clusters() [][]uint32 {
	out := make([][]uint32, a.cfg.Clusters)
	for c := range out {
		out[c] = a.members.Members(c)
	}
	return out
}

// TotalEnergy returns the current accepted total energy (mean of the
// per-cluster energies).
func (a *ClusterAnnealer) TotalEnergy() float32 {
	return a.total
}

// Temperature returns the current temperature.
func (a *ClusterAnnealer) Temperature() float32 {
	return a.temp
}

// ClusterCount returns K.
func (a *ClusterAnnealer) ClusterCount() int {
	return a.cfg.Clusters
}

// Rows returns the number of rows in the dataset.
func (a *ClusterAnnealer) Rows() int {
	return a.ds.Len()
}

// Dataset returns the annealer's (normalized) dataset.
func (a *ClusterAnnealer) Dataset() *dataset.Dataset {
	return a.ds
}
