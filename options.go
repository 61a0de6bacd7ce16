package annealgo

import (
	"log/slog"

	"golang.org/x/time/rate"
)

type options struct {
	seed             *int64
	metricsCollector MetricsCollector
	logger           *Logger
	progress         func(Snapshot)
	progressRate     rate.Limit
}

// Option configures annealer construction behavior.
//
// Options carry cross-cutting concerns (seeding, logging, metrics, progress
// reporting); the algorithmic parameters live in Config.
type Option func(*options)

// WithSeed seeds the annealer's random source for reproducible runs.
// Two annealers constructed with the same dataset, Config and seed produce
// identical assignments after the same number of iterations.
//
// Without this option the seed is taken from the wall clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		s := seed
		o.seed = &s
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &annealgo.BasicMetricsCollector{}
//	a, _ := annealgo.New(ds, cfg, annealgo.WithMetricsCollector(metrics))
//	a.Run(100_000)
//	stats := metrics.GetStats()
//	fmt.Printf("accepted: %d / %d\n", stats.AcceptedMoves, stats.StepCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := annealgo.NewJSONLogger(slog.LevelInfo)
//	a, _ := annealgo.New(ds, cfg, annealgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithProgress registers a callback invoked from inside Run with the current
// snapshot. Invocations are throttled to at most perSecond calls per second
// so reporting cannot dominate the hot loop; perSecond <= 0 means 10/s.
//
// The callback runs on the goroutine executing Run and must not call back
// into the annealer.
func WithProgress(fn func(Snapshot), perSecond float64) Option {
	return func(o *options) {
		o.progress = fn
		if perSecond > 0 {
			o.progressRate = rate.Limit(perSecond)
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		progressRate:     rate.Limit(10),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
