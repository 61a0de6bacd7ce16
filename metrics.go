package annealgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// RecordMove is called from the annealing hot loop; implementations must be
// cheap and must not block.
type MetricsCollector interface {
	// RecordRun is called after each completed Run.
	// iterations is the number of Metropolis steps executed, duration the
	// wall-clock time taken.
	RecordRun(iterations int, duration time.Duration)

	// RecordMove is called after every Metropolis step.
	// accepted reports whether the move was kept; improving reports whether
	// it lowered the total energy (improving implies accepted).
	RecordMove(accepted, improving bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, time.Duration) {}
func (NoopMetricsCollector) RecordMove(bool, bool)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount       atomic.Int64
	RunTotalNanos  atomic.Int64
	StepCount      atomic.Int64
	AcceptedMoves  atomic.Int64
	ImprovingMoves atomic.Int64
	RejectedMoves  atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, duration time.Duration) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
}

// RecordMove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMove(accepted, improving bool) {
	b.StepCount.Add(1)
	if accepted {
		b.AcceptedMoves.Add(1)
	} else {
		b.RejectedMoves.Add(1)
	}
	if improving {
		b.ImprovingMoves.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:       b.RunCount.Load(),
		RunAvgNanos:    b.getAvgRunNanos(),
		StepCount:      b.StepCount.Load(),
		AcceptedMoves:  b.AcceptedMoves.Load(),
		ImprovingMoves: b.ImprovingMoves.Load(),
		RejectedMoves:  b.RejectedMoves.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount       int64
	RunAvgNanos    int64
	StepCount      int64
	AcceptedMoves  int64
	ImprovingMoves int64
	RejectedMoves  int64
}
