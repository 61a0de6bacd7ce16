package annealgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with annealgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithClusters adds a clusters field to the logger.
func (l *Logger) WithClusters(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("clusters", k),
	}
}

// WithRows adds a rows field to the logger.
func (l *Logger) WithRows(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", n),
	}
}

// WithDataset adds a dataset name field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// LogRun logs a completed annealing run.
func (l *Logger) LogRun(ctx context.Context, iterations int, snap Snapshot) {
	l.InfoContext(ctx, "annealing run completed",
		"iterations", iterations,
		"total_energy", snap.TotalEnergy,
		"temperature", snap.Temperature,
		"clusters", snap.ClusterCount,
	)
}

// LogRestart logs one multi-start restart.
func (l *Logger) LogRestart(ctx context.Context, restart int, energy float32) {
	l.DebugContext(ctx, "restart completed",
		"restart", restart,
		"total_energy", energy,
	)
}

// LogMultiStart logs a completed multi-start search.
func (l *Logger) LogMultiStart(ctx context.Context, restarts, bestRestart int, bestEnergy float32) {
	l.InfoContext(ctx, "multi-start completed",
		"restarts", restarts,
		"best_restart", bestRestart,
		"best_energy", bestEnergy,
	)
}

// LogLoad logs a table load.
func (l *Logger) LogLoad(ctx context.Context, rows, width int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table load failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "table loaded",
			"rows", rows,
			"width", width,
		)
	}
}

// LogWriteAssignments logs an assignment artifact write.
func (l *Logger) LogWriteAssignments(ctx context.Context, name string, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "assignment write failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "assignments written",
			"name", name,
			"rows", rows,
		)
	}
}
