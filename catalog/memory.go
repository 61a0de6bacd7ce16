package catalog

import (
	"context"
	"slices"
	"sync"
)

// Memory is an in-memory Catalog implementation for testing.
// Thread-safe.
type Memory struct {
	mu   sync.RWMutex
	runs map[string][]Record
}

// NewMemory creates a new in-memory catalog.
func NewMemory() *Memory {
	return &Memory{
		runs: make(map[string][]Record),
	}
}

// Append records a run.
func (m *Memory) Append(_ context.Context, rec Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runs := m.runs[rec.Dataset]
	rec.Run = int64(len(runs)) + 1
	m.runs[rec.Dataset] = append(runs, rec)
	return rec.Run, nil
}

// Latest returns the most recent run for the dataset.
func (m *Memory) Latest(_ context.Context, dataset string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := m.runs[dataset]
	if len(runs) == 0 {
		return Record{}, ErrNotFound
	}
	return runs[len(runs)-1], nil
}

// List returns all runs for the dataset, oldest first.
func (m *Memory) List(_ context.Context, dataset string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.runs[dataset]), nil
}
