// Package catalog records completed clustering runs so pipelines can find
// the latest assignment artifact for a dataset.
//
// Implementations must be safe for concurrent use.
package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a dataset has no recorded runs.
var ErrNotFound = errors.New("no runs recorded for dataset")

// ErrConcurrentAppend is returned when another writer claimed the same run
// number first. Callers may retry Append.
var ErrConcurrentAppend = errors.New("concurrent append detected")

// Record describes one completed clustering run.
type Record struct {
	// Dataset identifies the input table (partition key).
	Dataset string `json:"dataset"`

	// Run is the monotonically increasing run number per dataset (sort key).
	// Assigned by Append.
	Run int64 `json:"run"`

	Clusters      int       `json:"clusters"`
	Seed          int64     `json:"seed"`
	Iterations    int       `json:"iterations"`
	FinalEnergy   float32   `json:"final_energy"`
	AssignmentKey string    `json:"assignment_key"`
	CreatedAt     time.Time `json:"created_at"`
}

// Catalog is a run registry.
type Catalog interface {
	// Append records a run and assigns it the next run number for its
	// dataset. Returns ErrConcurrentAppend if another writer won the race.
	Append(ctx context.Context, rec Record) (int64, error)

	// Latest returns the most recent run for the dataset.
	Latest(ctx context.Context, dataset string) (Record, error)

	// List returns all runs for the dataset, oldest first.
	List(ctx context.Context, dataset string) ([]Record, error)
}
