package annealgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when the annealer is constructed with a
	// nil or empty dataset.
	ErrEmptyDataset = errors.New("dataset contains no rows")
)

// ErrInvalidClusterCount indicates a cluster count below the minimum of 2.
type ErrInvalidClusterCount struct {
	Clusters int
}

func (e *ErrInvalidClusterCount) Error() string {
	return fmt.Sprintf("invalid cluster count: %d (need at least 2)", e.Clusters)
}

// ErrInvalidCoolingFactor indicates a cooling factor outside (0, 1).
type ErrInvalidCoolingFactor struct {
	Factor float32
}

func (e *ErrInvalidCoolingFactor) Error() string {
	return fmt.Sprintf("invalid cooling factor: %g (must be in (0, 1))", e.Factor)
}

// ErrInvalidTemperature indicates a non-positive initial temperature.
type ErrInvalidTemperature struct {
	Temperature float32
}

func (e *ErrInvalidTemperature) Error() string {
	return fmt.Sprintf("invalid initial temperature: %g (must be positive)", e.Temperature)
}
