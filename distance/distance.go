// Package distance provides the public API for row distance calculations.
// All functions operate on float32 and accumulate in float32.
package distance

import (
	"fmt"

	"github.com/clusterlab/annealgo/internal/math32"
)

// SquaredL2 calculates the squared L2 (Euclidean) distance between two rows.
// Assumes rows are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return math32.SquaredL2(a, b)
}

// Euclidean calculates the L2 (Euclidean) distance between two rows.
// Symmetric; Euclidean(a, a) == 0.
func Euclidean(a, b []float32) float32 {
	return math32.Sqrt(math32.SquaredL2(a, b))
}

// Manhattan calculates the L1 (Manhattan) distance between two rows.
func Manhattan(a, b []float32) float32 {
	return math32.L1(a, b)
}

// Metric represents the distance metric used for row comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredL2
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredL2:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
