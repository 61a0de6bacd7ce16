// Package math32 provides float32 scalar and vector kernels for the
// annealing hot path. This is an internal package - external users should
// use the distance package.
//
// Accumulation stays in float32 throughout; float64 is entered only inside
// the stdlib transcendental calls, which have no float32 counterparts.
package math32

import "math"

// SquaredL2 calculates the squared L2 distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// L1 calculates the Manhattan distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L1(a, b []float32) float32 {
	var distance float32
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		distance += d
	}

	return distance
}

// Sqrt returns the float32 square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Exp returns the float32 exponential of x.
// Underflows to 0 for large negative x, which is the behavior the
// Metropolis acceptance rule relies on as the system cools.
func Exp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// MinMax returns the minimum and maximum of v in a single pass.
// Returns (0, 0) for an empty slice.
func MinMax(v []float32) (minVal, maxVal float32) {
	if len(v) == 0 {
		return 0, 0
	}

	minVal, maxVal = v[0], v[0]
	for _, x := range v[1:] {
		if x < minVal {
			minVal = x
		}
		if x > maxVal {
			maxVal = x
		}
	}

	return minVal, maxVal
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// Mean returns the arithmetic mean of v in float32.
// Returns 0 for an empty slice.
func Mean(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}

	var sum float32
	for _, x := range v {
		sum += x
	}

	return sum / float32(len(v))
}
