package dataset

import "github.com/clusterlab/annealgo/internal/math32"

// MinMaxInPlace rescales v in place so its minimum maps to 0 and its maximum
// to 1. Min and max are found in a single pass.
//
// A constant row has no span to rescale over; it maps to all zeros rather
// than dividing by zero. Returns false in that case.
func MinMaxInPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}

	minVal, maxVal := math32.MinMax(v)
	span := maxVal - minVal
	if span == 0 {
		for i := range v {
			v[i] = 0
		}
		return false
	}

	inv := 1 / span
	for i := range v {
		v[i] = (v[i] - minVal) * inv
	}

	return true
}

// NormalizeInPlace min-max rescales every row of the Dataset independently.
func (d *Dataset) NormalizeInPlace() {
	for i := 0; i < d.Len(); i++ {
		MinMaxInPlace(d.Row(i))
	}
}
