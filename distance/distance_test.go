package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Simple", []float32{1, 2, 3}, []float32{4, 5, 6}, 27},
		{"Zero", []float32{0, 0, 0}, []float32{0, 0, 0}, 0},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Mixed", []float32{1, -1}, []float32{-1, 1}, 8},
		{"Empty", []float32{}, []float32{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredL2(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)
		})
	}
}

func TestEuclidean(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{"Pythagoras", []float32{0, 0}, []float32{3, 4}, 5},
		{"Identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 0},
		{"Unit", []float32{0}, []float32{1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Euclidean(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-5)

			// Symmetry
			assert.Equal(t, got, Euclidean(tt.b, tt.a))
		})
	}
}

func TestManhattan(t *testing.T) {
	assert.InDelta(t, float32(9), Manhattan([]float32{1, 2, 3}, []float32{4, 5, 6}), 1e-5)
	assert.InDelta(t, float32(0), Manhattan([]float32{1, 2}, []float32{1, 2}), 1e-5)
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Euclidean", MetricEuclidean.String())
		assert.Equal(t, "SquaredL2", MetricSquaredL2.String())
		assert.Equal(t, "Manhattan", MetricManhattan.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		f, err := Provider(MetricEuclidean)
		require.NoError(t, err)
		assert.InDelta(t, float32(5), f([]float32{0, 0}, []float32{3, 4}), 1e-5)

		f, err = Provider(MetricSquaredL2)
		require.NoError(t, err)
		assert.InDelta(t, float32(25), f([]float32{0, 0}, []float32{3, 4}), 1e-5)

		f, err = Provider(MetricManhattan)
		require.NoError(t, err)
		assert.InDelta(t, float32(7), f([]float32{0, 0}, []float32{3, 4}), 1e-5)

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})
}
