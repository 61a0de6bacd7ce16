package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ds, err := New([]string{"a", "b"}, [][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 2, ds.Width())
	assert.Equal(t, []float32{1, 2}, ds.Row(0))
	assert.Equal(t, []float32{3, 4}, ds.Row(1))
	assert.Equal(t, "a", ds.Label(0))
	assert.Equal(t, []string{"a", "b"}, ds.Labels())
}

func TestNew_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := New(nil, nil)
		assert.ErrorIs(t, err, ErrEmptyTable)
	})

	t.Run("LabelCountMismatch", func(t *testing.T) {
		_, err := New([]string{"a"}, [][]float32{{1}, {2}})
		assert.Error(t, err)
	})

	t.Run("WidthMismatch", func(t *testing.T) {
		_, err := New([]string{"a", "b"}, [][]float32{{1, 2}, {3}})
		var wm *ErrRowWidthMismatch
		require.ErrorAs(t, err, &wm)
		assert.Equal(t, 2, wm.Expected)
		assert.Equal(t, 1, wm.Actual)
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		_, err := New([]string{"a"}, [][]float32{{}})
		assert.Error(t, err)
	})
}

func TestDataset_Clone(t *testing.T) {
	ds, err := New([]string{"a"}, [][]float32{{1, 2}})
	require.NoError(t, err)

	clone := ds.Clone()
	clone.Row(0)[0] = 99

	assert.Equal(t, float32(1), ds.Row(0)[0])
	assert.Equal(t, float32(99), clone.Row(0)[0])
}

func TestMinMaxInPlace(t *testing.T) {
	t.Run("Rescales", func(t *testing.T) {
		v := []float32{2, 4, 6}
		ok := MinMaxInPlace(v)
		assert.True(t, ok)
		assert.InDelta(t, 0, v[0], 1e-6)
		assert.InDelta(t, 0.5, v[1], 1e-6)
		assert.InDelta(t, 1, v[2], 1e-6)
	})

	t.Run("ConstantRowMapsToZero", func(t *testing.T) {
		v := []float32{5, 5, 5}
		ok := MinMaxInPlace(v)
		assert.False(t, ok)
		assert.Equal(t, []float32{0, 0, 0}, v)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.False(t, MinMaxInPlace(nil))
	})
}

func TestDataset_NormalizeInPlace(t *testing.T) {
	ds, err := New(
		[]string{"a", "b", "c"},
		[][]float32{{-10, 0, 10}, {1, 2, 3}, {7, 7, 7}},
	)
	require.NoError(t, err)

	ds.NormalizeInPlace()

	for i := 0; i < 2; i++ {
		row := ds.Row(i)
		minVal, maxVal := row[0], row[0]
		for _, v := range row {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		assert.InDelta(t, 0, minVal, 1e-6, "row %d min", i)
		assert.InDelta(t, 1, maxVal, 1e-6, "row %d max", i)
	}

	// Constant row falls back to zeros.
	assert.Equal(t, []float32{0, 0, 0}, ds.Row(2))
}
