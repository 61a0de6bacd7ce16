package dataset

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_RoundTrip(t *testing.T) {
	payload := []byte("gene1;1;2;3\ngene2;4;5;6\n")

	for _, name := range []string{"table.csv", "table.csv.gz", "table.csv.zst", "table.csv.lz4"} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer

			w, err := WrapWriter(name, &buf)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := WrapReader(name, &buf)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())

			assert.Equal(t, payload, got)
		})
	}
}

func TestWrapReader_PlainPassThrough(t *testing.T) {
	r, err := WrapReader("table.tsv", bytes.NewReader([]byte("abc")))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}
