package chart

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clusterlab/annealgo/blobstore"
	"github.com/clusterlab/annealgo/dataset"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		[]string{"a", "b", "c", "d"},
		[][]float32{
			{0.0, 0.5, 1.0, 0.5},
			{0.1, 0.6, 0.9, 0.4},
			{1.0, 0.2, 0.1, 0.8},
			{0.9, 0.3, 0.0, 0.7},
		},
	)
	require.NoError(t, err)
	return ds
}

func TestLineRenderer_RenderCluster(t *testing.T) {
	var buf bytes.Buffer
	r := &LineRenderer{}

	err := r.RenderCluster(&buf, testDataset(t), []uint32{0, 1}, "Cluster 0")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "expected PNG output")
}

func TestLineRenderer_SVG(t *testing.T) {
	var buf bytes.Buffer
	r := &LineRenderer{Format: "svg"}

	err := r.RenderCluster(&buf, testDataset(t), []uint32{2, 3}, "Cluster 1")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "<svg")
}

func TestRenderClusters(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	clusters := [][]uint32{
		{0, 1},
		{}, // empty clusters produce no chart
		{2, 3},
	}

	err := RenderClusters(ctx, store, nil, testDataset(t), clusters, "charts/cluster-")
	require.NoError(t, err)

	names, err := store.List(ctx, "charts/")
	require.NoError(t, err)
	assert.Equal(t, []string{"charts/cluster-0.png", "charts/cluster-2.png"}, names)

	blob, err := store.Open(ctx, "charts/cluster-0.png")
	require.NoError(t, err)
	defer blob.Close()

	header := make([]byte, len(pngMagic))
	_, err = blob.Read(header)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, header)
}
