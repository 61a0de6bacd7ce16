package minio

import (
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	bucket := "test-annealgo"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "clustering/")

	t.Run("PutOpenDelete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "runs/a.csv", []byte("Rowname,Cluster\ng1,1\n")))

		r, err := store.Open(ctx, "runs/a.csv")
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, "Rowname,Cluster\ng1,1\n", string(data))

		names, err := store.List(ctx, "runs/")
		require.NoError(t, err)
		assert.Contains(t, names, "runs/a.csv")

		require.NoError(t, store.Delete(ctx, "runs/a.csv"))
	})

	t.Run("CreateStreams", func(t *testing.T) {
		w, err := store.Create(ctx, "runs/b.csv")
		require.NoError(t, err)
		_, err = w.Write([]byte("Rowname,Cluster\n"))
		require.NoError(t, err)
		_, err = w.Write([]byte("g2,2\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		r, err := store.Open(ctx, "runs/b.csv")
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		require.NoError(t, r.Close())
		assert.Equal(t, "Rowname,Cluster\ng2,2\n", string(data))

		require.NoError(t, store.Delete(ctx, "runs/b.csv"))
	})
}
