// Package membership maintains per-cluster row membership as roaring bitmaps.
//
// The annealing loop moves one row per iteration; only the two touched
// clusters need their member sets (and energies) revisited. Bitmaps keep the
// move O(1) and member enumeration cheap for the quadratic energy recompute.
package membership

import "github.com/RoaringBitmap/roaring/v2"

// Index tracks which rows belong to which cluster.
//
// Not safe for concurrent use; it is owned by a single annealer instance,
// which is single-threaded by design.
type Index struct {
	sets []*roaring.Bitmap
}

// New creates an Index with k empty clusters.
func New(k int) *Index {
	sets := make([]*roaring.Bitmap, k)
	for i := range sets {
		sets[i] = roaring.New()
	}

	return &Index{sets: sets}
}

// Clusters returns the number of clusters.
func (x *Index) Clusters() int {
	return len(x.sets)
}

// Add places row into cluster.
func (x *Index) Add(cluster int, row uint32) {
	x.sets[cluster].Add(row)
}

// Move transfers row from one cluster to another.
func (x *Index) Move(row uint32, from, to int) {
	x.sets[from].Remove(row)
	x.sets[to].Add(row)
}

// Members returns the rows currently assigned to cluster, ascending.
func (x *Index) Members(cluster int) []uint32 {
	return x.sets[cluster].ToArray()
}

// Count returns the number of rows in cluster.
func (x *Index) Count(cluster int) int {
	return int(x.sets[cluster].GetCardinality())
}
