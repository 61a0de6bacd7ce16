// Package dataset provides the labeled float32 matrix consumed by the
// annealer, plus readers and writers for its delimited text formats.
//
// # Input Tables
//
// A table is delimited text, one row per line: the first field is the row
// label, the remaining fields are float32 values. A first line whose leading
// field is empty is treated as a header and skipped.
//
//	reader := dataset.DSV{Delimiter: ';'}
//	ds, err := reader.ReadTable(f)
//
// # Assignment Files
//
// Cluster assignments round-trip through a small delimited format with a
// "Rowname<sep>Cluster" header. Clusters are 1-indexed on disk and 0-indexed
// in memory.
//
// # Compression
//
// WrapReader and WrapWriter select a compression codec by filename extension
// (.gz, .zst, .lz4); unknown extensions pass through untouched.
package dataset
