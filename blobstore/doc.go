// Package blobstore provides storage abstraction for annealgo's artifacts:
// input tables, assignment files, rendered charts, and run summaries.
//
// Store is the interface for reading and writing named artifacts.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic Put
//   - MemoryStore: in-memory store for tests
//   - s3.Store: Amazon S3 with streaming uploads
//   - minio.Store: MinIO and other S3-compatible systems
//
// # Custom Implementations
//
// Implement the Store interface to support custom backends:
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)    // Open for reading
//	    Create(ctx, name) (io.WriteCloser, error) // Create for streaming writes
//	    Put(ctx, name, data) error                // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
