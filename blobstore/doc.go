// Package blobstore provides storage abstraction for finished corpus
// artifacts.
//
// Corpus files are written locally while a solver run is live and uploaded
// once rotated; a Store therefore only needs whole-object streaming, not
// random access.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with atomic rename on Put
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with parallel multipart uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// Implementations must be safe for concurrent use.
package blobstore
