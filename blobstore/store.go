package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for storing immutable corpus artifacts.
type Store interface {
	// Put streams a blob to the store. size may be -1 if unknown.
	// An existing blob of the same name is replaced.
	Put(ctx context.Context, name string, r io.Reader, size int64) error

	// Open opens a blob for sequential reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Exists reports whether a blob exists.
	Exists(ctx context.Context, name string) (bool, error)

	// List returns all blob names with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
}
