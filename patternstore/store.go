package patternstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a pattern does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is a read-only source of named pattern files.
type Store interface {
	// Open opens a pattern for reading. The caller owns the returned
	// ReadCloser.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// List returns the names of all patterns with the given prefix,
	// sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
