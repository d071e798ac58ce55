package storage

import (
	"context"
	"io"
)

// Storage defines the interface for uploaded media files (equipment photos,
// invoices, attached documents).
type Storage interface {
	// Save stores a file under the given category and returns the stored
	// name, unique across the store.
	Save(ctx context.Context, category, filename string, content io.Reader) (string, error)

	// Open opens a stored file by its stored name.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// URL returns the public URL for a stored name.
	URL(name string) string
}
