package files

import (
	"context"
	"io"
)

// Storage defines the interface for the physical file storage
type Storage interface {
	// Save writes content under the stored name and returns its path and size
	Save(name string, content io.Reader) (path string, size int64, err error)

	// List returns the stored names in directory order
	List() ([]string, error)

	// Read returns the full content of a stored file
	Read(name string) ([]byte, error)
}

// Journal defines the interface for recording completed uploads
type Journal interface {
	// Record stores the metadata of an upload
	Record(ctx context.Context, file *File) error

	// List returns up to limit records, newest first
	List(ctx context.Context, limit int) ([]*File, error)
}
