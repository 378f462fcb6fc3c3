// internal/storage/object/interface.go
package object

import "context"

// Store is a read-only view of the place the dataset lives
type Store interface {
	// Read retrieves the object at the given path
	Read(ctx context.Context, path string) ([]byte, error)

	// List returns all paths matching the prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Exists checks if an object exists at the given path
	Exists(ctx context.Context, path string) (bool, error)
}
