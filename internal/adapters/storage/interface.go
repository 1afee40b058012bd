// Package storage provides storage adapter interfaces.
package storage

import (
	"context"
	"io"
)

// Storage defines the storage adapter interface.
type Storage interface {
	// Read reads contents from a path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write writes contents to a path.
	Write(ctx context.Context, path string, content []byte) error

	// Exists checks if a path exists.
	Exists(ctx context.Context, path string) (bool, error)

	// Open opens a path for streaming reads.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Config holds storage configuration.
type Config struct {
	// Type is the storage type (filesystem, memory).
	Type string

	// BasePath is the base path for filesystem storage.
	BasePath string
}
