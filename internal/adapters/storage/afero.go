package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when a path does not exist.
var ErrNotFound = errors.New("file not found")

// AferoStorage implements Storage on top of an afero filesystem.
type AferoStorage struct {
	fs       afero.Fs
	basePath string
}

// NewAferoStorage creates a storage adapter rooted at basePath.
func NewAferoStorage(fs afero.Fs, basePath string) *AferoStorage {
	return &AferoStorage{
		fs:       fs,
		basePath: basePath,
	}
}

// resolvePath resolves a path relative to the base path.
func (s *AferoStorage) resolvePath(path string) string {
	if filepath.IsAbs(path) || s.basePath == "" {
		return path
	}
	return filepath.Join(s.basePath, path)
}

// Read reads contents from a path.
func (s *AferoStorage) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := afero.ReadFile(s.fs, s.resolvePath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}

// Write writes contents to a path, creating parent directories.
func (s *AferoStorage) Write(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := s.resolvePath(path)
	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, fullPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Exists checks if a path exists.
func (s *AferoStorage) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return afero.Exists(s.fs, s.resolvePath(path))
}

// Open opens a path for streaming reads.
func (s *AferoStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fs.Open(s.resolvePath(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

// Ensure AferoStorage implements Storage interface.
var _ Storage = (*AferoStorage)(nil)
