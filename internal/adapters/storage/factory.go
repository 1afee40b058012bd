package storage

import (
	"fmt"

	"github.com/spf13/afero"
)

// StorageType represents the type of storage.
type StorageType string

const (
	// TypeFilesystem is the filesystem storage type.
	TypeFilesystem StorageType = "filesystem"

	// TypeMemory is the in-memory storage type.
	TypeMemory StorageType = "memory"
)

// NewStorage creates a new storage adapter based on configuration.
// Filesystem storage uses fs when given, the OS filesystem otherwise.
func NewStorage(config *Config, fs afero.Fs) (Storage, error) {
	if config == nil {
		config = &Config{Type: string(TypeFilesystem)}
	}

	switch StorageType(config.Type) {
	case TypeFilesystem, "":
		if fs == nil {
			fs = afero.NewOsFs()
		}
		return NewAferoStorage(fs, config.BasePath), nil

	case TypeMemory:
		return NewAferoStorage(afero.NewMemMapFs(), config.BasePath), nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.Type)
	}
}
