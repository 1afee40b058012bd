// Package container provides dependency injection.
package container

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/satishbabariya/olap-go/internal/adapters/database"
	"github.com/satishbabariya/olap-go/internal/adapters/storage"
	"github.com/satishbabariya/olap-go/internal/config"
	"github.com/satishbabariya/olap-go/internal/repository"
	"github.com/satishbabariya/olap-go/internal/service"
)

// Container holds all application dependencies.
type Container struct {
	// Configuration
	config *config.Config

	// Adapters
	store     storage.Storage
	dbAdapter database.Adapter

	// Repositories
	historyRepo repository.HistoryRepository

	// Services
	queryService  *service.QueryService
	resultService *service.ResultService
}

// NewContainer creates a new dependency injection container.
// The history database, when enabled, is connected on first use.
func NewContainer(cfg *config.Config, fs afero.Fs) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	var err error
	c.store, err = storage.NewStorage(&storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
	}, fs)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage: %w", err)
	}

	if cfg.History.Enabled {
		adapter, err := database.NewAdapter(database.Config{
			Provider:       cfg.History.Provider,
			URL:            cfg.History.URL,
			MaxConnections: cfg.History.MaxConnections,
			ConnectTimeout: cfg.History.ConnectTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create database adapter: %w", err)
		}
		c.dbAdapter = adapter
		c.historyRepo = repository.NewHistoryRepository(adapter)
	}

	c.queryService = service.NewQueryService(c.store, c.historyRepo)
	c.resultService = service.NewResultService(c.store)

	return c, nil
}

// Config returns the configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Storage returns the storage adapter.
func (c *Container) Storage() storage.Storage {
	return c.store
}

// QueryService returns the query service.
func (c *Container) QueryService() *service.QueryService {
	return c.queryService
}

// ResultService returns the result service.
func (c *Container) ResultService() *service.ResultService {
	return c.resultService
}

// Close cleans up resources.
func (c *Container) Close(ctx context.Context) error {
	if c.dbAdapter != nil {
		return c.dbAdapter.Disconnect(ctx)
	}
	return nil
}
