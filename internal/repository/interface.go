// Package repository implements repository interfaces for data access.
package repository

import (
	"context"

	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

// HistoryRepository stores compiled queries.
type HistoryRepository interface {
	// Record stores a compiled query.
	Record(ctx context.Context, query *domain.CompiledQuery) error

	// List returns the most recent compiled queries, newest first.
	List(ctx context.Context, limit int) ([]*domain.CompiledQuery, error)
}
