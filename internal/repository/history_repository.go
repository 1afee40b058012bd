package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/satishbabariya/olap-go/internal/adapters/database"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

const historyTable = "olap_query_history"

// HistoryRepositoryImpl implements the HistoryRepository interface using a database.
type HistoryRepositoryImpl struct {
	db    database.Adapter
	ready bool
}

// NewHistoryRepository creates a new history repository.
func NewHistoryRepository(db database.Adapter) *HistoryRepositoryImpl {
	return &HistoryRepositoryImpl{
		db: db,
	}
}

// Record records a compiled query in the history table.
func (r *HistoryRepositoryImpl) Record(ctx context.Context, query *domain.CompiledQuery) error {
	if err := r.ensureHistoryTable(ctx); err != nil {
		return fmt.Errorf("failed to ensure history table: %w", err)
	}

	if query.CreatedAt.IsZero() {
		query.CreatedAt = time.Now().UTC()
	}

	d := r.db.GetDialect()
	stmt := fmt.Sprintf(
		"INSERT INTO %s (name, cube, mdx, created_at) VALUES (%s, %s, %s, %s)",
		historyTable, d.Placeholder(1), d.Placeholder(2), d.Placeholder(3), d.Placeholder(4),
	)

	if _, err := r.db.Execute(ctx, stmt, query.Name, query.Cube, query.MDX, query.CreatedAt); err != nil {
		return fmt.Errorf("failed to record query: %w", err)
	}

	return nil
}

// List retrieves the most recent compiled queries.
func (r *HistoryRepositoryImpl) List(ctx context.Context, limit int) ([]*domain.CompiledQuery, error) {
	if err := r.ensureHistoryTable(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure history table: %w", err)
	}
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(
		"SELECT id, name, cube, mdx, created_at FROM %s ORDER BY created_at DESC, id DESC LIMIT %s",
		historyTable, r.db.GetDialect().Placeholder(1),
	)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*domain.CompiledQuery
	for rows.Next() {
		var entry domain.CompiledQuery
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Cube, &entry.MDX, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history: %w", err)
	}

	return entries, nil
}

// ensureHistoryTable creates the history table if it does not exist.
func (r *HistoryRepositoryImpl) ensureHistoryTable(ctx context.Context) error {
	if r.ready {
		return nil
	}
	if err := r.db.Connect(ctx); err != nil {
		return err
	}

	var idColumn string
	switch r.db.GetDialect() {
	case database.PostgreSQL:
		idColumn = "id BIGSERIAL PRIMARY KEY"
	case database.MySQL:
		idColumn = "id BIGINT AUTO_INCREMENT PRIMARY KEY"
	default:
		idColumn = "id INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		%s,
		name VARCHAR(255) NOT NULL,
		cube VARCHAR(255) NOT NULL,
		mdx TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`, historyTable, idColumn)

	if _, err := r.db.Execute(ctx, stmt); err != nil {
		return err
	}

	r.ready = true
	return nil
}

// Ensure HistoryRepositoryImpl implements HistoryRepository interface.
var _ HistoryRepository = (*HistoryRepositoryImpl)(nil)
