package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/olap-go/internal/adapters/database"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

func newMockRepository(t *testing.T, dialect database.SQLDialect) (*HistoryRepositoryImpl, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewHistoryRepository(database.NewAdapterFromDB(db, dialect)), mock
}

func TestHistoryRepository_Record(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t, database.PostgreSQL)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS olap_query_history").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO olap_query_history (name, cube, mdx, created_at) VALUES ($1, $2, $3, $4)")).
		WithArgs("sales", "[Sales]", "SELECT ...", created).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO olap_query_history")).
		WithArgs("sales", "[Sales]", "SELECT ...", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))

	require.NoError(t, repo.Record(ctx, &domain.CompiledQuery{
		Name: "sales", Cube: "[Sales]", MDX: "SELECT ...", CreatedAt: created,
	}))

	// Table creation runs once per repository.
	entry := &domain.CompiledQuery{Name: "sales", Cube: "[Sales]", MDX: "SELECT ..."}
	require.NoError(t, repo.Record(ctx, entry))
	assert.False(t, entry.CreatedAt.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t, database.SQLite)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS olap_query_history").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, cube, mdx, created_at FROM olap_query_history ORDER BY created_at DESC, id DESC LIMIT ?")).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cube", "mdx", "created_at"}).
			AddRow(2, "b", "[Sales]", "SELECT b", created).
			AddRow(1, "a", "[Sales]", "SELECT a", created))

	entries, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ID)
	assert.Equal(t, "SELECT a", entries[1].MDX)
	assert.Equal(t, created, entries[1].CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepository(t, database.MySQL)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS olap_query_history").
		WillReturnError(errors.New("permission denied"))

	err := repo.Record(ctx, &domain.CompiledQuery{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS olap_query_history").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, name").
		WillReturnError(errors.New("connection reset"))

	_, err = repo.List(ctx, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query history")

	assert.NoError(t, mock.ExpectationsWereMet())
}
