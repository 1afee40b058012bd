package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"            // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"  // SQLite driver
)

// ErrNotConnected is returned when the adapter is used before Connect.
var ErrNotConnected = errors.New("database not connected")

// SQLAdapter implements Adapter on top of database/sql.
type SQLAdapter struct {
	db      *sql.DB
	driver  string
	dialect SQLDialect
	config  Config
}

// NewAdapter creates an adapter for the configured provider.
func NewAdapter(config Config) (*SQLAdapter, error) {
	a := &SQLAdapter{config: config}

	switch config.Provider {
	case "postgresql", "postgres":
		a.driver, a.dialect = "postgres", PostgreSQL
	case "mysql":
		a.driver, a.dialect = "mysql", MySQL
	case "sqlite", "sqlite3", "":
		a.driver, a.dialect = "sqlite3", SQLite
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", config.Provider)
	}

	return a, nil
}

// NewAdapterFromDB wraps an already opened database.
func NewAdapterFromDB(db *sql.DB, dialect SQLDialect) *SQLAdapter {
	return &SQLAdapter{db: db, dialect: dialect}
}

// Connect establishes a connection to the database.
func (a *SQLAdapter) Connect(ctx context.Context) error {
	if a.db != nil {
		return nil
	}

	dsn, err := a.dataSourceName()
	if err != nil {
		return err
	}

	db, err := sql.Open(a.driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if a.dialect == SQLite {
		// Single writer
		db.SetMaxOpenConns(1)
	} else if a.config.MaxConnections > 0 {
		db.SetMaxOpenConns(a.config.MaxConnections)
	}

	timeout := time.Duration(a.config.ConnectTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = db
	return nil
}

// dataSourceName returns the URL passed to sql.Open. MySQL timestamps are
// only scanned into time.Time with parseTime set.
func (a *SQLAdapter) dataSourceName() (string, error) {
	if a.dialect != MySQL {
		return a.config.URL, nil
	}

	cfg, err := mysql.ParseDSN(a.config.URL)
	if err != nil {
		return "", fmt.Errorf("invalid mysql url: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Disconnect closes the database connection.
func (a *SQLAdapter) Disconnect(ctx context.Context) error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// Execute executes a query without returning rows.
func (a *SQLAdapter) Execute(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if a.db == nil {
		return nil, ErrNotConnected
	}
	return a.db.ExecContext(ctx, query, args...)
}

// Query executes a query that returns rows.
func (a *SQLAdapter) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	if a.db == nil {
		return nil, ErrNotConnected
	}
	return a.db.QueryContext(ctx, query, args...)
}

// Ping checks if the database connection is alive.
func (a *SQLAdapter) Ping(ctx context.Context) error {
	if a.db == nil {
		return ErrNotConnected
	}
	return a.db.PingContext(ctx)
}

// GetDialect returns the SQL dialect.
func (a *SQLAdapter) GetDialect() SQLDialect {
	return a.dialect
}

// Ensure SQLAdapter implements Adapter interface.
var _ Adapter = (*SQLAdapter)(nil)
