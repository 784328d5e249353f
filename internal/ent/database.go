// Package ent wraps database access for the generated ent client.
package ent

//go:generate go run -mod=mod entc.go

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/memedex/memedex/internal/ent/generated"
)

// Option is a functional option for configuring the database client.
type Option func(*options)

type options struct {
	debug bool
}

// WithDebug enables debug logging for SQL queries.
func WithDebug() Option {
	return func(o *options) {
		o.debug = true
	}
}

// Open opens a database connection and returns an ent client.
// For SQLite, the DSN should be a path to the database file or ":memory:"
// for an in-memory database.
func Open(driverName, dsn string, opts ...Option) (*generated.Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	entDialect := mapDialect(driverName)
	if entDialect == dialect.SQLite {
		if err = configureSQLite(db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	drv := entsql.OpenDB(entDialect, db)

	clientOpts := []generated.Option{generated.Driver(drv)}
	if o.debug {
		clientOpts = append(clientOpts, generated.Debug())
	}

	return generated.NewClient(clientOpts...), nil
}

// OpenSQLite is a convenience function for opening a SQLite database.
func OpenSQLite(dsn string, opts ...Option) (*generated.Client, error) {
	return Open("sqlite", dsn, opts...)
}

// mapDialect maps driver names to ent dialect constants.
func mapDialect(driver string) string {
	switch driver {
	case "sqlite", "sqlite3":
		return dialect.SQLite
	case "postgres", "postgresql", "pgx":
		return dialect.Postgres
	default:
		return driver
	}
}

// configureSQLite applies SQLite-specific PRAGMA settings.
func configureSQLite(db *sql.DB) error {
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL mode keeps the scheduler and request handlers from blocking each other.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return nil
}

// Migrate runs auto-migrations on the database schema.
func Migrate(ctx context.Context, client *generated.Client) error {
	if err := client.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
