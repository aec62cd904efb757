// Package database persists the settings document and the countdown run
// history in a single sqlite file.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Database wraps the sqlite connection.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS countdown_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			phase TEXT,
			started_at DATETIME NOT NULL,
			target_at DATETIME NOT NULL,
			outcome TEXT DEFAULT 'running',
			ended_at DATETIME
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %q: %w", query, err)
		}
	}
	d.migrate(ctx)
	return nil
}

func (d *Database) migrate(ctx context.Context) {
	// Additive migrations for existing databases. Failures mean the column
	// already exists.
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE countdown_runs ADD COLUMN phase TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE countdown_runs ADD COLUMN ended_at DATETIME")
}
