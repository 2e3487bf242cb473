// Package store writes sampled catalog snapshots to sqlite
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the database connection
type DB struct {
	*sqlx.DB
	path string
}

// Open opens or creates the database at path
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	d := &DB{DB: db, path: path}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return d, nil
}

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}

func (d *DB) migrate() error {
	for _, m := range []string{migrationRuns, migrationFunctions, migrationSamples} {
		if _, err := d.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

const migrationRuns = `
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    interactive_clamp REAL NOT NULL,
    static_clamp REAL NOT NULL,
    functions INTEGER NOT NULL DEFAULT 0
)`

const migrationFunctions = `
CREATE TABLE IF NOT EXISTS functions (
    run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    function_id TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    formula TEXT NOT NULL,
    PRIMARY KEY (run_id, function_id)
)`

const migrationSamples = `
CREATE TABLE IF NOT EXISTS samples (
    run_id TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    function_id TEXT NOT NULL,
    variant_id TEXT NOT NULL DEFAULT '',
    view TEXT NOT NULL,
    formula TEXT NOT NULL,
    idx INTEGER NOT NULL,
    x REAL NOT NULL,
    y REAL,
    PRIMARY KEY (run_id, function_id, variant_id, view, idx)
)`
