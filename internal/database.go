package internal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const librarySchema = `
CREATE TABLE IF NOT EXISTS workouts (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	author        TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL,
	canonical     TEXT NOT NULL,
	hash          TEXT NOT NULL UNIQUE,
	ftp           INTEGER NOT NULL,
	total_seconds INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS workouts_created_at ON workouts (created_at);
`

// OpenDatabase opens a SQLite database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// OpenLibraryDatabase opens (or creates) the library database at path and
// makes sure its schema exists.
func OpenLibraryDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating library dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(librarySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating library schema: %w", err)
	}
	return db, nil
}

// CountWorkouts returns the number of rows in the workouts table.
func CountWorkouts(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM workouts").Scan(&n); err != nil {
		return 0, fmt.Errorf("query failed: %w", err)
	}
	return n, nil
}
