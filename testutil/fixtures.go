package testutil

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// librarySchema mirrors the workouts table created by internal.OpenLibraryDatabase.
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
)`

// LibraryRow is a workout row written straight into a library fixture.
// Canonical must be the normalized notation of Source for lookups by hash to work.
type LibraryRow struct {
	ID           string
	Name         string
	Author       string
	Description  string
	Source       string
	Canonical    string
	FTP          int
	TotalSeconds int
	CreatedAt    time.Time
}

// CreateLibraryFixture creates a workout library database at dbPath holding rows
func CreateLibraryFixture(t *testing.T, dbPath string, rows ...LibraryRow) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		t.Fatalf("Failed to create fixture directory: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(librarySchema); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	insertSQL := `INSERT INTO workouts
		(id, name, author, description, source, canonical, hash, ftp, total_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, r := range rows {
		sum := sha256.Sum256([]byte(r.Canonical))
		_, err := db.Exec(insertSQL, r.ID, r.Name, r.Author, r.Description, r.Source, r.Canonical,
			hex.EncodeToString(sum[:]), r.FTP, r.TotalSeconds, r.CreatedAt.UnixMilli())
		if err != nil {
			t.Fatalf("Failed to insert workout %s: %v", r.ID, err)
		}
	}
}

// CreateConfigFixture writes a config.yaml into dir and returns its path
func CreateConfigFixture(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}
