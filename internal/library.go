package internal

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

const entryColumns = "id, name, author, description, source, canonical, hash, ftp, total_seconds, created_at"

// Library stores compiled workouts in SQLite, one row per distinct canonical notation.
type Library struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// OpenLibrary opens (or creates) the library at path.
func OpenLibrary(path string) (*Library, error) {
	db, err := OpenLibraryDatabase(path)
	if err != nil {
		return nil, &LibraryError{Op: "open", Err: err}
	}
	LogDebug("opened workout library %s", path)
	return &Library{db: db, path: path, now: time.Now}, nil
}

// Path returns the database file location.
func (l *Library) Path() string {
	return l.path
}

// Close closes the library database.
func (l *Library) Close() error {
	return l.db.Close()
}

// HashWorkout returns the content hash used to detect duplicate workouts.
// Two specifications that differ only in spacing or unit case hash equally.
func HashWorkout(canonical string) string {
	h := sha256.New()
	h.Write([]byte(canonical))
	return hex.EncodeToString(h.Sum(nil))
}

// Save stores cw unless a workout with the same canonical notation exists, in
// which case the existing entry is returned and created is false.
func (l *Library) Save(ctx context.Context, cw *CompiledWorkout) (entry *LibraryEntry, created bool, err error) {
	hash := HashWorkout(cw.Canonical)

	existing, err := l.queryOne(ctx, "SELECT "+entryColumns+" FROM workouts WHERE hash = ?", hash)
	if err == nil {
		LogDebug("workout %s already stored as %s", cw.Name, existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, &LibraryError{Op: "save", Err: err}
	}

	entry = &LibraryEntry{
		ID:           uuid.NewString(),
		Name:         cw.Name,
		Author:       cw.Author,
		Description:  cw.Description,
		Source:       cw.Source,
		Canonical:    cw.Canonical,
		Hash:         hash,
		FTP:          cw.FTP(),
		TotalSeconds: cw.TotalSeconds(),
		CreatedAt:    l.now().UTC().Truncate(time.Millisecond),
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO workouts (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, entry.Author, entry.Description, entry.Source, entry.Canonical,
		entry.Hash, entry.FTP, entry.TotalSeconds, entry.CreatedAt.UnixMilli())
	if err != nil {
		return nil, false, &LibraryError{Op: "save", ID: entry.ID, Err: err}
	}
	LogWith("id", entry.ShortID(), "name", entry.Name).Infof("saved workout")
	return entry, true, nil
}

// Get returns the entry whose id equals or uniquely starts with idOrPrefix.
func (l *Library) Get(ctx context.Context, idOrPrefix string) (*LibraryEntry, error) {
	idOrPrefix = strings.ToLower(strings.TrimSpace(idOrPrefix))
	if idOrPrefix == "" {
		return nil, &LibraryError{Op: "get", Err: ErrNotFound}
	}

	entry, err := l.queryOne(ctx, "SELECT "+entryColumns+" FROM workouts WHERE id = ?", idOrPrefix)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, &LibraryError{Op: "get", ID: idOrPrefix, Err: err}
	}

	matches, err := l.query(ctx,
		"SELECT "+entryColumns+" FROM workouts WHERE substr(id, 1, ?) = ? ORDER BY created_at LIMIT 2",
		len(idOrPrefix), idOrPrefix)
	if err != nil {
		return nil, &LibraryError{Op: "get", ID: idOrPrefix, Err: err}
	}
	switch len(matches) {
	case 0:
		return nil, &LibraryError{Op: "get", ID: idOrPrefix, Err: ErrNotFound}
	case 1:
		return matches[0], nil
	default:
		return nil, &LibraryError{Op: "get", ID: idOrPrefix, Err: ErrAmbiguousID}
	}
}

// List returns every entry, newest first.
func (l *Library) List(ctx context.Context) ([]*LibraryEntry, error) {
	entries, err := l.query(ctx, "SELECT "+entryColumns+" FROM workouts ORDER BY created_at DESC, name")
	if err != nil {
		return nil, &LibraryError{Op: "list", Err: err}
	}
	return entries, nil
}

// Delete removes the entry addressed by idOrPrefix and returns it.
func (l *Library) Delete(ctx context.Context, idOrPrefix string) (*LibraryEntry, error) {
	entry, err := l.Get(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	if _, err := l.db.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", entry.ID); err != nil {
		return nil, &LibraryError{Op: "delete", ID: entry.ID, Err: err}
	}
	LogWith("id", entry.ShortID(), "name", entry.Name).Infof("deleted workout")
	return entry, nil
}

// Count returns the number of stored workouts.
func (l *Library) Count() (int, error) {
	return CountWorkouts(l.db)
}

func (l *Library) queryOne(ctx context.Context, query string, args ...any) (*LibraryEntry, error) {
	return scanEntry(l.db.QueryRowContext(ctx, query, args...))
}

func (l *Library) query(ctx context.Context, query string, args ...any) ([]*LibraryEntry, error) {
	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var entries []*LibraryEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*LibraryEntry, error) {
	var e LibraryEntry
	var createdAt int64
	if err := row.Scan(&e.ID, &e.Name, &e.Author, &e.Description, &e.Source, &e.Canonical,
		&e.Hash, &e.FTP, &e.TotalSeconds, &createdAt); err != nil {
		return nil, err
	}
	e.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &e, nil
}

// Age renders how long ago the entry was stored, e.g. "3 hours ago".
func (e *LibraryEntry) Age(now time.Time) string {
	return humanize.RelTime(e.CreatedAt, now, "ago", "from now")
}
