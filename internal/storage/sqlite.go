// Package storage provides SQLite-based persistence for the edit journal.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/lmpedit/internal/editor"
)

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Entry represents one completed edit.
type Entry struct {
	ID          int64
	Operation   string
	Variant     string
	Source      string
	Destination string
	TicsBefore  float64
	TicsAfter   float64
	Removed     int64
	Added       int64
	Runs        int
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS edits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation TEXT NOT NULL,
			variant TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			tics_before REAL NOT NULL DEFAULT 0,
			tics_after REAL NOT NULL DEFAULT 0,
			removed INTEGER NOT NULL DEFAULT 0,
			added INTEGER NOT NULL DEFAULT 0,
			runs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_edits_operation ON edits(operation);
		CREATE INDEX IF NOT EXISTS idx_edits_source ON edits(source);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record adds an entry to the journal.
// Returns the ID of the inserted record.
func (s *Store) Record(e Entry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO edits
		 (operation, variant, source, destination, tics_before, tics_after, removed, added, runs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Operation, e.Variant, e.Source, e.Destination,
		e.TicsBefore, e.TicsAfter, e.Removed, e.Added, e.Runs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record edit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const entryColumns = `id, operation, variant, source, destination,
	tics_before, tics_after, removed, added, runs, created_at`

// Recent retrieves the most recent entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+entryColumns+`
		 FROM edits
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query edits: %w", err)
	}
	return scanEntries(rows)
}

// ByOperation retrieves the most recent entries of one operation.
func (s *Store) ByOperation(op string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+entryColumns+`
		 FROM edits
		 WHERE operation = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		op, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query edits: %w", err)
	}
	return scanEntries(rows)
}

// BySource retrieves every entry that read the given file, newest first.
func (s *Store) BySource(path string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT `+entryColumns+`
		 FROM edits
		 WHERE source = ?
		 ORDER BY created_at DESC, id DESC`,
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query edits: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.Operation,
			&e.Variant,
			&e.Source,
			&e.Destination,
			&e.TicsBefore,
			&e.TicsAfter,
			&e.Removed,
			&e.Added,
			&e.Runs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Clear deletes the entries of one operation, or all entries when op is empty.
func (s *Store) Clear(op string) error {
	var err error
	if op == "" {
		_, err = s.db.Exec("DELETE FROM edits")
	} else {
		_, err = s.db.Exec("DELETE FROM edits WHERE operation = ?", op)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear journal: %w", err)
	}
	return nil
}

// RecordEdit implements editor.Recorder.
// This adapter lets the editor journal its results without a storage dependency.
func (s *Store) RecordEdit(res editor.Result, variant string) error {
	_, err := s.Record(Entry{
		Operation:   string(res.Operation),
		Variant:     variant,
		Source:      res.Source,
		Destination: res.Destination,
		TicsBefore:  res.TicsBefore,
		TicsAfter:   res.TicsAfter,
		Removed:     res.Removed,
		Added:       res.Added,
		Runs:        res.Runs,
	})
	return err
}

// Ensure Store implements Recorder
var _ editor.Recorder = (*Store)(nil)

// OperationStats contains aggregated statistics for one operation.
type OperationStats struct {
	Operation string
	Count     int
	Removed   int64
	Added     int64
	LastRun   time.Time
}

// Stats retrieves statistics for every operation in the journal.
func (s *Store) Stats() (map[string]*OperationStats, error) {
	rows, err := s.db.Query(
		`SELECT operation, COUNT(*), SUM(removed), SUM(added), MAX(created_at)
		 FROM edits
		 GROUP BY operation`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get journal stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*OperationStats)
	for rows.Next() {
		var st OperationStats
		var lastRun any
		if err := rows.Scan(&st.Operation, &st.Count, &st.Removed, &st.Added, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.Operation] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
