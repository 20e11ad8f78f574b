package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"countdown_tui/internal/timelog"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}

	return repo, nil
}

func (r *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS countdown_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		duration INTEGER NOT NULL,
		remaining INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		outcome TEXT NOT NULL
	)
	`
	_, err := r.db.Exec(query)
	return err
}

func (r *Repository) Create(e *timelog.Entry) error {
	result, err := r.db.Exec(
		"INSERT INTO countdown_logs (duration, remaining, started_at, ended_at, outcome) VALUES (?, ?, ?, ?, ?)",
		int64(e.Duration/time.Second),
		int64(e.Remaining/time.Second),
		e.StartedAt.UTC().Format(time.RFC3339),
		e.EndedAt.UTC().Format(time.RFC3339),
		string(e.Outcome),
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// Recent returns up to limit entries, newest first. Times are stored in
// UTC so the text ordering matches chronological order.
func (r *Repository) Recent(limit int) ([]timelog.Entry, error) {
	rows, err := r.db.Query(
		"SELECT id, duration, remaining, started_at, ended_at, outcome FROM countdown_logs ORDER BY ended_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timelog.Entry
	for rows.Next() {
		var e timelog.Entry
		var duration, remaining int64
		var startedAt, endedAt, outcome string
		if err := rows.Scan(&e.ID, &duration, &remaining, &startedAt, &endedAt, &outcome); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(duration) * time.Second
		e.Remaining = time.Duration(remaining) * time.Second
		if e.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("entry %d: started_at: %w", e.ID, err)
		}
		if e.EndedAt, err = time.Parse(time.RFC3339, endedAt); err != nil {
			return nil, fmt.Errorf("entry %d: ended_at: %w", e.ID, err)
		}
		if e.Outcome, err = timelog.ParseOutcome(outcome); err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) Close() error {
	return r.db.Close()
}
