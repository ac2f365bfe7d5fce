// Package storage caches milestone texts in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when no text is cached for a level.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MessageEntry is one cached milestone text.
type MessageEntry struct {
	Level     int
	Text      string
	Source    string
	FetchedAt time.Time
	Hits      int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// The special path ":memory:" opens a private in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		expanded, err := expandHome(dbPath)
		if err != nil {
			return nil, err
		}
		dbPath = expanded

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Each in-memory connection would be its own database.
	db.SetMaxOpenConns(1)

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

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS milestone_messages (
			level INTEGER PRIMARY KEY,
			text TEXT NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			hits INTEGER NOT NULL DEFAULT 0
		);
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

// SaveMessage stores the latest text for a level, replacing any older one.
func (s *Store) SaveMessage(ctx context.Context, level int, text, source string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO milestone_messages (level, text, source, fetched_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(level) DO UPDATE SET
			text = excluded.text,
			source = excluded.source,
			fetched_at = excluded.fetched_at`,
		level, text, source,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save message: %w", err)
	}
	return nil
}

// LookupMessage returns the cached text for a level and counts the hit.
func (s *Store) LookupMessage(ctx context.Context, level int) (string, error) {
	var text string
	err := s.db.QueryRowContext(ctx,
		"SELECT text FROM milestone_messages WHERE level = ?",
		level,
	).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query message: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		"UPDATE milestone_messages SET hits = hits + 1 WHERE level = ?",
		level,
	); err != nil {
		return "", fmt.Errorf("storage: cannot count hit: %w", err)
	}
	return text, nil
}

// Messages lists every cached text ordered by level.
func (s *Store) Messages(ctx context.Context) ([]MessageEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT level, text, source, fetched_at, hits
		 FROM milestone_messages
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query messages: %w", err)
	}
	defer rows.Close()

	var entries []MessageEntry
	for rows.Next() {
		var e MessageEntry
		var fetchedAt any
		if err := rows.Scan(&e.Level, &e.Text, &e.Source, &fetchedAt, &e.Hits); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// The driver may hand back either a time.Time or the raw string.
		switch v := fetchedAt.(type) {
		case time.Time:
			e.FetchedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.FetchedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// ClearMessages deletes every cached text and returns how many were removed.
func (s *Store) ClearMessages(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM milestone_messages")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear messages: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n, nil
}
