package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store persists prompt entries in a sqlite database. Each process run gets
// its own session id so entries can be traced back to a run.
type Store struct {
	db      *sql.DB
	session string
}

// DefaultPath returns the history database path under the user config dir.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "slashline", "history.db"), nil
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		entry TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating entries table: %w", err)
	}
	return &Store{db: db, session: uuid.NewString()}, nil
}

// Append records one submitted entry. Blank entries are not recorded, and
// neither are immediate duplicates of the latest entry.
func (s *Store) Append(entry string) error {
	if entry == "" {
		return nil
	}
	var last string
	err := s.db.QueryRow(`SELECT entry FROM entries ORDER BY id DESC LIMIT 1`).Scan(&last)
	if err == nil && last == entry {
		return nil
	}
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("reading latest entry: %w", err)
	}
	_, err = s.db.Exec(`INSERT INTO entries (session, entry) VALUES (?, ?)`, s.session, entry)
	if err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, oldest first, ready for a Navigator.
func (s *Store) Recent(limit int) ([]string, error) {
	rows, err := s.db.Query(`SELECT entry FROM (
		SELECT id, entry FROM entries ORDER BY id DESC LIMIT ?
	) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	return scanEntries(rows)
}

// RecentSession returns up to limit entries submitted during this run,
// oldest first.
func (s *Store) RecentSession(limit int) ([]string, error) {
	rows, err := s.db.Query(`SELECT entry FROM (
		SELECT id, entry FROM entries WHERE session = ? ORDER BY id DESC LIMIT ?
	) ORDER BY id ASC`, s.session, limit)
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var entries []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Session returns this run's session id.
func (s *Store) Session() string {
	return s.session
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
