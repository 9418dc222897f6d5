// Package visits keeps a persistent log of directory visits in a
// SQLite database, separate from the in-session navigation stack.
package visits

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps the visit database.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens (or creates) the visit database in the given data
// directory.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "visits.db")

	conn, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	s := &Store{conn: conn, path: dbPath}

	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS visits (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		path       TEXT    NOT NULL,
		visited_at TEXT    NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_visits_path ON visits(path);
	CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits(visited_at DESC);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// Record logs a visit to path.
func (s *Store) Record(path string) error {
	_, err := s.conn.Exec(
		`INSERT INTO visits (path, visited_at) VALUES (?, ?)`,
		path, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Visit pairs a directory with how often and how recently it was
// entered.
type Visit struct {
	Path   string
	Count  int
	LastAt time.Time
}

// Top returns the n most-visited directories, most visits first, ties
// broken by recency.
func (s *Store) Top(n int) ([]Visit, error) {
	rows, err := s.conn.Query(`
		SELECT path, COUNT(*) AS cnt, MAX(visited_at) AS last
		FROM visits
		GROUP BY path
		ORDER BY cnt DESC, last DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVisits(rows)
}

// Recent returns the n most recently visited directories, newest
// first, one row per directory.
func (s *Store) Recent(n int) ([]Visit, error) {
	rows, err := s.conn.Query(`
		SELECT path, COUNT(*) AS cnt, MAX(visited_at) AS last
		FROM visits
		GROUP BY path
		ORDER BY last DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVisits(rows)
}

// Count returns the total number of logged visits.
func (s *Store) Count() (int, error) {
	var n int
	err := s.conn.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&n)
	return n, err
}

// Clear removes all logged visits.
func (s *Store) Clear() error {
	_, err := s.conn.Exec(`DELETE FROM visits`)
	return err
}

func scanVisits(rows *sql.Rows) ([]Visit, error) {
	var out []Visit
	for rows.Next() {
		var v Visit
		var last string
		if err := rows.Scan(&v.Path, &v.Count, &last); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, last); err == nil {
			v.LastAt = t
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
