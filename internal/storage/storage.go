// Package storage persists durable UI state in a local SQLite database. The
// only thing stored today is the current page index, keyed per deployment,
// so a kiosk restart lands on the page it was showing.
package storage

import (
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed UI state store. It satisfies paging.Store.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the state database at dbPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}

	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS ui_state (
	key TEXT PRIMARY KEY,
	page_index INTEGER NOT NULL DEFAULT 0,
	updated_at TEXT NOT NULL
);`
	_, err := s.db.Exec(ddl)
	return err
}

// LoadPageIndex returns the persisted page index for key. ok is false when
// no row exists yet.
func (s *Store) LoadPageIndex(key string) (int, bool, error) {
	var idx int
	err := s.db.QueryRow(`SELECT page_index FROM ui_state WHERE key = ?`, key).Scan(&idx)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return idx, true, nil
}

// SavePageIndex upserts the page index for key.
func (s *Store) SavePageIndex(key string, index int) error {
	_, err := s.db.Exec(`
INSERT INTO ui_state (key, page_index, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET page_index = excluded.page_index, updated_at = excluded.updated_at`,
		key, index, time.Now().UTC().Format(time.RFC3339))
	return err
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{Scheme: "file", Path: path}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
