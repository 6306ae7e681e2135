package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the persistent Store backend. One row per rounded-coordinate
// key; writes replace the previous record for the key.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the cache database at path. An empty
// path places the database under the user cache directory.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user cache dir: %w", err)
		}
		if err := os.MkdirAll(filepath.Join(dir, "loppa"), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache dir: %w", err)
		}
		path = filepath.Join(dir, "loppa", "cache.db")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initDB(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// initDB initializes the database tables
func (s *SQLiteStore) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS weather_cache (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create weather_cache table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM weather_cache WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache record: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) Write(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO weather_cache(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write cache record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM weather_cache WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cache record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
