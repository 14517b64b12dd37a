package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tickboard/internal/config"
)

// DefaultSQLiteFileName is the database used by the sqlite backend.
const DefaultSQLiteFileName = "settings.db"

const createPreferencesTable = `CREATE TABLE IF NOT EXISTS preferences (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SQLiteStore keeps preferences in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database at path, or
// ~/.tickboard/settings.db when path is blank.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, DefaultSQLiteFileName)
	}
	//nolint:gosec // G301: settings live beside the user config
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create settings directory: %w", err)
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping settings db: %w", err)
	}
	if _, err := db.ExecContext(ctx, createPreferencesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// buildSQLiteDSN creates a read-write WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "rwc")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "busy_timeout(3000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Path returns the database location.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query preference %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert preference %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
