// Package settings persists the board preferences between sessions.
package settings

import (
	"context"
	"fmt"
	"strings"

	"tickboard/internal/board"
	"tickboard/internal/debug"
	appErrors "tickboard/internal/errors"
)

// Preference keys.
const (
	KeyGroupBy = "groupBy"
	KeySortBy  = "sortBy"
)

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Store is a durable string key/value medium. Absent keys report ok=false;
// callers supply defaults. Last write wins.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend    string
	FilePath   string
	SQLitePath string
	RedisURL   string
}

// Open builds the configured backend. An empty backend selects the YAML file.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	var (
		store Store
		err   error
	)
	switch backend {
	case "", BackendFile:
		store, err = NewFileStore(opts.FilePath)
	case BackendSQLite:
		store, err = OpenSQLiteStore(ctx, opts.SQLitePath)
	case BackendRedis:
		store, err = OpenRedisStore(ctx, opts.RedisURL)
	case BackendMemory:
		store = NewMemoryStore()
	default:
		return nil, appErrors.New(appErrors.CodeConfigurationError,
			fmt.Sprintf("unknown settings backend %q (expected file, sqlite, redis or memory)", opts.Backend), nil)
	}
	if err != nil {
		return nil, wrap(fmt.Sprintf("open %s settings store", backendName(backend)), err)
	}
	debug.WithFields(debug.Fields{"backend": backendName(backend)}, "settings store opened")
	return store, nil
}

func backendName(backend string) string {
	if backend == "" {
		return BackendFile
	}
	return backend
}

// LoadPreferences reads both board modes, applying status/priority when a key
// is absent. Unknown groupBy values fall back to status; unknown sortBy values
// are kept so the board shows tickets in feed order.
func LoadPreferences(ctx context.Context, store Store) (board.Preferences, error) {
	prefs := board.DefaultPreferences()
	if store == nil {
		return prefs, nil
	}

	rawGroup, ok, err := store.Get(ctx, KeyGroupBy)
	if err != nil {
		return prefs, wrap("read groupBy preference", err)
	}
	if ok {
		if parsed, known := board.ParseGroupBy(rawGroup); known {
			prefs.GroupBy = parsed
		} else {
			debug.Logf("ignoring stored groupBy %q", rawGroup)
		}
	}

	rawSort, ok, err := store.Get(ctx, KeySortBy)
	if err != nil {
		return prefs, wrap("read sortBy preference", err)
	}
	if ok {
		prefs.SortBy, _ = board.ParseSortBy(rawSort)
	}
	return prefs, nil
}

// SavePreference writes one preference through to the store.
func SavePreference(ctx context.Context, store Store, key, value string) error {
	if store == nil {
		return nil
	}
	if err := store.Set(ctx, key, value); err != nil {
		return wrap(fmt.Sprintf("write %s preference", key), err)
	}
	debug.WithFields(debug.Fields{"key": key, "value": value}, "preference saved")
	return nil
}

// SavePreferences writes both modes.
func SavePreferences(ctx context.Context, store Store, prefs board.Preferences) error {
	if err := SavePreference(ctx, store, KeyGroupBy, string(prefs.GroupBy)); err != nil {
		return err
	}
	return SavePreference(ctx, store, KeySortBy, string(prefs.SortBy))
}

func wrap(msg string, err error) error {
	if appErrors.CodeOf(err) != appErrors.CodeUnknown {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return appErrors.New(appErrors.CodeSettingsFailed, fmt.Sprintf("%s: %v", msg, err), err)
}
