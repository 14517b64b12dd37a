package settings

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"tickboard/internal/board"
	appErrors "tickboard/internal/errors"
)

// backendCase opens a fresh store and a reopen func that returns a second
// handle onto the same durable medium.
type backendCase struct {
	name string
	open func(t *testing.T) (first Store, reopen func() Store)
}

func backendCases() []backendCase {
	return []backendCase{
		{
			name: "file",
			open: func(t *testing.T) (Store, func() Store) {
				path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
				first, err := NewFileStore(path)
				if err != nil {
					t.Fatalf("NewFileStore: %v", err)
				}
				return first, func() Store {
					s, err := NewFileStore(path)
					if err != nil {
						t.Fatalf("reopen file store: %v", err)
					}
					return s
				}
			},
		},
		{
			name: "sqlite",
			open: func(t *testing.T) (Store, func() Store) {
				path := filepath.Join(t.TempDir(), "settings.db")
				first, err := OpenSQLiteStore(context.Background(), path)
				if err != nil {
					t.Fatalf("OpenSQLiteStore: %v", err)
				}
				return first, func() Store {
					s, err := OpenSQLiteStore(context.Background(), path)
					if err != nil {
						t.Fatalf("reopen sqlite store: %v", err)
					}
					t.Cleanup(func() { _ = s.Close() })
					return s
				}
			},
		},
		{
			name: "redis",
			open: func(t *testing.T) (Store, func() Store) {
				mr, err := miniredis.Run()
				if err != nil {
					t.Fatalf("start miniredis: %v", err)
				}
				t.Cleanup(mr.Close)
				first, err := OpenRedisStore(context.Background(), "redis://"+mr.Addr()+"/0")
				if err != nil {
					t.Fatalf("OpenRedisStore: %v", err)
				}
				return first, func() Store {
					s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
					t.Cleanup(func() { _ = s.Close() })
					return s
				}
			},
		},
	}
}

func TestStoresRoundTripAcrossReopen(t *testing.T) {
	for _, bc := range backendCases() {
		t.Run(bc.name, func(t *testing.T) {
			ctx := context.Background()
			first, reopen := bc.open(t)

			prefs, err := LoadPreferences(ctx, first)
			if err != nil {
				t.Fatalf("LoadPreferences: %v", err)
			}
			if prefs != board.DefaultPreferences() {
				t.Fatalf("expected defaults on first run, got %+v", prefs)
			}

			if err := SavePreference(ctx, first, KeyGroupBy, string(board.GroupByUser)); err != nil {
				t.Fatalf("SavePreference: %v", err)
			}
			if err := SavePreference(ctx, first, KeySortBy, string(board.SortByTitle)); err != nil {
				t.Fatalf("SavePreference: %v", err)
			}
			// Last write wins.
			if err := SavePreference(ctx, first, KeySortBy, string(board.SortByPriority)); err != nil {
				t.Fatalf("SavePreference: %v", err)
			}
			if err := first.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			second := reopen()
			prefs, err = LoadPreferences(ctx, second)
			if err != nil {
				t.Fatalf("LoadPreferences after reopen: %v", err)
			}
			want := board.Preferences{GroupBy: board.GroupByUser, SortBy: board.SortByPriority}
			if prefs != want {
				t.Fatalf("expected %+v after reopen, got %+v", want, prefs)
			}
		})
	}
}

func TestStoresReportAbsence(t *testing.T) {
	for _, bc := range backendCases() {
		t.Run(bc.name, func(t *testing.T) {
			store, _ := bc.open(t)
			defer func() { _ = store.Close() }()
			if _, ok, err := store.Get(context.Background(), "missing"); err != nil || ok {
				t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestRedisStoreUsesPrefixWithoutTTL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Set(context.Background(), KeyGroupBy, "priority"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := mr.Get("tickboard:pref:groupBy")
	if err != nil || got != "priority" {
		t.Fatalf("expected prefixed key, got %q err=%v", got, err)
	}
	if ttl := mr.TTL("tickboard:pref:groupBy"); ttl != 0 {
		t.Fatalf("expected no TTL, got %v", ttl)
	}
}

func TestRedisStoreSurfacesConnectionErrors(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}))
	t.Cleanup(func() { _ = store.Close() })
	mr.Close()

	err = SavePreference(context.Background(), store, KeyGroupBy, "user")
	if !appErrors.IsCode(err, appErrors.CodeSettingsFailed) {
		t.Fatalf("expected settings_failed, got %v (%s)", err, appErrors.CodeOf(err))
	}
}

func TestFileStoreWritesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.Set(context.Background(), KeyGroupBy, "priority"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings file: %v", err)
	}
	if !strings.Contains(strings.ToLower(string(data)), "groupby: priority") {
		t.Fatalf("unexpected settings file:\n%s", data)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("groupBy: [unterminated"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	_, err = LoadPreferences(context.Background(), store)
	if !appErrors.IsCode(err, appErrors.CodeSettingsFailed) {
		t.Fatalf("expected settings_failed, got %v", err)
	}
}

func TestLoadPreferencesParsesStoredValues(t *testing.T) {
	tests := []struct {
		name string
		seed map[string]string
		want board.Preferences
	}{
		{"empty store", nil, board.DefaultPreferences()},
		{"known values", map[string]string{KeyGroupBy: "user", KeySortBy: "title"}, board.Preferences{GroupBy: board.GroupByUser, SortBy: board.SortByTitle}},
		{"unknown group falls back", map[string]string{KeyGroupBy: "team"}, board.DefaultPreferences()},
		{"unknown sort kept", map[string]string{KeySortBy: "created"}, board.Preferences{GroupBy: board.GroupByStatus, SortBy: board.SortBy("created")}},
		{"blank sort defaults", map[string]string{KeySortBy: ""}, board.DefaultPreferences()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadPreferences(context.Background(), NewMemoryStore(tt.seed))
			if err != nil {
				t.Fatalf("LoadPreferences: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSavePreferenceWrapsStoreErrors(t *testing.T) {
	store := NewMemoryStore()
	store.SetErr = errors.New("disk full")
	err := SavePreference(context.Background(), store, KeySortBy, "title")
	if !appErrors.IsCode(err, appErrors.CodeSettingsFailed) {
		t.Fatalf("expected settings_failed, got %v", err)
	}
	if !errors.Is(err, store.SetErr) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if store.Writes() != 1 {
		t.Fatalf("expected one write attempt, got %d", store.Writes())
	}
}

func TestMemoryStoreZeroValue(t *testing.T) {
	var store MemoryStore
	ctx := context.Background()
	if _, ok, err := store.Get(ctx, KeyGroupBy); ok || err != nil {
		t.Fatalf("expected absent key on zero store, got ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, KeyGroupBy, "user"); err != nil {
		t.Fatalf("Set on zero store: %v", err)
	}
	if v, ok, _ := store.Get(ctx, KeyGroupBy); !ok || v != "user" {
		t.Fatalf("expected user, got %q (ok=%v)", v, ok)
	}
}

func TestSavePreferencesWritesBoth(t *testing.T) {
	store := NewMemoryStore()
	prefs := board.Preferences{GroupBy: board.GroupByPriority, SortBy: board.SortByTitle}
	if err := SavePreferences(context.Background(), store, prefs); err != nil {
		t.Fatalf("SavePreferences: %v", err)
	}
	got, _ := LoadPreferences(context.Background(), store)
	if got != prefs {
		t.Fatalf("got %+v, want %+v", got, prefs)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := Open(ctx, Options{Backend: "memory"})
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected MemoryStore, got %T", store)
	}

	store, err = Open(ctx, Options{FilePath: filepath.Join(dir, "s.yaml")})
	if err != nil {
		t.Fatalf("Open default: %v", err)
	}
	if _, ok := store.(*FileStore); !ok {
		t.Fatalf("expected FileStore for blank backend, got %T", store)
	}

	store, err = Open(ctx, Options{Backend: "SQLite", SQLitePath: filepath.Join(dir, "s.db")})
	if err != nil {
		t.Fatalf("Open sqlite: %v", err)
	}
	_ = store.Close()

	_, err = Open(ctx, Options{Backend: "etcd"})
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration_error, got %v", err)
	}

	_, err = Open(ctx, Options{Backend: "redis", RedisURL: "not a url"})
	if !appErrors.IsCode(err, appErrors.CodeSettingsFailed) {
		t.Fatalf("expected settings_failed for bad redis url, got %v", err)
	}
}
