package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"tickboard/internal/config"
)

// DefaultFileName is the YAML file used by the file backend.
const DefaultFileName = "settings.yaml"

// FileStore keeps preferences in a YAML file, written the same way the config
// layer persists the theme. Each Get re-reads the file so edits made by
// another process are picked up.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore at path, or ~/.tickboard/settings.yaml when
// path is blank. The file is not touched until the first Set.
func NewFileStore(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, DefaultFileName)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file location.
func (s *FileStore) load() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return v, nil
}

// Get reads key from the file. Viper keys are case-insensitive.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.load()
	if err != nil {
		return "", false, err
	}
	if !v.IsSet(key) {
		return "", false, nil
	}
	return v.GetString(key), true, nil
}

// Set rewrites the file with key updated, creating the directory if needed.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, err := s.load()
	if err != nil {
		return err
	}
	v.Set(key, value)

	//nolint:gosec // G301: settings live beside the user config
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
