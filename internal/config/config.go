package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	KeySourceEndpoint = "source.endpoint"

	KeyAvatarBaseURL = "avatar.base-url"
	KeyAvatarSize    = "avatar.size"

	KeySettingsBackend    = "settings.backend"
	KeySettingsPath       = "settings.path"
	KeySettingsSQLitePath = "settings.sqlite-path"
	KeySettingsRedisURL   = "settings.redis-url"

	KeyBoardLocale  = "board.locale"
	KeyOutputFormat = "output.format"
	KeyServeAddr    = "serve.addr"
	KeyTheme        = "theme"
)

const (
	// DefaultEndpoint is the ticket feed queried when nothing else is configured.
	DefaultEndpoint = "https://api.quicksell.co/v1/internal/frontend-assignment"
	// DefaultAvatarBaseURL prefixes avatar image URLs.
	DefaultAvatarBaseURL = "https://api.adorable.io/avatars"
	// DefaultAvatarSize is the pixel size segment of avatar URLs.
	DefaultAvatarSize = 50

	envPrefix = "TB"
	dirName   = ".tickboard"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize behaviour. Useful for tests to override paths.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig explicitly sets the project config path instead of discovery.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// userConfigPathOverride is used by tests to redirect SaveTheme.
	userConfigPathOverride string
)

// Initialize loads configuration using the precedence:
// defaults < user config < project config < environment variables < overrides.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides injects values typically coming from CLI flags.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString fetches a string configuration value, initializing on demand.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt fetches an integer configuration value, initializing on demand.
func GetInt(key string) int {
	v, err := getViper()
	if err != nil {
		return 0
	}
	return v.GetInt(key)
}

// Dir returns ~/.tickboard, the home of user config, settings and logs.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return fmt.Errorf("load user config: %w", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return fmt.Errorf("load project config: %w", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: Config loader intentionally reads user and project config files
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, dirName, "config.yaml")
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceEndpoint, DefaultEndpoint)
	v.SetDefault(KeyAvatarBaseURL, DefaultAvatarBaseURL)
	v.SetDefault(KeyAvatarSize, DefaultAvatarSize)
	v.SetDefault(KeySettingsBackend, "file")
	v.SetDefault(KeySettingsPath, "")
	v.SetDefault(KeySettingsSQLitePath, "")
	v.SetDefault(KeySettingsRedisURL, "redis://localhost:6379/0")
	v.SetDefault(KeyBoardLocale, "en")
	v.SetDefault(KeyOutputFormat, "rich")
	v.SetDefault(KeyServeAddr, "")
	v.SetDefault(KeyTheme, "tokyonight")
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	userConfigPathOverride = ""
}

// ResetForTesting clears package state for tests in other packages.
// Returns a cleanup function that should be deferred.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	userConfigPathOverride = filepath.Join(tmp, "user.yaml")
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(userConfigPathOverride))
	return reset
}

// SaveTheme persists the theme name to the appropriate config file.
// If a project config (.tickboard/config.yaml) exists, it updates that file.
// Otherwise, it updates the user config (~/.tickboard/config.yaml).
// The user config directory is auto-created if needed, but project config
// directories are never auto-created.
func SaveTheme(themeName string) error {
	targetPath, err := findWritableConfigPath()
	if err != nil {
		return fmt.Errorf("find config path: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(targetPath)
	_ = v.ReadInConfig() // missing file is fine

	v.Set(KeyTheme, themeName)

	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := v.WriteConfigAs(targetPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return Set(KeyTheme, themeName)
}

// findWritableConfigPath returns the project config path if one exists,
// otherwise the user config path.
func findWritableConfigPath() (string, error) {
	if userConfigPathOverride != "" {
		return userConfigPathOverride, nil
	}
	wd, err := os.Getwd()
	if err == nil {
		projectPath, err := findProjectConfig(wd)
		if err == nil && projectPath != "" {
			return projectPath, nil
		}
	}
	return defaultUserConfigPath()
}
