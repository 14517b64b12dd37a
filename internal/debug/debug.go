// Package debug provides debug logging infrastructure for tickboard.
// Logging is only enabled when --debug flag is passed at startup.
// Logs are written to ~/.tickboard/debug.log, truncated on each launch.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// LogFileName is the name of the debug log file.
	LogFileName = "debug.log"
	// LogDirName is the name of the directory containing the log file.
	LogDirName = ".tickboard"
)

// Fields is an alias so callers don't need to import logrus for structured entries.
type Fields = logrus.Fields

var (
	mu      sync.RWMutex
	enabled bool
	logger  *logrus.Logger
	logFile *os.File

	// getLogPath is a function variable to allow overriding in tests.
	getLogPath = defaultGetLogPath
)

// Init initializes the debug logging system.
// If enable is false, all logging operations become no-ops.
// If enable is true, the log file is created/truncated at ~/.tickboard/debug.log.
func Init(enable bool) error {
	mu.Lock()
	defer mu.Unlock()

	enabled = enable
	if !enable {
		logger = newLogger(io.Discard)
		return nil
	}

	logPath, err := getLogPath()
	if err != nil {
		return fmt.Errorf("determine log path: %w", err)
	}

	dir := filepath.Dir(logPath)
	//nolint:gosec // G301: User config directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	//nolint:gosec // G304: Log path is computed from user home, not user input
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = newLogger(f)
	logger.Infof("=== tickboard debug log started at %s ===", time.Now().Format(time.RFC3339))

	return nil
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000000",
	})
	return l
}

// Close closes the debug log file if open.
// Safe to call even if logging is disabled.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Log writes a debug message if debug logging is enabled.
// Arguments are handled in the manner of fmt.Print.
func Log(v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Debug(v...)
}

// Logf writes a formatted debug message if debug logging is enabled.
// Arguments are handled in the manner of fmt.Printf.
func Logf(format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.Debugf(format, v...)
}

// WithFields writes msg with structured key/value pairs attached.
func WithFields(fields Fields, msg string) {
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.WithFields(fields).Debug(msg)
}

// Error writes err with a short context message. Errors are logged at error
// level so they stand out in the file.
func Error(context string, err error) {
	if err == nil {
		return
	}
	mu.RLock()
	defer mu.RUnlock()

	if !enabled || logger == nil {
		return
	}
	logger.WithError(err).Error(context)
}

// Enabled returns whether debug logging is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func defaultGetLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, LogDirName, LogFileName), nil
}

// GetLogPath returns the path to the debug log file.
func GetLogPath() (string, error) {
	return getLogPath()
}
