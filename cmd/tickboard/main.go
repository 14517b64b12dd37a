package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"tickboard/internal/config"
	"tickboard/internal/debug"
	"tickboard/internal/httpapi"
	"tickboard/internal/settings"
	"tickboard/internal/tickets"
	"tickboard/internal/ui"
	"tickboard/internal/ui/theme"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	fs := flag.CommandLine
	flags := registerFlags(fs)
	flag.Parse()

	if *flags.version {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	runtime := computeRuntimeOptions(fs, flags)
	if err := config.ApplyOverrides(runtime.overrides()); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying flags: %v\n", err)
		os.Exit(1)
	}

	if err := debug.Init(runtime.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging disabled: %v\n", err)
	}
	code := run(runtime)
	debug.Close()
	os.Exit(code)
}

type runtimeFlags struct {
	version         *bool
	endpoint        *string
	settingsBackend *string
	outputFormat    *string
	debug           *bool
	serve           *string
}

// registerFlags declares the CLI flags with config-derived defaults.
func registerFlags(fs *flag.FlagSet) runtimeFlags {
	return runtimeFlags{
		version:         fs.Bool("version", false, "Print version information and exit"),
		endpoint:        fs.String("endpoint", config.GetString(config.KeySourceEndpoint), "Ticket feed URL"),
		settingsBackend: fs.String("settings-backend", config.GetString(config.KeySettingsBackend), "Preference store (file, sqlite, redis, memory)"),
		outputFormat:    fs.String("output-format", config.GetString(config.KeyOutputFormat), "Detail pane markdown style (rich, light, plain)"),
		debug:           fs.Bool("debug", false, "Write a debug log to ~/.tickboard/debug.log"),
		serve:           fs.String("serve", config.GetString(config.KeyServeAddr), "Serve the board API on this address instead of starting the TUI"),
	}
}

type runtimeOptions struct {
	endpoint        string
	settingsBackend string
	outputFormat    string
	serveAddr       string
	debug           bool
}

// computeRuntimeOptions resolves each option from config, letting flags that
// were explicitly set win.
func computeRuntimeOptions(fs *flag.FlagSet, flags runtimeFlags) runtimeOptions {
	visited := map[string]struct{}{}
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})
	pick := func(name, key string, value *string) string {
		if _, ok := visited[name]; ok {
			return strings.TrimSpace(*value)
		}
		return strings.TrimSpace(config.GetString(key))
	}

	opts := runtimeOptions{
		endpoint:        pick("endpoint", config.KeySourceEndpoint, flags.endpoint),
		settingsBackend: pick("settings-backend", config.KeySettingsBackend, flags.settingsBackend),
		outputFormat:    pick("output-format", config.KeyOutputFormat, flags.outputFormat),
		serveAddr:       pick("serve", config.KeyServeAddr, flags.serve),
		debug:           *flags.debug,
	}
	if opts.endpoint == "" {
		opts.endpoint = config.DefaultEndpoint
	}
	return opts
}

// overrides feeds the resolved options back into config so every later
// lookup sees the same values.
func (o runtimeOptions) overrides() map[string]any {
	return map[string]any{
		config.KeySourceEndpoint:  o.endpoint,
		config.KeySettingsBackend: o.settingsBackend,
		config.KeyOutputFormat:    o.outputFormat,
		config.KeyServeAddr:       o.serveAddr,
	}
}

func run(runtime runtimeOptions) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := settings.Open(ctx, settings.Options{
		Backend:    runtime.settingsBackend,
		FilePath:   config.GetString(config.KeySettingsPath),
		SQLitePath: config.GetString(config.KeySettingsSQLitePath),
		RedisURL:   config.GetString(config.KeySettingsRedisURL),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			debug.Error("close settings store", err)
		}
	}()

	if name := config.GetString(config.KeyTheme); !theme.SetTheme(name) {
		debug.Logf("unknown theme %q, using %s", name, theme.CurrentName())
	}

	source := tickets.NewHTTPSource(runtime.endpoint)
	locale := config.GetString(config.KeyBoardLocale)

	if runtime.serveAddr != "" {
		server := httpapi.New(source, store,
			httpapi.WithLocale(locale),
			httpapi.WithLogger(newServerLogger(os.Stderr)),
		)
		if err := server.Run(ctx, runtime.serveAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	cfg := ui.Config{
		Source: source,
		Store:  store,
		Avatar: ui.AvatarConfig{
			BaseURL: config.GetString(config.KeyAvatarBaseURL),
			Size:    config.GetInt(config.KeyAvatarSize),
		},
		Locale:       locale,
		OutputFormat: runtime.outputFormat,
		Version:      Version,
		Context:      ctx,
		SaveTheme:    config.SaveTheme,
		Clipboard:    clipboard.WriteAll,
	}
	if err := runProgram(cfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	defer app.Close()
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

func newServerLogger(w io.Writer) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return l
}
