// Package httpapi serves the derived board and the stored preferences over
// HTTP. It shares the grouping engine and settings store with the terminal UI.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"tickboard/internal/board"
	"tickboard/internal/settings"
	"tickboard/internal/tickets"
)

const shutdownTimeout = 5 * time.Second

// Server holds the single ticket snapshot and the current preferences.
type Server struct {
	source tickets.Source
	store  settings.Store
	locale string
	log    *log.Logger

	loadOnce sync.Once

	// writeMu serializes preference writes; mu is never held across store I/O.
	writeMu sync.Mutex

	mu       sync.RWMutex
	items    []tickets.Ticket
	fetchErr error
	loaded   bool
	prefs    board.Preferences
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for request and fetch logging.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLocale sets the collation locale for title and user ordering.
func WithLocale(tag string) Option {
	return func(s *Server) {
		s.locale = tag
	}
}

// New creates a Server. Call Load before serving.
func New(source tickets.Source, store settings.Store, opts ...Option) *Server {
	s := &Server{
		source: source,
		store:  store,
		locale: board.DefaultLocale,
		log:    log.New(),
		prefs:  board.DefaultPreferences(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the stored preferences and performs the one ticket fetch.
// Subsequent calls are no-ops. Failures are logged and leave the board empty.
func (s *Server) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		prefs, err := settings.LoadPreferences(ctx, s.store)
		if err != nil {
			s.log.WithError(err).Warn("preferences.load.failed")
			prefs = board.DefaultPreferences()
		}

		var items []tickets.Ticket
		start := time.Now()
		if s.source != nil {
			items, err = s.source.Fetch(ctx)
		}
		fields := log.Fields{
			"tickets":  len(items),
			"fetch_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			s.log.WithFields(fields).WithError(err).Error("tickets.fetch.failed")
			items = nil
		} else {
			s.log.WithFields(fields).Info("tickets.fetch.done")
		}

		s.mu.Lock()
		s.prefs = prefs
		s.items = items
		s.fetchErr = err
		s.loaded = true
		s.mu.Unlock()
	})
}

// Echo builds an echo instance with all routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = sonicSerializer{}
	e.Use(middleware.Recover())
	e.Use(requestLogger(s.log))
	s.Register(e)
	return e
}

// Register wires up all API routes on the provided Echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/api/board", s.getBoard)
	e.GET("/api/preferences", s.getPreferences)
	e.PUT("/api/preferences", s.putPreferences)
	e.GET("/healthz", s.healthz)
}

// Run loads the snapshot and serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.Load(ctx)
	e := s.Echo()

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("server.start")
		errCh <- e.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("server.shutdown")
		return e.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) snapshot() ([]tickets.Ticket, board.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.prefs, s.fetchErr
}
