package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tickboard/internal/board"
	"tickboard/internal/debug"
	"tickboard/internal/settings"
	"tickboard/internal/tickets"
)

const (
	minColumnWidth   = 28
	maxColumnWidth   = 48
	minDetailWidth   = 32
	minViewportLines = 5
)

// Config configures the UI application.
type Config struct {
	Source       tickets.Source
	Store        settings.Store
	Avatar       AvatarConfig
	Locale       string
	OutputFormat string
	Version      string // shown in the header

	// Context bounds the feed request. Defaults to context.Background.
	Context context.Context
	// SaveTheme persists the theme name after the user cycles it.
	SaveTheme func(string) error
	// Clipboard writes a ticket ID to the system clipboard.
	Clipboard func(string) error
	// Now is the clock used for toast timing.
	Now func() time.Time
}

// App implements the Bubble Tea model for the board.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	source       tickets.Source
	store        settings.Store
	avatar       AvatarConfig
	locale       string
	outputFormat string
	version      string
	saveTheme    func(string) error
	clipboard    func(string) error
	now          func() time.Time
	keys         KeyMap

	// Fetch lifecycle. The generation/active pair guards against results
	// that arrive after teardown.
	generation  uint64
	fetchIssued bool
	loading     bool
	active      bool

	tickets   []tickets.Ticket
	lastError string
	prefs     board.Preferences
	view      board.View

	col       int
	row       int
	colOffset int
	rowOffset map[int]int

	width  int
	height int

	showDetail     bool
	showHelp       bool
	viewport       viewport.Model
	spinner        spinner.Model
	displayOverlay *DisplayOptionsOverlay
	toast          *toast
	toastTicking   bool
}

// NewApp builds the board. Preferences are read from the store once; read
// failures fall back to the defaults.
func NewApp(cfg Config) (*App, error) {
	parent := cfg.Context
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	avatar := cfg.Avatar
	if avatar.BaseURL == "" && avatar.Size == 0 {
		avatar = DefaultAvatarConfig()
	}
	locale := cfg.Locale
	if locale == "" {
		locale = board.DefaultLocale
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	prefs, err := settings.LoadPreferences(ctx, cfg.Store)
	if err != nil {
		debug.Error("load preferences", err)
		prefs = board.DefaultPreferences()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styleStatsDim()

	app := &App{
		ctx:          ctx,
		cancel:       cancel,
		source:       cfg.Source,
		store:        cfg.Store,
		avatar:       avatar,
		locale:       locale,
		outputFormat: cfg.OutputFormat,
		version:      cfg.Version,
		saveTheme:    cfg.SaveTheme,
		clipboard:    cfg.Clipboard,
		now:          now,
		keys:         DefaultKeyMap(),
		active:       true,
		prefs:        prefs,
		rowOffset:    make(map[int]int),
		viewport:     viewport.New(minDetailWidth, minViewportLines),
		spinner:      sp,
	}
	app.rederive()
	debug.WithFields(debug.Fields{
		"groupBy": prefs.GroupBy,
		"sortBy":  prefs.SortBy,
		"locale":  locale,
	}, "board initialised")
	return app, nil
}

// Init issues the single ticket fetch and starts the loading spinner.
func (m *App) Init() tea.Cmd {
	return tea.Batch(m.startFetch(), m.spinner.Tick)
}

// Close tears the App down: the in-flight fetch is cancelled and any result
// that still arrives is ignored.
func (m *App) Close() {
	if !m.active {
		return
	}
	m.active = false
	m.cancel()
	debug.Log("board closed")
}

// Preferences returns the current grouping and ordering.
func (m *App) Preferences() board.Preferences {
	return m.prefs
}

// Board returns the derived view currently on screen.
func (m *App) Board() board.View {
	return m.view
}

// rederive recomputes the view from the ticket collection and preferences.
// The selected ticket keeps focus when it is still present.
func (m *App) rederive() {
	selectedID := ""
	if t, ok := m.selectedTicket(); ok {
		selectedID = t.ID
	}

	m.view = board.Derive(m.tickets, m.prefs.GroupBy, m.prefs.SortBy, board.WithLocale(m.locale))
	m.rowOffset = make(map[int]int)

	if selectedID != "" {
		for ci, g := range m.view.Groups {
			for ri, t := range g.Tickets {
				if t.ID == selectedID {
					m.col, m.row = ci, ri
					m.clampCursor()
					m.updateDetailContent()
					return
				}
			}
		}
	}
	m.clampCursor()
	m.updateDetailContent()
}

// clampCursor keeps (col, row) inside the derived view.
func (m *App) clampCursor() {
	groups := m.view.Groups
	if len(groups) == 0 {
		m.col, m.row, m.colOffset = 0, 0, 0
		return
	}
	if m.col >= len(groups) {
		m.col = len(groups) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	n := len(groups[m.col].Tickets)
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if m.colOffset > m.col {
		m.colOffset = m.col
	}
}

func (m *App) selectedTicket() (tickets.Ticket, bool) {
	if m.col < 0 || m.col >= len(m.view.Groups) {
		return tickets.Ticket{}, false
	}
	g := m.view.Groups[m.col]
	if m.row < 0 || m.row >= len(g.Tickets) {
		return tickets.Ticket{}, false
	}
	return g.Tickets[m.row], true
}

// DefaultAvatarConfig returns the stock avatar service settings.
func DefaultAvatarConfig() AvatarConfig {
	return AvatarConfig{BaseURL: "https://api.adorable.io/avatars", Size: 50}
}
