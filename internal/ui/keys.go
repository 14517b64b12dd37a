package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the board.
// Related bindings (Up/Down, Left/Right) share help text since they appear as
// a single row in the help overlay.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Board modes
	GroupBy key.Binding
	SortBy  key.Binding
	Display key.Binding

	// Actions
	Enter  key.Binding
	Copy   key.Binding
	Theme  key.Binding
	Error  key.Binding
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓  j/k", "Move between cards"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↑/↓  j/k", "Move between cards"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→  h/l", "Move between columns"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→  h/l", "Move between columns"),
		),

		GroupBy: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Cycle grouping"),
		),
		SortBy: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Cycle ordering"),
		),
		Display: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Display options"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎ (Enter)", "Toggle detail"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Copy ticket ID"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Next theme"),
		),
		Error: key.NewBinding(
			key.WithKeys("!"),
			key.WithHelp("!", "Show last error"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "Close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}
