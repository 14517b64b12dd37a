package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tickboard/internal/board"
)

type displayRow int

const (
	displayRowGrouping displayRow = iota
	displayRowOrdering
	displayRowCount
)

// DisplayOptionsOverlay is a compact popup with a Grouping row and an
// Ordering row. Changes are applied immediately; the overlay only reports
// them back to the App.
type DisplayOptionsOverlay struct {
	prefs    board.Preferences
	selected displayRow
}

// NewDisplayOptionsOverlay opens the overlay on the given preferences.
func NewDisplayOptionsOverlay(prefs board.Preferences) *DisplayOptionsOverlay {
	return &DisplayOptionsOverlay{prefs: prefs}
}

// Prefs returns the preferences as currently shown.
func (o *DisplayOptionsOverlay) Prefs() board.Preferences {
	return o.prefs
}

// Init implements tea.Model.
func (o *DisplayOptionsOverlay) Init() tea.Cmd {
	return nil
}

// Update handles navigation inside the overlay.
func (o *DisplayOptionsOverlay) Update(msg tea.Msg) (*DisplayOptionsOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		o.selected = (o.selected + displayRowCount - 1) % displayRowCount
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		o.selected = (o.selected + 1) % displayRowCount
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", " "))):
		return o, o.cycle(true)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h"))):
		return o, o.cycle(false)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("esc", "enter", "d"))):
		return o, func() tea.Msg { return DisplayOptionsClosedMsg{} }
	}
	return o, nil
}

func (o *DisplayOptionsOverlay) cycle(forward bool) tea.Cmd {
	switch o.selected {
	case displayRowGrouping:
		o.prefs.GroupBy = stepGroupBy(o.prefs.GroupBy, forward)
	case displayRowOrdering:
		o.prefs.SortBy = stepSortBy(o.prefs.SortBy, forward)
	}
	prefs := o.prefs
	return func() tea.Msg { return DisplayOptionChangedMsg{Prefs: prefs} }
}

func stepGroupBy(g board.GroupBy, forward bool) board.GroupBy {
	if forward {
		return g.Next()
	}
	modes := board.GroupByModes()
	// len-1 forward steps go one back.
	for i := 0; i < len(modes)-1; i++ {
		g = g.Next()
	}
	return g
}

func stepSortBy(s board.SortBy, forward bool) board.SortBy {
	if forward {
		return s.Next()
	}
	modes := board.SortByModes()
	for i := 0; i < len(modes)-1; i++ {
		s = s.Next()
	}
	return s
}

// View renders the overlay box. Placement is done by the canvas.
func (o *DisplayOptionsOverlay) View() string {
	rows := []struct {
		label   string
		options []string
		current string
	}{
		{"Grouping", groupByLabels(), o.prefs.GroupBy.Label()},
		{"Ordering", sortByLabels(), o.prefs.SortBy.Label()},
	}

	lines := []string{styleOverlayTitle().Render("Display options")}
	lines = append(lines, styleDivider().Render(strings.Repeat("─", 36)))
	for i, row := range rows {
		marker := "  "
		if displayRow(i) == o.selected {
			marker = "› "
		}
		opts := make([]string, 0, len(row.options))
		for _, opt := range row.options {
			if opt == row.current {
				opts = append(opts, styleOptionSelected().Render(opt))
			} else {
				opts = append(opts, styleOptionNormal().Render(opt))
			}
		}
		label := lipgloss.NewStyle().Width(10).Render(row.label)
		lines = append(lines, marker+label+strings.Join(opts, " "))
	}
	lines = append(lines, "", styleHelpFooter().Render("←/→ change · ↑/↓ row · esc close"))
	return styleOverlay().Render(strings.Join(lines, "\n"))
}

func groupByLabels() []string {
	modes := board.GroupByModes()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = m.Label()
	}
	return out
}

func sortByLabels() []string {
	modes := board.SortByModes()
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = m.Label()
	}
	return out
}
