package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string
	desc string
}

// Global footer hints (always shown)
var globalFooterHints = []footerHint{
	{"g", "Group"},
	{"o", "Order"},
	{"d", "Display"},
	{"q", "Quit"},
	{"?", "Help"},
}

// Context-specific footer hints
var boardFooterHints = []footerHint{
	{"←→", "Column"},
	{"↑↓", "Card"},
	{"⏎", "Detail"},
	{"c", "Copy"},
}

var displayFooterHints = []footerHint{
	{"↑↓", "Row"},
	{"←→", "Change"},
	{"esc", "Close"},
}

// renderFooter renders the footer bar with pill-style key hints and the
// current modes right-aligned.
func (m *App) renderFooter() string {
	var hints []footerHint
	if m.displayOverlay != nil {
		hints = append(hints, displayFooterHints...)
	} else {
		hints = append(hints, boardFooterHints...)
	}
	hints = append(hints, globalFooterHints...)

	modeText := fmt.Sprintf("Group: %s  Order: %s", m.prefs.GroupBy.Label(), m.prefs.SortBy.Label())
	modeRendered := styleKeyDesc().Render(modeText)
	modeWidth := lipgloss.Width(modeRendered)
	availableWidth := m.width - modeWidth - 4

	hints = trimHintsToFit(hints, availableWidth)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}

	left := strings.Join(parts, "  ")
	spacing := m.width - lipgloss.Width(left) - modeWidth
	if spacing < 2 {
		spacing = 2
	}
	return left + strings.Repeat(" ", spacing) + modeRendered
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit progressively removes hints to fit available width.
// Context-specific hints go first, then globals from the end.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	globalCount := len(globalFooterHints)
	for len(hints) > 0 {
		if renderHintsWidth(hints) <= availableWidth {
			break
		}
		if len(hints) > globalCount {
			hints = hints[1:]
		} else {
			hints = hints[:len(hints)-1]
		}
	}
	return hints
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []footerHint) int {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
