package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tickboard/internal/board"
)

// renderBoard draws the visible window of columns into a width x height box.
func (m *App) renderBoard(width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height)

	if len(m.view.Groups) == 0 {
		var msg string
		switch {
		case m.loading:
			msg = m.spinner.View() + " Loading tickets…"
		case m.lastError != "":
			msg = styleErrorIndicator().Render("Could not load tickets. Press ! for details.")
		default:
			msg = styleMuted().Render("No tickets")
		}
		return box.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg))
	}

	colWidth, visible := columnLayout(width, len(m.view.Groups))
	m.ensureColumnVisible(visible)

	end := m.colOffset + visible
	if end > len(m.view.Groups) {
		end = len(m.view.Groups)
	}
	cols := make([]string, 0, visible)
	for ci := m.colOffset; ci < end; ci++ {
		cols = append(cols, m.renderColumn(ci, m.view.Groups[ci], colWidth, height))
	}
	return box.Render(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}

// columnLayout picks how many columns fit and how wide each one is.
func columnLayout(width, groups int) (colWidth, visible int) {
	visible = width / minColumnWidth
	if visible < 1 {
		visible = 1
	}
	if visible > groups {
		visible = groups
	}
	colWidth = width / visible
	if colWidth > maxColumnWidth {
		colWidth = maxColumnWidth
	}
	return colWidth, visible
}

func (m *App) ensureColumnVisible(visible int) {
	if m.col < m.colOffset {
		m.colOffset = m.col
	}
	if m.col >= m.colOffset+visible {
		m.colOffset = m.col - visible + 1
	}
	if m.colOffset < 0 {
		m.colOffset = 0
	}
}

// renderColumn draws a header followed by as many cards as fit, with
// "↑ N more" / "↓ N more" markers for cards scrolled out of view.
func (m *App) renderColumn(ci int, g board.Group, width, height int) string {
	active := ci == m.col
	header := styleColumnHeader(active).
		Width(width).
		Render(ansi.Truncate(fmt.Sprintf("%s (%d)", g.Label, len(g.Tickets)), width-2, "…"))

	cards := make([]string, len(g.Tickets))
	for ri, t := range g.Tickets {
		cards[ri] = renderCard(newCardData(t, m.avatar), width, active && ri == m.row)
	}

	selected := -1
	if active {
		selected = m.row
	}
	start, end := cardWindow(cards, m.rowOffset[ci], selected, height-1)
	m.rowOffset[ci] = start

	parts := []string{header}
	if start > 0 {
		parts = append(parts, styleMuted().Render(fmt.Sprintf("  ↑ %d more", start)))
	}
	parts = append(parts, cards[start:end]...)
	if end < len(cards) {
		parts = append(parts, styleMuted().Render(fmt.Sprintf("  ↓ %d more", len(cards)-end)))
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// cardWindow returns the [start, end) range of cards that fits in avail
// lines, starting at offset and moved so that selected is included.
func cardWindow(cards []string, offset, selected, avail int) (int, int) {
	if len(cards) == 0 {
		return 0, 0
	}
	if offset < 0 || offset >= len(cards) {
		offset = 0
	}
	if selected >= 0 && selected < offset {
		offset = selected
	}
	for {
		end := fitCards(cards, offset, avail)
		if selected < end || offset >= selected {
			return offset, end
		}
		offset++
	}
}

// fitCards returns the end index of the cards that fit from start, reserving
// a line for each scroll marker. At least one card is always shown.
func fitCards(cards []string, start, avail int) int {
	if start > 0 {
		avail--
	}
	used := 0
	end := start
	for end < len(cards) {
		h := lipgloss.Height(cards[end])
		reserve := 0
		if end+1 < len(cards) {
			reserve = 1
		}
		if end > start && used+h+reserve > avail {
			break
		}
		used += h
		end++
	}
	return end
}
