package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tickboard/internal/board"
	"tickboard/internal/tickets"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// View implements tea.Model.
func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading tickboard..."
	}

	header := m.renderHeader()
	body := m.renderBody(m.bodyHeight())
	footer := m.renderFooter()
	base := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	return composeLayers(base, m.width, m.height, m.overlayLayers()...)
}

func (m *App) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m *App) overlayLayers() []Layer {
	var layers []Layer
	switch {
	case m.showHelp:
		layers = append(layers, centeredLayer(renderHelpOverlay(m.keys), headerHeight, footerHeight))
	case m.displayOverlay != nil:
		layers = append(layers, centeredLayer(m.displayOverlay.View(), headerHeight, footerHeight))
	}
	if m.toast != nil {
		if content := m.toast.render(m.now()); content != "" {
			layers = append(layers, toastLayer(content, footerHeight))
		}
	}
	return layers
}

// renderHeader draws the title bar: app name, ticket summary, loading and
// error indicators.
func (m *App) renderHeader() string {
	title := "✦ TICKBOARD"
	if m.version != "" {
		title += " " + m.version
	}
	left := styleAppHeader().Render(title)

	var parts []string
	switch {
	case m.loading:
		parts = append(parts, m.spinner.View()+styleStatsDim().Render(" loading tickets"))
	default:
		parts = append(parts, styleStatsDim().Render(summaryText(board.Summarize(m.tickets))))
	}
	if m.lastError != "" {
		parts = append(parts, styleErrorIndicator().Render("⚠ fetch failed (! for details)"))
	}

	line := left + " " + strings.Join(parts, styleStatsDim().Render("  │  "))
	return ansi.Truncate(line, m.width, "…")
}

// summaryText renders "N tickets · To Do 3 · In Progress 1 ...". Unknown
// statuses are folded into "Other".
func summaryText(s board.Summary) string {
	noun := "tickets"
	if s.Total == 1 {
		noun = "ticket"
	}
	parts := []string{fmt.Sprintf("%d %s", s.Total, noun)}
	other := s.Total
	for _, status := range tickets.Statuses() {
		n := s.ByStatus[status]
		other -= n
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", status.Label(), n))
		}
	}
	if other > 0 {
		parts = append(parts, fmt.Sprintf("Other %d", other))
	}
	return strings.Join(parts, " · ")
}

// renderBody lays out the board and, when open, the detail pane.
func (m *App) renderBody(height int) string {
	if !m.showDetail {
		return m.renderBoard(m.width, height)
	}
	detailWidth := m.viewport.Width + 4
	boardWidth := m.width - detailWidth
	if boardWidth < minColumnWidth {
		boardWidth = minColumnWidth
		detailWidth = m.width - boardWidth
	}
	left := m.renderBoard(boardWidth, height)
	right := stylePane(true).
		Width(detailWidth - 2).
		Height(height - 2).
		Render(m.viewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
