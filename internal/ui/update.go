package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"tickboard/internal/board"
	"tickboard/internal/debug"
	"tickboard/internal/settings"
	"tickboard/internal/ui/theme"
)

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeDetail()
		return m, nil

	case ticketsLoadedMsg:
		return m, m.applyFetch(msg)

	case toastTickMsg:
		return m, m.handleToastTick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DisplayOptionChangedMsg:
		return m, m.applyPreferences(msg.Prefs)

	case DisplayOptionsClosedMsg:
		m.displayOverlay = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Help overlay swallows everything but its own close keys and quit.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	if m.displayOverlay != nil {
		var cmd tea.Cmd
		m.displayOverlay, cmd = m.displayOverlay.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.GroupBy):
		next := m.prefs
		next.GroupBy = next.GroupBy.Next()
		return m, m.applyPreferences(next)
	case key.Matches(msg, m.keys.SortBy):
		next := m.prefs
		next.SortBy = next.SortBy.Next()
		return m, m.applyPreferences(next)
	case key.Matches(msg, m.keys.Display):
		m.displayOverlay = NewDisplayOptionsOverlay(m.prefs)
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Enter):
		m.showDetail = !m.showDetail
		m.resizeDetail()
		m.updateDetailContent()
	case key.Matches(msg, m.keys.Escape):
		switch {
		case m.showDetail:
			m.showDetail = false
			m.resizeDetail()
		case m.toast != nil:
			m.toast = nil
		}
	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches(msg, m.keys.Theme):
		return m, m.cycleTheme()
	case key.Matches(msg, m.keys.Error):
		if m.lastError == "" {
			return m, m.showToast(toastInfo, "No errors", "")
		}
		return m, m.showToast(toastError, "⚠ Last error", shortError(m.lastError, 120))
	case m.showDetail && isDetailScrollKey(msg):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func isDetailScrollKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		return true
	}
	return false
}

func (m *App) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}

// applyPreferences installs next, re-derives the board and writes changed
// values through to the store. A failed write keeps the in-memory change.
func (m *App) applyPreferences(next board.Preferences) tea.Cmd {
	prev := m.prefs
	m.prefs = next
	m.rederive()

	var failed error
	if next.GroupBy != prev.GroupBy {
		if err := settings.SavePreference(m.ctx, m.store, settings.KeyGroupBy, string(next.GroupBy)); err != nil {
			failed = err
		}
	}
	if next.SortBy != prev.SortBy {
		if err := settings.SavePreference(m.ctx, m.store, settings.KeySortBy, string(next.SortBy)); err != nil && failed == nil {
			failed = err
		}
	}
	if failed != nil {
		debug.Error("save preference", failed)
		return m.showToast(toastError, "⚠ Could not save preference", shortError(failed.Error(), 80))
	}
	return nil
}

func (m *App) moveColumn(delta int) {
	if len(m.view.Groups) == 0 {
		return
	}
	m.col += delta
	m.clampCursor()
	m.updateDetailContent()
}

func (m *App) moveRow(delta int) {
	if len(m.view.Groups) == 0 {
		return
	}
	m.row += delta
	m.clampCursor()
	m.updateDetailContent()
}

func (m *App) copySelected() tea.Cmd {
	t, ok := m.selectedTicket()
	if !ok {
		return nil
	}
	if m.clipboard == nil {
		return m.showToast(toastError, "⚠ Clipboard unavailable", "")
	}
	if err := m.clipboard(t.ID); err != nil {
		debug.Error("copy ticket id", err)
		return m.showToast(toastError, "⚠ Copy failed", shortError(err.Error(), 80))
	}
	return m.showToast(toastInfo, fmt.Sprintf("Copied %s", t.ID), "")
}

func (m *App) cycleTheme() tea.Cmd {
	name := theme.CycleTheme()
	m.spinner.Style = styleStatsDim()
	m.updateDetailContent()
	if m.saveTheme != nil {
		if err := m.saveTheme(name); err != nil {
			debug.Error("save theme", err)
			return m.showToast(toastError, "⚠ Could not save theme", shortError(err.Error(), 80))
		}
	}
	return m.showToast(toastInfo, "Theme: "+name, "")
}

// resizeDetail sizes the detail viewport for the current window.
func (m *App) resizeDetail() {
	w := m.width * 2 / 5
	if w < minDetailWidth {
		w = minDetailWidth
	}
	h := m.bodyHeight() - 2
	if h < minViewportLines {
		h = minViewportLines
	}
	m.viewport.Width = w - 4
	m.viewport.Height = h
	m.updateDetailContent()
}
