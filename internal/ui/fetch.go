package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tickboard/internal/debug"
	"tickboard/internal/tickets"
)

// fetchTicketsCmd performs the single feed request off the event loop and
// hands the result back as a ticketsLoadedMsg.
func fetchTicketsCmd(ctx context.Context, source tickets.Source, generation uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		items, err := source.Fetch(ctx)
		debug.WithFields(debug.Fields{
			"generation": generation,
			"tickets":    len(items),
			"elapsed":    time.Since(start).String(),
			"failed":     err != nil,
		}, "ticket fetch finished")
		return ticketsLoadedMsg{generation: generation, tickets: items, err: err}
	}
}

// startFetch issues the fetch at most once per App, and never after Close.
func (m *App) startFetch() tea.Cmd {
	if m.fetchIssued || !m.active || m.source == nil {
		return nil
	}
	m.fetchIssued = true
	m.generation++
	m.loading = true
	return fetchTicketsCmd(m.ctx, m.source, m.generation)
}

// applyFetch installs a completed fetch. Results from a torn-down App or an
// older generation are dropped.
func (m *App) applyFetch(msg ticketsLoadedMsg) tea.Cmd {
	if !m.active || msg.generation != m.generation {
		debug.WithFields(debug.Fields{
			"generation": msg.generation,
			"current":    m.generation,
			"active":     m.active,
		}, "dropping stale ticket fetch")
		return nil
	}
	m.loading = false

	if msg.err != nil {
		debug.Error("fetch tickets", msg.err)
		m.tickets = nil
		m.lastError = msg.err.Error()
		m.rederive()
		return m.showToast(toastError, "⚠ Could not load tickets", shortError(m.lastError, 80))
	}

	m.tickets = msg.tickets
	m.lastError = ""
	m.rederive()
	return nil
}
