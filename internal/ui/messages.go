package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tickboard/internal/board"
	"tickboard/internal/tickets"
)

// ticketsLoadedMsg carries the result of the one-shot fetch. generation ties
// it to the App that issued it.
type ticketsLoadedMsg struct {
	generation uint64
	tickets    []tickets.Ticket
	err        error
}

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// DisplayOptionChangedMsg is sent by the display options overlay whenever a
// row value changes.
type DisplayOptionChangedMsg struct {
	Prefs board.Preferences
}

// DisplayOptionsClosedMsg is sent when the overlay is dismissed.
type DisplayOptionsClosedMsg struct{}
