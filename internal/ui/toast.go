package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastError
)

const (
	infoToastDuration  = 5 * time.Second
	errorToastDuration = 10 * time.Second
	minToastWidth      = 30
)

// toast is a transient, non-blocking notice drawn over the board.
type toast struct {
	kind     toastKind
	title    string
	body     string
	start    time.Time
	duration time.Duration
}

func (t *toast) expired(now time.Time) bool {
	return t == nil || now.Sub(t.start) >= t.duration
}

func (t *toast) render(now time.Time) string {
	if t.expired(now) {
		return ""
	}
	remaining := int((t.duration - now.Sub(t.start)).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	countdown := fmt.Sprintf("[%ds]", remaining)

	lines := []string{t.title}
	if t.body != "" {
		lines = append(lines, t.body)
	}
	width := maxLineWidth(lines)
	if width < minToastWidth {
		width = minToastWidth
	}
	padding := width - lipgloss.Width(countdown)
	if padding < 0 {
		padding = 0
	}
	lines = append(lines, strings.Repeat(" ", padding)+countdown)
	return styleToast(t.kind).Render(strings.Join(lines, "\n"))
}

// showToast replaces any visible toast. A tick is scheduled only when no
// countdown is already running, so at most one tick chain is ever live.
func (m *App) showToast(kind toastKind, title, body string) tea.Cmd {
	duration := infoToastDuration
	if kind == toastError {
		duration = errorToastDuration
	}
	m.toast = &toast{kind: kind, title: title, body: body, start: m.now(), duration: duration}
	if m.toastTicking {
		return nil
	}
	m.toastTicking = true
	return scheduleToastTick()
}

func (m *App) handleToastTick() tea.Cmd {
	if m.toast != nil && m.toast.expired(m.now()) {
		m.toast = nil
	}
	if m.toast == nil {
		m.toastTicking = false
		return nil
	}
	return scheduleToastTick()
}

// shortError keeps the first line of an error and truncates it to maxWidth.
func shortError(msg string, maxWidth int) string {
	msg = strings.TrimSpace(msg)
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return ansi.Truncate(msg, maxWidth, "…")
}
