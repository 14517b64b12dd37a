package ui

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"tickboard/internal/tickets"
)

// featureRequestBadge is shown on every card. The feed carries no ticket type.
const featureRequestBadge = "Feature Request"

const (
	maxTitleLines = 2
	// border (2) + horizontal padding (2)
	cardChrome = 4
)

// AvatarConfig addresses the remote avatar image for an assignee.
type AvatarConfig struct {
	BaseURL string
	Size    int
}

// URL returns <base>/<size>/<user>.png, or "" for unassigned tickets.
func (a AvatarConfig) URL(user string) string {
	user = strings.TrimSpace(user)
	if user == "" || a.BaseURL == "" {
		return ""
	}
	size := a.Size
	if size <= 0 {
		size = 50
	}
	return strings.TrimRight(a.BaseURL, "/") + "/" + strconv.Itoa(size) + "/" + url.PathEscape(user) + ".png"
}

// CardData holds the display strings for one ticket card.
type CardData struct {
	ID            string
	User          string
	AvatarURL     string
	Initials      string
	Title         string
	Priority      tickets.Priority
	PriorityLabel string
	StatusLabel   string
	Badge         string
}

func newCardData(t tickets.Ticket, avatar AvatarConfig) CardData {
	return CardData{
		ID:            t.ID,
		User:          t.User,
		AvatarURL:     avatar.URL(t.User),
		Initials:      initials(t.User),
		Title:         t.Title,
		Priority:      t.Priority,
		PriorityLabel: t.Priority.Label(),
		StatusLabel:   t.Status.Label(),
		Badge:         featureRequestBadge,
	}
}

// initials derives a two-letter badge from an assignee identifier:
// "usr-1" -> "U1", "alice" -> "AL", "" -> "?".
func initials(user string) string {
	fields := strings.FieldsFunc(user, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []rune
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		out = []rune(fields[0])
		if len(out) > 2 {
			out = out[:2]
		}
	default:
		out = []rune{[]rune(fields[0])[0], []rune(fields[1])[0]}
	}
	return strings.ToUpper(string(out))
}

// wrapTitle word-wraps title to width and keeps at most maxLines lines, the
// last one truncated with an ellipsis when text was dropped.
func wrapTitle(title string, width, maxLines int) []string {
	if width < 1 {
		width = 1
	}
	wrapped := strings.Split(wordwrap.String(strings.TrimSpace(title), width), "\n")
	if len(wrapped) > maxLines {
		rest := strings.Join(wrapped[maxLines-1:], " ")
		wrapped = append(wrapped[:maxLines-1], ansi.Truncate(rest, width-1, "")+"…")
	}
	for i, line := range wrapped {
		wrapped[i] = ansi.Truncate(line, width, "…")
	}
	return wrapped
}

// renderCard draws one ticket at the given outer width.
func renderCard(d CardData, width int, selected bool) string {
	inner := width - cardChrome
	if inner < 1 {
		inner = 1
	}

	avatar := styleAvatar().Render(" " + d.Initials + " ")
	idWidth := inner - lipgloss.Width(avatar) - 1
	if idWidth < 1 {
		idWidth = 1
	}
	id := styleID().Render(ansi.Truncate(d.ID, idWidth, "…"))
	gap := inner - lipgloss.Width(id) - lipgloss.Width(avatar)
	if gap < 1 {
		gap = 1
	}
	lines := []string{id + strings.Repeat(" ", gap) + avatar}

	if strings.TrimSpace(d.Title) == "" {
		lines = append(lines, styleMuted().Render("(untitled)"))
	} else {
		for _, l := range wrapTitle(d.Title, inner, maxTitleLines) {
			lines = append(lines, styleTitle().Render(l))
		}
	}

	meta := stylePriority(d.Priority).Render(d.PriorityLabel) + styleMuted().Render(" · "+d.StatusLabel)
	lines = append(lines, ansi.Truncate(meta, inner, "…"))
	lines = append(lines, ansi.Truncate(styleBadge().Render(d.Badge), inner, ""))

	return styleCard(selected).Width(width - 2).Render(strings.Join(lines, "\n"))
}
