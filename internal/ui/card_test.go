package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tickboard/internal/tickets"
)

func TestAvatarURL(t *testing.T) {
	tests := []struct {
		name   string
		cfg    AvatarConfig
		user   string
		expect string
	}{
		{"default", DefaultAvatarConfig(), "usr-1", "https://api.adorable.io/avatars/50/usr-1.png"},
		{"trailing slash and custom size", AvatarConfig{BaseURL: "http://img.local/", Size: 64}, "usr-2", "http://img.local/64/usr-2.png"},
		{"escapes path", AvatarConfig{BaseURL: "http://img.local"}, "a b", "http://img.local/50/a%20b.png"},
		{"unassigned", DefaultAvatarConfig(), "", ""},
		{"no base", AvatarConfig{}, "usr-1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.URL(tt.user); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"usr-1":     "U1",
		"alice":     "AL",
		"Ana María": "AM",
		"x":         "X",
		"":          "?",
		"--":        "?",
	}
	for in, want := range tests {
		if got := initials(in); got != want {
			t.Errorf("initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewCardData(t *testing.T) {
	d := newCardData(tickets.Ticket{
		ID:       "CAM-7",
		Title:    "Dark mode",
		User:     "usr-4",
		Status:   tickets.StatusInProgress,
		Priority: tickets.PriorityHigh,
	}, DefaultAvatarConfig())

	if d.Badge != featureRequestBadge {
		t.Fatalf("expected badge %q, got %q", featureRequestBadge, d.Badge)
	}
	if d.PriorityLabel != "High" || d.StatusLabel != "In Progress" {
		t.Fatalf("unexpected labels %q / %q", d.PriorityLabel, d.StatusLabel)
	}
	if d.AvatarURL != "https://api.adorable.io/avatars/50/usr-4.png" {
		t.Fatalf("unexpected avatar url %q", d.AvatarURL)
	}
	if d.Initials != "U4" {
		t.Fatalf("expected initials U4, got %q", d.Initials)
	}
}

func TestWrapTitleLimitsLines(t *testing.T) {
	lines := wrapTitle("Implement email notification system for every ticket update", 12, 2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected ellipsis on the last line, got %q", lines[1])
	}
	for _, l := range lines {
		if w := lipgloss.Width(l); w > 12 {
			t.Fatalf("line %q exceeds width: %d", l, w)
		}
	}

	short := wrapTitle("Short", 12, 2)
	if len(short) != 1 || short[0] != "Short" {
		t.Fatalf("expected short title untouched, got %q", short)
	}
}

func TestRenderCardContents(t *testing.T) {
	d := newCardData(tickets.Ticket{
		ID:       "CAM-1",
		Title:    "Update user profile page UI",
		User:     "usr-1",
		Status:   tickets.StatusTodo,
		Priority: tickets.PriorityUrgent,
	}, DefaultAvatarConfig())

	out := renderCard(d, 32, false)
	clean := stripped(out)
	for _, want := range []string{"CAM-1", "U1", "Update user", "Urgent · To Do", "Feature Request"} {
		if !strings.Contains(clean, want) {
			t.Errorf("expected card to contain %q:\n%s", want, clean)
		}
	}
	for _, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 32 {
			t.Fatalf("card line wider than 32: %d %q", w, stripped(line))
		}
	}
}

func TestRenderCardUntitled(t *testing.T) {
	d := newCardData(tickets.Ticket{ID: "CAM-9", Priority: tickets.PriorityUnset}, DefaultAvatarConfig())
	clean := stripped(renderCard(d, 30, true))
	if !strings.Contains(clean, "(untitled)") {
		t.Fatalf("expected untitled placeholder:\n%s", clean)
	}
	if !strings.Contains(clean, "?") {
		t.Fatalf("expected unknown-assignee initials:\n%s", clean)
	}
}

func TestDetailMarkdown(t *testing.T) {
	md := detailMarkdown(newCardData(tickets.Ticket{ID: "CAM-2", Title: "Search", Status: tickets.StatusDone}, DefaultAvatarConfig()))
	if !containsAll(md, "# CAM-2", "## Search", "**Status:** Done", "**Assignee:** (unassigned)") {
		t.Fatalf("unexpected markdown:\n%s", md)
	}
	if strings.Contains(md, "Avatar") {
		t.Fatalf("expected no avatar row for unassigned ticket:\n%s", md)
	}
}
