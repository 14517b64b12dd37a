package ui

import (
	"fmt"
	"strings"
)

// detailMarkdown renders the selected card as a markdown document for the
// detail pane.
func detailMarkdown(d CardData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.ID)
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(&b, "## %s\n\n", title)

	assignee := d.User
	if assignee == "" {
		assignee = "(unassigned)"
	}
	rows := [][2]string{
		{"Status", d.StatusLabel},
		{"Priority", d.PriorityLabel},
		{"Assignee", assignee},
		{"Type", d.Badge},
	}
	if d.AvatarURL != "" {
		rows = append(rows, [2]string{"Avatar", d.AvatarURL})
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "- **%s:** %s\n", r[0], r[1])
	}
	return b.String()
}

// updateDetailContent refreshes the viewport with the selected ticket.
func (m *App) updateDetailContent() {
	if !m.showDetail {
		return
	}
	t, ok := m.selectedTicket()
	if !ok {
		m.viewport.SetContent(styleMuted().Render("No ticket selected"))
		return
	}
	render := buildMarkdownRenderer(m.outputFormat, m.viewport.Width)
	m.viewport.SetContent(render(detailMarkdown(newCardData(t, m.avatar))))
	m.viewport.GotoTop()
}
