package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// helpSection represents a group of keybindings for display.
type helpSection struct {
	title string
	rows  [][]string // Each row: [keys, description]
}

// getHelpSections returns the help content organized into sections.
// Text is derived from binding.Help() so the KeyMap stays the single source.
func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Left.Help().Key, keys.Left.Help().Desc},
				{keys.Enter.Help().Key, keys.Enter.Help().Desc},
			},
		},
		{
			title: "BOARD",
			rows: [][]string{
				{keys.GroupBy.Help().Key, keys.GroupBy.Help().Desc},
				{keys.SortBy.Help().Key, keys.SortBy.Help().Desc},
				{keys.Display.Help().Key, keys.Display.Help().Desc},
			},
		},
		{
			title: "ACTIONS",
			rows: [][]string{
				{keys.Copy.Help().Key, keys.Copy.Help().Desc},
				{keys.Theme.Help().Key, keys.Theme.Help().Desc},
				{keys.Error.Help().Key, keys.Error.Help().Desc},
				{keys.Quit.Help().Key, keys.Quit.Help().Desc},
			},
		},
	}
}

// renderHelpOverlay builds the help modal. Positioning is left to the canvas.
func renderHelpOverlay(keys KeyMap) string {
	sections := getHelpSections(keys)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[0]),
		"",
		renderHelpSectionTable(sections[1]),
	)
	rightCol := renderHelpSectionTable(sections[2])

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	title := styleOverlayTitle().Render("✦ TICKBOARD HELP ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	divider := styleDivider().Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter().Render("Press ? or Esc to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)
	return styleOverlay().Render(content)
}

// renderHelpSectionTable renders a single help section using lipgloss/table.
func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(14)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpSectionHeader().Render(section.title)
	underline := styleHelpSectionHeader().Bold(false).Render(strings.Repeat("─", len(section.title)))

	// Hidden border adds an empty top row.
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		tableStr,
	)
}
