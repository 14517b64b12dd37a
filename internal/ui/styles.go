package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tickboard/internal/tickets"
	"tickboard/internal/ui/theme"
)

// Styles are built from the active theme on every call so that cycling the
// theme takes effect on the next frame.

func styleAppHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)
}

func styleStatsDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleModeChip() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.BackgroundSecondary).
		Padding(0, 1)
}

func styleErrorIndicator() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error).Bold(true)
}

func styleColumnHeader(active bool) lipgloss.Style {
	t := theme.Current()
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	if active {
		return s.Foreground(t.Background).Background(t.Primary)
	}
	return s.Foreground(t.Text).Background(t.BackgroundSecondary)
}

func styleCard(selected bool) lipgloss.Style {
	t := theme.Current()
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return s.BorderForeground(t.BorderFocused)
	}
	return s.BorderForeground(t.BorderNormal)
}

func styleID() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent).Bold(true)
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleAvatar() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Secondary).
		Bold(true)
}

func styleBadge() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Success).
		Background(t.BackgroundSecondary).
		Padding(0, 1)
}

func stylePriority(p tickets.Priority) lipgloss.Style {
	t := theme.Current()
	s := lipgloss.NewStyle()
	switch p {
	case tickets.PriorityUrgent:
		return s.Foreground(t.Error).Bold(true)
	case tickets.PriorityHigh:
		return s.Foreground(t.Warning)
	case tickets.PriorityMedium:
		return s.Foreground(t.Info)
	default:
		return s.Foreground(t.TextMuted)
	}
}

func stylePane(focused bool) lipgloss.Style {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(t.BorderFocused)
	}
	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.BorderNormal)
}

func styleToast(kind toastKind) lipgloss.Style {
	t := theme.Current()
	border := t.Success
	if kind == toastError {
		border = t.Error
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Foreground(t.Text).
		Padding(0, 1)
}

// Overlay and help styles

func styleOverlay() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().Primary).
		Padding(1, 2)
}

func styleOverlayTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextEmphasized).Bold(true)
}

func styleDivider() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary)
}

func styleHelpSectionHeader() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary).Bold(true)
}

func styleHelpKey() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Info).Bold(true)
}

func styleHelpDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleHelpFooter() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted).Italic(true)
}

func styleOptionSelected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Info).Bold(true)
}

func styleOptionNormal() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

// Footer bar styles

func styleKeyPill() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Background(t.Primary).
		Foreground(t.Background).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func buildMarkdownRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	if style == "" || style == "rich" || style == "dark" {
		style = "dark"
	}
	if style == "plain" {
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
