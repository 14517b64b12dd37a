package theme

import "github.com/charmbracelet/lipgloss"

func init() {
	RegisterTheme("dracula", Theme{
		Primary:             lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: "#bd93f9"},
		Secondary:           lipgloss.AdaptiveColor{Light: "#0097a7", Dark: "#8be9fd"},
		Accent:              lipgloss.AdaptiveColor{Light: "#f9a825", Dark: "#f1fa8c"},
		Error:               lipgloss.AdaptiveColor{Light: "#d32f2f", Dark: "#ff5555"},
		Warning:             lipgloss.AdaptiveColor{Light: "#ef6c00", Dark: "#ffb86c"},
		Success:             lipgloss.AdaptiveColor{Light: "#388e3c", Dark: "#50fa7b"},
		Info:                lipgloss.AdaptiveColor{Light: "#1976d2", Dark: "#8be9fd"},
		Text:                lipgloss.AdaptiveColor{Light: "#212121", Dark: "#f8f8f2"},
		TextMuted:           lipgloss.AdaptiveColor{Light: "#757575", Dark: "#6272a4"},
		TextEmphasized:      lipgloss.AdaptiveColor{Light: "#000000", Dark: "#f8f8f2"},
		Background:          lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#282a36"},
		BackgroundSecondary: lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#44475a"},
		BorderNormal:        lipgloss.AdaptiveColor{Light: "#bdbdbd", Dark: "#6272a4"},
		BorderFocused:       lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: "#bd93f9"},
	})
}
