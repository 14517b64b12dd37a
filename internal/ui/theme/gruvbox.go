package theme

import "github.com/charmbracelet/lipgloss"

func init() {
	RegisterTheme("gruvbox", Theme{
		Primary:             lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
		Secondary:           lipgloss.AdaptiveColor{Dark: "#d3869b", Light: "#8f3f71"},
		Accent:              lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
		Error:               lipgloss.AdaptiveColor{Dark: "#fb4934", Light: "#9d0006"},
		Warning:             lipgloss.AdaptiveColor{Dark: "#fe8019", Light: "#af3a03"},
		Success:             lipgloss.AdaptiveColor{Dark: "#b8bb26", Light: "#79740e"},
		Info:                lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
		Text:                lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"},
		TextMuted:           lipgloss.AdaptiveColor{Dark: "#a89984", Light: "#7c6f64"},
		TextEmphasized:      lipgloss.AdaptiveColor{Dark: "#fabd2f", Light: "#b57614"},
		Background:          lipgloss.AdaptiveColor{Dark: "#282828", Light: "#fbf1c7"},
		BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#504945", Light: "#ebdbb2"},
		BorderNormal:        lipgloss.AdaptiveColor{Dark: "#504945", Light: "#bdae93"},
		BorderFocused:       lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"},
	})
}
