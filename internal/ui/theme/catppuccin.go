package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha (dark) / Latte (light).
func init() {
	RegisterTheme("catppuccin", Theme{
		Primary:             lipgloss.AdaptiveColor{Dark: "#89b4fa", Light: "#1e66f5"},
		Secondary:           lipgloss.AdaptiveColor{Dark: "#cba6f7", Light: "#8839ef"},
		Accent:              lipgloss.AdaptiveColor{Dark: "#fab387", Light: "#fe640b"},
		Error:               lipgloss.AdaptiveColor{Dark: "#f38ba8", Light: "#d20f39"},
		Warning:             lipgloss.AdaptiveColor{Dark: "#fab387", Light: "#fe640b"},
		Success:             lipgloss.AdaptiveColor{Dark: "#a6e3a1", Light: "#40a02b"},
		Info:                lipgloss.AdaptiveColor{Dark: "#89b4fa", Light: "#1e66f5"},
		Text:                lipgloss.AdaptiveColor{Dark: "#cdd6f4", Light: "#4c4f69"},
		TextMuted:           lipgloss.AdaptiveColor{Dark: "#6c7086", Light: "#9ca0b0"},
		TextEmphasized:      lipgloss.AdaptiveColor{Dark: "#f5e0dc", Light: "#dc8a78"},
		Background:          lipgloss.AdaptiveColor{Dark: "#1e1e2e", Light: "#eff1f5"},
		BackgroundSecondary: lipgloss.AdaptiveColor{Dark: "#313244", Light: "#e6e9ef"},
		BorderNormal:        lipgloss.AdaptiveColor{Dark: "#6c7086", Light: "#9ca0b0"},
		BorderFocused:       lipgloss.AdaptiveColor{Dark: "#89b4fa", Light: "#1e66f5"},
	})
}
