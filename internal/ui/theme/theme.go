// Package theme provides the semantic color palettes for the board UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the semantic colors used across the board. Every color is
// adaptive so light terminals get a readable variant.
type Theme struct {
	// Base colors
	Primary   lipgloss.AdaptiveColor // header background, focused borders
	Secondary lipgloss.AdaptiveColor // field labels
	Accent    lipgloss.AdaptiveColor // ticket IDs

	// Status colors
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// Text colors
	Text           lipgloss.AdaptiveColor
	TextMuted      lipgloss.AdaptiveColor
	TextEmphasized lipgloss.AdaptiveColor

	// Surfaces
	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor // selected card, column headers

	// Borders
	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
}
