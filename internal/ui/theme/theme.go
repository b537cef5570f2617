// Package theme provides the semantic color system for the Compass UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the semantic colors the Compass UI draws with. All
// methods return AdaptiveColor so light and dark terminals both work.
type Theme interface {
	// Accent colors
	Primary() lipgloss.AdaptiveColor   // current node, focused borders, header
	Secondary() lipgloss.AdaptiveColor // navigation badges, key hints

	// Node type colors
	Statement() lipgloss.AdaptiveColor
	Question() lipgloss.AdaptiveColor
	Objection() lipgloss.AdaptiveColor
	Decision() lipgloss.AdaptiveColor
	Suggested() lipgloss.AdaptiveColor

	// Status colors
	Error() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor

	// Text colors
	Text() lipgloss.AdaptiveColor
	TextMuted() lipgloss.AdaptiveColor

	// Surface colors
	Background() lipgloss.AdaptiveColor
	BackgroundSecondary() lipgloss.AdaptiveColor

	// Border colors
	BorderNormal() lipgloss.AdaptiveColor
	BorderFocused() lipgloss.AdaptiveColor
}
