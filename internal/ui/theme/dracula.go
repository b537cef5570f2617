package theme

import "github.com/charmbracelet/lipgloss"

// DraculaTheme implements the Dracula color scheme.
type DraculaTheme struct{}

func (t DraculaTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#644ac9"}
}

func (t DraculaTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ff79c6", Light: "#a3144d"}
}

func (t DraculaTheme) Statement() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#8be9fd", Light: "#036a96"}
}

func (t DraculaTheme) Question() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#f1fa8c", Light: "#7b7620"}
}

func (t DraculaTheme) Objection() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ffb86c", Light: "#a34d14"}
}

func (t DraculaTheme) Decision() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#50fa7b", Light: "#14710a"}
}

func (t DraculaTheme) Suggested() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#6c664b"}
}

func (t DraculaTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ff5555", Light: "#cb3a2a"}
}

func (t DraculaTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#50fa7b", Light: "#14710a"}
}

func (t DraculaTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#f8f8f2", Light: "#1f1f1f"}
}

func (t DraculaTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#6272a4", Light: "#635d97"}
}

func (t DraculaTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#282a36", Light: "#f8f8f2"}
}

func (t DraculaTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#e5e5e0"}
}

func (t DraculaTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#44475a", Light: "#c4c4bd"}
}

func (t DraculaTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bd93f9", Light: "#644ac9"}
}

func init() {
	RegisterTheme("dracula", DraculaTheme{})
}
