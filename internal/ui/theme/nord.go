package theme

import "github.com/charmbracelet/lipgloss"

// NordTheme implements the Nord color scheme.
type NordTheme struct{}

func (t NordTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"}
}

func (t NordTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#b48ead", Light: "#8a5a83"}
}

func (t NordTheme) Statement() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#81a1c1", Light: "#4c6a92"}
}

func (t NordTheme) Question() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ebcb8b", Light: "#946c00"}
}

func (t NordTheme) Objection() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#d08770", Light: "#a2402b"}
}

func (t NordTheme) Decision() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#a3be8c", Light: "#4f7942"}
}

func (t NordTheme) Suggested() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#616e88", Light: "#7b8795"}
}

func (t NordTheme) Error() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#bf616a", Light: "#99323c"}
}

func (t NordTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#a3be8c", Light: "#4f7942"}
}

func (t NordTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#d8dee9", Light: "#2e3440"}
}

func (t NordTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#616e88", Light: "#7b8795"}
}

func (t NordTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#2e3440", Light: "#eceff4"}
}

func (t NordTheme) BackgroundSecondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#3b4252", Light: "#e5e9f0"}
}

func (t NordTheme) BorderNormal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#434c5e", Light: "#d8dee9"}
}

func (t NordTheme) BorderFocused() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#88c0d0", Light: "#5e81ac"}
}

func init() {
	RegisterTheme("nord", NordTheme{})
}
