package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"compass/internal/compass"
	"compass/internal/tree"
	"compass/internal/ui/theme"
)

func styleHeader() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background()).
		Background(t.Primary()).
		Bold(true).
		Padding(0, 1)
}

func styleStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleStatusToast() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success())
}

func styleErrorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error()).Bold(true)
}

func styleFooter() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted())
}

func styleFooterKey() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Secondary()).Bold(true)
}

func stylePane(focused bool) lipgloss.Style {
	t := theme.Current()
	if focused {
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.BorderFocused())
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.BorderNormal())
}

func styleEdge(highlighted bool) lipgloss.Style {
	t := theme.Current()
	if highlighted {
		return lipgloss.NewStyle().Foreground(t.Primary()).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.BorderNormal())
}

func styleBadge() lipgloss.Style {
	t := theme.Current()
	return lipgloss.NewStyle().
		Foreground(t.Background()).
		Background(t.Secondary()).
		Bold(true)
}

// nodeTypeColor maps a conversation node type to the active theme.
func nodeTypeColor(nt tree.NodeType) lipgloss.AdaptiveColor {
	t := theme.Current()
	switch nt {
	case tree.TypeQuestion:
		return t.Question()
	case tree.TypeObjection:
		return t.Objection()
	case tree.TypeDecision:
		return t.Decision()
	case tree.TypeSuggested:
		return t.Suggested()
	default:
		return t.Statement()
	}
}

// nodeBoxWidth is the rendered node width in cells, border included.
const nodeBoxWidth = 22

// renderNodeBox renders one conversation node as a bordered box. The
// current node gets a thick focused border; path nodes keep a tinted
// border so the root-to-current trail reads at a glance.
func renderNodeBox(v compass.NodeView) string {
	t := theme.Current()

	borderColor := t.BorderNormal()
	border := lipgloss.NormalBorder()
	switch {
	case v.Current:
		borderColor = t.BorderFocused()
		border = lipgloss.ThickBorder()
	case v.Highlight != nil:
		borderColor = t.Primary()
	}

	label := v.Content
	if v.Speaker != "" {
		label = fmt.Sprintf("%s: %s", v.Speaker, v.Content)
	}
	label = wordwrap.String(label, nodeBoxWidth-4)
	label = clampLines(label, 2)

	title := string(v.Type)
	if v.Badge > 0 {
		title = fmt.Sprintf("%s %s", styleBadge().Render(fmt.Sprintf(" %d ", v.Badge)), title)
	}

	body := lipgloss.NewStyle().Foreground(nodeTypeColor(v.Type)).Render(title) + "\n" +
		lipgloss.NewStyle().Foreground(t.Text()).Render(label)

	return lipgloss.NewStyle().
		Border(border).
		BorderForeground(borderColor).
		Width(nodeBoxWidth - 2).
		Padding(0, 1).
		Render(body)
}
