package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"compass/internal/ui/theme"
)

func (a *App) View() string {
	if !a.ready {
		return "Initializing..."
	}

	header := a.renderHeader()

	treeW, treeH := a.treeViewSize()
	treePane := stylePane(a.mode == modeNone).Render(a.renderTree(treeW, treeH))

	body := treePane
	if a.showTranscript {
		transcriptPane := stylePane(false).Render(a.transcript.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, treePane, transcriptPane)
	}

	footer := a.renderFooter()
	return strings.Join([]string{header, body, footer}, "\n")
}

func (a *App) renderHeader() string {
	title := "COMPASS"
	if a.version != "" {
		title = fmt.Sprintf("COMPASS v%s", a.version)
	}
	status := fmt.Sprintf("nodes: %d • layout: %s • theme: %s",
		a.engine.Len(), a.engine.Strategy(), theme.CurrentName())
	if a.engine.ForceRefine() {
		status += " • refine"
	}
	return styleHeader().Render(title) + " " + styleStatus().Render(status)
}

func (a *App) renderFooter() string {
	if a.mode != modeNone {
		prompt := map[inputMode]string{
			modeUtterance:   "add",
			modeKeyword:     "jump",
			modeSaveSession: "save",
			modeLoadSession: "load",
		}[a.mode]
		return styleFooterKey().Render(prompt+"> ") + a.input.View()
	}

	if a.lastError != "" {
		return styleErrorText().Render("✗ " + truncateText(a.lastError, a.width-4))
	}
	if a.statusToast != "" {
		return styleStatusToast().Render("✓ " + a.statusToast)
	}

	hints := []string{
		"a add", "1-9 jump", "/ find", "tab layout", "c collapse", "e expand",
		"s save", "o load", "? help", "q quit",
	}
	parts := make([]string, len(hints))
	for i, hint := range hints {
		key, desc, _ := strings.Cut(hint, " ")
		parts[i] = styleFooterKey().Render(key) + " " + styleFooter().Render(desc)
	}
	return strings.Join(parts, styleFooter().Render(" • "))
}
