package ui

import (
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/config"
	"compass/internal/layout"
	"compass/internal/tree"
	"compass/internal/ui/theme"
)

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Digits jump to the badged children of the current node.
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		id, err := a.engine.ResolveNumber(n)
		if err != nil {
			a.lastError = err.Error()
			return a, nil
		}
		a.lastError = ""
		a.engine.Focus(id)
		a.refreshTranscript()
		return a, nil
	}

	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "up":
		a.camera.Y -= panStepY
	case "down":
		a.camera.Y += panStepY
	case "left":
		a.camera.X -= panStepX
	case "right":
		a.camera.X += panStepX

	case "a":
		a.mode = modeUtterance
		a.input.Placeholder = "speaker: what they said"
		a.input.Focus()
		return a, textinput.Blink

	case "/":
		a.mode = modeKeyword
		a.input.Placeholder = "keyword or node type"
		a.input.Focus()
		return a, textinput.Blink

	case "c":
		if id := a.engine.CurrentID(); id != "" {
			a.engine.Collapse(id)
		}
	case "e":
		if id := a.engine.CurrentID(); id != "" {
			a.engine.Expand(id)
		}
	case "b":
		if id := a.engine.CurrentID(); id != "" {
			a.engine.ShowBranch(id, a.branchLevels)
			a.centerOn(id)
		}
	case "B":
		// Reveal the whole tree again.
		if root := a.rootID(); root != "" {
			a.engine.ShowBranch(root, a.engine.Len())
			a.engine.Expand(root)
		}

	case "tab":
		next := layout.Radial
		if a.engine.Strategy() == layout.Radial {
			next = layout.Hierarchical
		}
		a.engine.ApplyLayout(next)
		if id := a.engine.CurrentID(); id != "" {
			a.centerOn(id)
		}
		return a, a.setToast("layout: " + string(next))

	case "f":
		a.engine.SetForceRefine(!a.engine.ForceRefine())
		if a.engine.ForceRefine() {
			return a, a.setToast("overlap refinement on")
		}
		return a, a.setToast("overlap refinement off")

	case "t":
		name := theme.CycleTheme()
		return a, a.setToast("theme: " + name)

	case "T":
		if err := config.SaveTheme(theme.CurrentName()); err != nil {
			a.lastError = err.Error()
			return a, nil
		}
		return a, a.setToast("theme saved to config")

	case "y":
		content := a.currentContent()
		if content == "" {
			return a, nil
		}
		return a, func() tea.Msg {
			return clipboardCopiedMsg{err: clipboard.WriteAll(content)}
		}

	case "s":
		a.mode = modeSaveSession
		a.input.Placeholder = "session name"
		a.input.Focus()
		return a, textinput.Blink

	case "o":
		a.mode = modeLoadSession
		a.input.Placeholder = "session name to load"
		a.input.Focus()
		return a, textinput.Blink

	case "r":
		if id := a.engine.CurrentID(); id != "" {
			a.centerOn(id)
		}

	case "p":
		if id := a.parentOfCurrent(); id != "" {
			a.engine.Focus(id)
			a.refreshTranscript()
		}

	case "m":
		a.showMinimap = !a.showMinimap
	case "v":
		a.showTranscript = !a.showTranscript
		a.refreshTranscript()
	case "?":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) rootID() string {
	for _, v := range a.engine.Nodes() {
		if v.Seq == 1 {
			return v.ID
		}
	}
	return ""
}

func (a *App) currentContent() string {
	id := a.engine.CurrentID()
	for _, v := range a.engine.Nodes() {
		if v.ID == id {
			return v.Content
		}
	}
	return ""
}

func (a *App) parentOfCurrent() string {
	id := a.engine.CurrentID()
	for _, e := range a.engine.Edges() {
		if e.ChildID == id {
			return e.ParentID
		}
	}
	return ""
}

// splitSpeaker parses "speaker: content" input. Input without a colon
// is all content with no speaker.
func splitSpeaker(s string) (speaker, content string) {
	s = strings.TrimSpace(s)
	idx := strings.Index(s, ":")
	if idx < 0 {
		return "", s
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
}

// inferUtteranceType guesses a node type from the text: questions end
// with a question mark, decisions announce themselves, objections push
// back. Everything else is a statement.
func inferUtteranceType(content string) tree.NodeType {
	lower := strings.ToLower(strings.TrimSpace(content))
	switch {
	case strings.HasSuffix(lower, "?"):
		return tree.TypeQuestion
	case strings.HasPrefix(lower, "decision") || strings.HasPrefix(lower, "let's go with") ||
		strings.HasPrefix(lower, "we will") || strings.HasPrefix(lower, "agreed"):
		return tree.TypeDecision
	case strings.HasPrefix(lower, "no,") || strings.HasPrefix(lower, "but ") ||
		strings.HasPrefix(lower, "i disagree") || strings.HasPrefix(lower, "objection"):
		return tree.TypeObjection
	default:
		return tree.TypeStatement
	}
}
