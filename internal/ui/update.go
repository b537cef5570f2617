package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/errors"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.transcript = newTranscriptViewport(a.transcriptWidth(), a.height-6)
		a.refreshTranscript()
		if !a.ready {
			a.ready = true
			if a.engine.CurrentID() != "" {
				a.centerOn(a.engine.CurrentID())
			}
		}
		return a, nil

	case tea.KeyMsg:
		if a.mode != modeNone {
			return a.updateInput(msg)
		}
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case toastTickMsg:
		a.statusToast = ""
		return a, nil

	case sessionSavedMsg:
		if msg.err != nil {
			a.lastError = msg.err.Error()
			return a, nil
		}
		a.lastError = ""
		return a, a.setToast("saved session " + msg.name)

	case sessionLoadedMsg:
		if msg.err != nil {
			a.lastError = msg.err.Error()
			return a, nil
		}
		if err := a.engine.LoadSnapshot(msg.snap); err != nil {
			if errors.IsStructural(err) {
				a.lastError = "session " + msg.name + " is corrupt: " + err.Error()
			} else {
				a.lastError = err.Error()
			}
			return a, nil
		}
		a.lastError = ""
		if id := a.engine.CurrentID(); id != "" {
			a.centerOn(id)
		}
		a.refreshTranscript()
		return a, a.setToast("loaded session " + msg.name)

	case clipboardCopiedMsg:
		if msg.err != nil {
			a.lastError = msg.err.Error()
			return a, nil
		}
		return a, a.setToast("copied to clipboard")
	}

	if a.mode == modeNone && a.showTranscript {
		var cmd tea.Cmd
		a.transcript, cmd = a.transcript.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateInput routes keystrokes while the text input line is active.
func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNone
		a.input.Reset()
		a.input.Blur()
		return a, nil
	case "enter":
		return a.commitInput()
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// commitInput applies the pending input line for the active mode.
func (a *App) commitInput() (tea.Model, tea.Cmd) {
	value := a.input.Value()
	mode := a.mode
	a.mode = modeNone
	a.input.Reset()
	a.input.Blur()

	switch mode {
	case modeUtterance:
		speaker, content := splitSpeaker(value)
		if content == "" {
			return a, nil
		}
		id, err := a.engine.AddUtterance("", speaker, content, inferUtteranceType(content))
		if err != nil {
			a.lastError = err.Error()
			return a, nil
		}
		a.lastError = ""
		a.centerOn(id)
		a.refreshTranscript()
		return a, nil

	case modeKeyword:
		id, err := a.engine.ResolveKeyword(value)
		if err != nil {
			a.lastError = err.Error()
			return a, nil
		}
		a.lastError = ""
		a.engine.Focus(id)
		a.refreshTranscript()
		return a, nil

	case modeSaveSession:
		return a, a.saveSessionCmd(value)

	case modeLoadSession:
		return a, a.loadSessionCmd(value)
	}
	return a, nil
}

func (a *App) saveSessionCmd(name string) tea.Cmd {
	store, err := a.openStore()
	if err != nil {
		a.lastError = err.Error()
		return nil
	}
	snap := a.engine.Snapshot()
	return func() tea.Msg {
		err := store.Save(context.Background(), name, snap)
		return sessionSavedMsg{name: name, err: err}
	}
}

func (a *App) loadSessionCmd(name string) tea.Cmd {
	store, err := a.openStore()
	if err != nil {
		a.lastError = err.Error()
		return nil
	}
	return func() tea.Msg {
		snap, err := store.Load(context.Background(), name)
		return sessionLoadedMsg{name: name, snap: snap, err: err}
	}
}
