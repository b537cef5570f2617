package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/tree"
)

// toastDuration is how long transient status messages stay up.
const toastDuration = 2 * time.Second

type toastTickMsg struct{}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastTickMsg{} })
}

// sessionSavedMsg reports the outcome of an async session save.
type sessionSavedMsg struct {
	name string
	err  error
}

// sessionLoadedMsg carries a snapshot loaded from the session store.
type sessionLoadedMsg struct {
	name string
	snap tree.Snapshot
	err  error
}

// clipboardCopiedMsg reports the outcome of a copy to the system clipboard.
type clipboardCopiedMsg struct {
	err error
}
