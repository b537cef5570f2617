package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"compass/internal/compass"
	"compass/internal/debug"
)

func newTranscriptViewport(width, height int) viewport.Model {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	return viewport.New(width, height)
}

// transcriptMarkdown renders the root-to-current conversation as a
// markdown document: one bullet per utterance, decisions emphasized.
func transcriptMarkdown(entries []compass.HistoryEntry) string {
	if len(entries) == 0 {
		return "_No conversation yet._"
	}
	var b strings.Builder
	b.WriteString("## Path to here\n\n")
	for _, e := range entries {
		speaker := e.Speaker
		if speaker == "" {
			speaker = "unknown"
		}
		line := fmt.Sprintf("- **%s** (%s): %s\n", speaker, e.Type, e.Content)
		b.WriteString(line)
	}
	return b.String()
}

// refreshTranscript re-renders the transcript pane from the engine's
// current history. The plain output format skips glamour and shows the
// raw markdown; glamour failures fall back to the same.
func (a *App) refreshTranscript() {
	if !a.showTranscript {
		return
	}
	md := transcriptMarkdown(a.engine.History())
	if a.plainTranscript {
		a.transcript.SetContent(md)
		a.transcript.GotoBottom()
		return
	}

	width := a.transcript.Width - 2
	if width < 10 {
		width = 10
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		debug.Logf("ui: glamour renderer: %v", err)
		a.transcript.SetContent(md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		debug.Logf("ui: transcript render: %v", err)
		a.transcript.SetContent(md)
		return
	}
	a.transcript.SetContent(out)
	a.transcript.GotoBottom()
}
