package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Canvas composes lipgloss-rendered strings into a cell buffer before
// turning the frame back into a string for Bubble Tea. Node boxes and
// edge curves are drawn at arbitrary cell coordinates, then the whole
// frame renders at once.
type Canvas struct {
	screen *cellbuf.Screen
	writer *cellbuf.ScreenWriter
	width  int
	height int
}

func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	screen := cellbuf.NewScreen(io.Discard, width, height, &cellbuf.ScreenOptions{
		ShowCursor: false,
		AltScreen:  false,
	})
	return &Canvas{
		screen: screen,
		writer: cellbuf.NewScreenWriter(screen),
		width:  width,
		height: height,
	}
}

// Fill paints the entire canvas with the provided background color.
func (c *Canvas) Fill(bg lipgloss.TerminalColor) {
	if c == nil {
		return
	}
	fill := lipgloss.NewStyle().
		Background(bg).
		Width(c.width).
		Height(c.height).
		Render("")
	c.DrawStringAt(0, 0, fill)
}

// DrawStringAt writes the provided block starting at x,y. Newlines are
// normalized so each line begins at column 0 relative to x. Content
// off the canvas is cropped.
func (c *Canvas) DrawStringAt(x, y int, content string) {
	if content == "" || c == nil || c.writer == nil {
		return
	}
	lines := splitBlockLines(content)
	for i, line := range lines {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		if line == "" {
			continue
		}
		c.writer.PrintCropAt(x, row, line, "")
	}
}

// PlotRune places a single styled character, skipping out-of-range cells.
func (c *Canvas) PlotRune(x, y int, r rune, style lipgloss.Style) {
	if c == nil || c.writer == nil {
		return
	}
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.writer.PrintCropAt(x, y, style.Render(string(r)), "")
}

// bottomRightOverlay anchors the overlay to the bottom-right corner
// with the provided padding inside the canvas.
func (c *Canvas) bottomRightOverlay(overlay string, padding int) {
	lines := splitBlockLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	if padding < 0 {
		padding = 0
	}
	startY := c.height - len(lines) - padding
	if startY < 0 {
		startY = 0
	}
	startX := c.width - maxLineWidth(lines) - padding
	if startX < 0 {
		startX = 0
	}
	c.DrawStringAt(startX, startY, strings.Join(lines, "\n"))
}

// centerOverlay draws the overlay centered within the canvas.
func (c *Canvas) centerOverlay(overlay string) {
	lines := splitBlockLines(overlay)
	if len(lines) == 0 || c == nil {
		return
	}
	startY := (c.height - len(lines)) / 2
	if startY < 0 {
		startY = 0
	}
	startX := (c.width - maxLineWidth(lines)) / 2
	if startX < 0 {
		startX = 0
	}
	c.DrawStringAt(startX, startY, strings.Join(lines, "\n"))
}

// Render returns the composed frame as a newline-delimited string.
func (c *Canvas) Render() string {
	if c == nil || c.screen == nil {
		return ""
	}
	raw := cellbuf.Render(c.screen)
	_ = c.screen.Close()
	return strings.ReplaceAll(raw, "\r\n", "\n")
}

func splitBlockLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}
