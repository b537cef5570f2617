package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestCanvasDrawStringAt(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	c := NewCanvas(20, 5)
	c.DrawStringAt(2, 1, "ab\ncd")
	out := stripANSI(c.Render())
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("render produced %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "ab") || !strings.Contains(lines[2], "cd") {
		t.Errorf("block not drawn at offset:\n%s", out)
	}
}

func TestCanvasPlotRuneSkipsOutOfRange(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	c := NewCanvas(10, 3)
	style := lipgloss.NewStyle()
	c.PlotRune(-1, 0, 'x', style)
	c.PlotRune(0, 5, 'x', style)
	c.PlotRune(4, 1, 'x', style)
	out := stripANSI(c.Render())
	if strings.Count(out, "x") != 1 {
		t.Errorf("expected exactly one plotted rune:\n%s", out)
	}
}

func TestCanvasBottomRightOverlay(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	c := NewCanvas(20, 5)
	c.bottomRightOverlay("ZZ", 1)
	lines := strings.Split(stripANSI(c.Render()), "\n")
	row, idx := -1, -1
	for i, line := range lines {
		if j := strings.Index(line, "ZZ"); j >= 0 {
			row, idx = i, j
		}
	}
	if row != 3 {
		t.Fatalf("overlay on row %d, want 3:\n%s", row, strings.Join(lines, "\n"))
	}
	if idx != 20-2-1 {
		t.Errorf("overlay at column %d, want %d", idx, 20-2-1)
	}
}

func TestCanvasCenterOverlay(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	c := NewCanvas(11, 5)
	c.centerOverlay("abc")
	lines := strings.Split(stripANSI(c.Render()), "\n")
	if !strings.Contains(lines[2], "abc") {
		t.Errorf("overlay not vertically centered:\n%s", strings.Join(lines, "\n"))
	}
	if strings.Index(lines[2], "abc") != 4 {
		t.Errorf("overlay not horizontally centered: %q", lines[2])
	}
}

func TestClampLines(t *testing.T) {
	got := clampLines("a\nb\nc", 2)
	if got != "a\n…" && !strings.HasSuffix(got, "…") {
		t.Errorf("clampLines = %q", got)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Errorf("clampLines kept %d lines, want 2", len(lines))
	}
	if got := clampLines("a\nb", 3); got != "a\nb" {
		t.Errorf("clampLines on short block = %q", got)
	}
}

func TestClampLinesKeepsRunesIntact(t *testing.T) {
	got := clampLines("café\nmore", 1)
	if !utf8.ValidString(got) {
		t.Fatalf("clampLines produced invalid UTF-8: %q", got)
	}
	if got != "caf…" {
		t.Errorf("clampLines = %q, want %q", got, "caf…")
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("hello", 10); got != "hello" {
		t.Errorf("truncateText short = %q", got)
	}
	if got := truncateText("hello", 4); got != "hel…" {
		t.Errorf("truncateText = %q", got)
	}
	if got := truncateText("hello", 0); got != "" {
		t.Errorf("truncateText zero = %q", got)
	}
}
