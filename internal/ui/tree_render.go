package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"compass/internal/compass"
	"compass/internal/layout"
	"compass/internal/ui/theme"
)

// edgeSamples is how many points are plotted per connector curve.
const edgeSamples = 24

// renderTree draws the visible tree into a cell canvas: edges first so
// node boxes paint over them, then nodes in insertion order, then the
// minimap overlay.
func (a *App) renderTree(w, h int) string {
	canvas := NewCanvas(w, h)

	for _, e := range a.engine.Edges() {
		if !e.Visible {
			continue
		}
		a.plotCurve(canvas, e)
	}

	nodes := a.engine.Nodes()
	for _, v := range nodes {
		if !v.Visible {
			continue
		}
		x, y := a.worldToCell(layout.Point{X: v.Rect.X, Y: v.Rect.Y})
		canvas.DrawStringAt(x, y, renderNodeBox(v))
	}

	if len(nodes) == 0 {
		canvas.centerOverlay(styleStatus().Render("press a to add the first utterance"))
	}
	if a.showMinimap && len(nodes) > 0 {
		canvas.bottomRightOverlay(a.renderMinimap(), 1)
	}
	if a.showHelp {
		canvas.centerOverlay(renderHelp())
	}
	return canvas.Render()
}

func (a *App) plotCurve(canvas *Canvas, e compass.Edge) {
	style := styleEdge(e.Highlighted)
	mark := '·'
	if e.Highlighted {
		mark = '●'
	}
	for i := 0; i <= edgeSamples; i++ {
		u := float64(i) / edgeSamples
		x, y := a.worldToCell(e.Curve.Eval(u))
		canvas.PlotRune(x, y, mark, style)
	}
}

// Minimap overlay dimensions in cells.
const (
	minimapCols = 30
	minimapRows = 10
)

// renderMinimap squeezes the engine's 150x150 projection into a small
// bordered character grid with the viewport marked.
func (a *App) renderMinimap() string {
	view := a.engine.Minimap(a.viewportWorldRect())
	if view.Scale == 0 {
		return ""
	}

	grid := make([][]rune, minimapRows)
	for i := range grid {
		grid[i] = make([]rune, minimapCols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	toCell := func(p layout.Point) (int, int) {
		return int(p.X / compass.MinimapSize * minimapCols),
			int(p.Y / compass.MinimapSize * minimapRows)
	}

	plot := func(x, y int, r rune) {
		if x >= 0 && x < minimapCols && y >= 0 && y < minimapRows {
			grid[y][x] = r
		}
	}

	for _, e := range view.Edges {
		x, y := toCell(layout.Point{
			X: (e[0].X + e[1].X) / 2,
			Y: (e[0].Y + e[1].Y) / 2,
		})
		plot(x, y, '·')
	}
	var current [2]int
	hasCurrent := false
	for _, n := range view.Nodes {
		x, y := toCell(n.Rect.Center())
		if n.Current {
			current = [2]int{x, y}
			hasCurrent = true
			continue
		}
		plot(x, y, '▪')
	}
	// Viewport corners, drawn under the current marker.
	vx0, vy0 := toCell(layout.Point{X: view.Viewport.X, Y: view.Viewport.Y})
	vx1, vy1 := toCell(layout.Point{
		X: view.Viewport.X + view.Viewport.W,
		Y: view.Viewport.Y + view.Viewport.H,
	})
	plot(vx0, vy0, '┌')
	plot(vx1, vy0, '┐')
	plot(vx0, vy1, '└')
	plot(vx1, vy1, '┘')
	if hasCurrent {
		plot(current[0], current[1], '◆')
	}

	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	t := theme.Current()
	body := lipgloss.NewStyle().Foreground(t.TextMuted()).Render(strings.Join(rows, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderNormal()).
		Render(body)
}

func renderHelp() string {
	t := theme.Current()
	keyStyle := styleFooterKey()
	rows := []struct{ key, desc string }{
		{"a", "add utterance"},
		{"1-9", "jump to numbered child"},
		{"/", "jump by keyword"},
		{"p", "jump to parent"},
		{"c / e", "collapse / expand current"},
		{"b / B", "isolate branch / show all"},
		{"tab", "toggle layout"},
		{"f", "toggle overlap refinement"},
		{"arrows", "pan"},
		{"click", "select node / jump via minimap"},
		{"r", "recenter on current"},
		{"m / v", "minimap / transcript"},
		{"s / o", "save / load session"},
		{"t / T", "cycle / save theme"},
		{"y", "copy current content"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Text()).Bold(true).Render("Keys"))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("\n%s  %s",
			keyStyle.Render(fmt.Sprintf("%-7s", r.key)),
			lipgloss.NewStyle().Foreground(t.Text()).Render(r.desc)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocused()).
		Padding(0, 2).
		Render(b.String())
}
