package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/compass"
	"compass/internal/layout"
)

// Screen offsets of the tree pane's content area: the header line,
// then the pane border.
const (
	treePaneOriginX = 1
	treePaneOriginY = 2
)

// handleMouse maps terminal mouse events onto the tree pane. A left
// click on a node box makes it current, a click on the minimap overlay
// jumps the camera there, and the wheel pans vertically. Events
// outside the pane, or while an input line or the help overlay is up,
// are ignored.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.mode != modeNone || a.showHelp {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.camera.Y -= panStepY
		return a, nil
	case tea.MouseButtonWheelDown:
		a.camera.Y += panStepY
		return a, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	cx := msg.X - treePaneOriginX
	cy := msg.Y - treePaneOriginY
	w, h := a.treeViewSize()
	if cx < 0 || cy < 0 || cx >= w || cy >= h {
		return a, nil
	}

	if a.minimapClick(cx, cy) {
		return a, nil
	}

	if id, ok := a.nodeAtCell(cx, cy); ok {
		a.lastError = ""
		a.engine.NodeClicked(id)
		a.refreshTranscript()
	}
	return a, nil
}

// nodeAtCell hit-tests the tree-pane cell against the laid-out node
// rects. Boxes paint in insertion order, so the last match is the one
// actually visible under the cursor.
func (a *App) nodeAtCell(cx, cy int) (string, bool) {
	world := layout.Point{
		X: a.camera.X + (float64(cx)+0.5)*cellScaleX,
		Y: a.camera.Y + (float64(cy)+0.5)*cellScaleY,
	}
	nodes := a.engine.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		v := nodes[i]
		if v.Visible && v.Rect.Contains(world) {
			return v.ID, true
		}
	}
	return "", false
}

// minimapClick reports whether the tree-pane cell lies on the minimap
// overlay, recentering the camera on the clicked spot when it falls on
// the map grid. Clicks on the overlay border are consumed without
// moving the camera so they never reach a node box behind the map.
func (a *App) minimapClick(cx, cy int) bool {
	if !a.showMinimap || a.engine.Len() == 0 {
		return false
	}
	w, h := a.treeViewSize()

	// Overlay footprint: bordered grid anchored bottom-right with one
	// cell of padding, mirroring how renderTree places it.
	blockW := minimapCols + 2
	blockH := minimapRows + 2
	startX := w - blockW - 1
	if startX < 0 {
		startX = 0
	}
	startY := h - blockH - 1
	if startY < 0 {
		startY = 0
	}
	if cx < startX || cy < startY || cx >= startX+blockW || cy >= startY+blockH {
		return false
	}

	gx := cx - startX - 1
	gy := cy - startY - 1
	if gx < 0 || gy < 0 || gx >= minimapCols || gy >= minimapRows {
		return true // border cell
	}

	view := a.engine.Minimap(a.viewportWorldRect())
	if view.Scale == 0 {
		return true
	}
	target := view.ClickTarget(
		(float64(gx)+0.5)/minimapCols*compass.MinimapSize,
		(float64(gy)+0.5)/minimapRows*compass.MinimapSize,
	)
	a.camera = layout.Point{
		X: target.X - float64(w)/2*cellScaleX,
		Y: target.Y - float64(h)/2*cellScaleY,
	}
	return true
}
