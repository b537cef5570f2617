package compass

import (
	"compass/internal/layout"
	"compass/internal/tree"
)

// NodeView is the per-node render contract: everything a renderer
// needs, nothing it can mutate.
type NodeView struct {
	ID      string
	Rect    layout.Rect
	Type    tree.NodeType
	Speaker string
	Content string
	Seq     int

	Color     RGB  // base color for the node type
	Highlight *RGB // path gradient tint, nil off the current path
	Badge     int  // 1..N on the current node's children, 0 otherwise
	Visible   bool
	Current   bool
}

// typeColors are the canonical per-type node colors. Terminal themes
// remap them, but the engine ships a default so headless consumers can
// render without a theme.
var typeColors = map[tree.NodeType]RGB{
	tree.TypeStatement: {R: 0xE8, G: 0xF4, B: 0xF8},
	tree.TypeQuestion:  {R: 0xFF, G: 0xF3, B: 0xCD},
	tree.TypeObjection: {R: 0xF8, G: 0xD7, B: 0xDA},
	tree.TypeDecision:  {R: 0xD4, G: 0xED, B: 0xDA},
	tree.TypeCurrent:   {R: 0xCC, G: 0xE5, B: 0xFF},
	tree.TypeSuggested: {R: 0xE2, G: 0xE3, B: 0xE5},
	tree.TypeActual:    {R: 0xD1, G: 0xEC, B: 0xF1},
}

// TypeColor returns the default color for a node type. Unknown types
// fall back to the statement color.
func TypeColor(t tree.NodeType) RGB {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return typeColors[tree.TypeStatement]
}

// Nodes returns the render view of every laid-out node in insertion
// order. Nodes without a position (no layout pass has covered them
// yet) are omitted.
func (e *Engine) Nodes() []NodeView {
	var views []NodeView
	for _, n := range e.tree.Nodes() {
		pos, ok := e.result.Positions[n.ID]
		if !ok {
			continue
		}
		view := NodeView{
			ID:      n.ID,
			Rect:    layout.NodeRect(pos),
			Type:    n.Type,
			Speaker: n.Speaker,
			Content: n.Content,
			Seq:     n.Seq,
			Color:   TypeColor(n.Type),
			Badge:   e.highlight.badges[n.ID],
			Visible: n.Visible,
			Current: n.ID == e.currentID,
		}
		if tint, ok := e.highlight.tints[n.ID]; ok {
			c := tint
			view.Highlight = &c
		}
		views = append(views, view)
	}
	return views
}

// Edges returns the current connector list. Hidden edges are included
// with Visible=false.
func (e *Engine) Edges() []Edge {
	out := make([]Edge, len(e.edges))
	copy(out, e.edges)
	return out
}

// Bounds returns the padded bounding box of the current layout.
func (e *Engine) Bounds() layout.Rect {
	return e.result.Bounds
}

// Minimap projects the current layout into the fixed minimap square.
// viewport is the main view's visible scroll rectangle in canvas
// coordinates.
func (e *Engine) Minimap(viewport layout.Rect) MinimapView {
	return projectMinimap(e.result.Bounds, e.Nodes(), e.edges, viewport)
}

// HistoryEntry is one spoken line on the path to the current node.
type HistoryEntry struct {
	Speaker string
	Content string
	Type    tree.NodeType
}

// History returns the conversation from the root to the current node,
// excluding the root itself. An unset current position yields nil.
func (e *Engine) History() []HistoryEntry {
	if e.currentID == "" {
		return nil
	}
	path, err := e.tree.PathFromRoot(e.currentID)
	if err != nil {
		return nil
	}
	var out []HistoryEntry
	for _, id := range path[1:] {
		n, err := e.tree.Get(id)
		if err != nil {
			continue
		}
		out = append(out, HistoryEntry{Speaker: n.Speaker, Content: n.Content, Type: n.Type})
	}
	return out
}

// Snapshot captures the tree and current position for persistence.
func (e *Engine) Snapshot() tree.Snapshot {
	return e.tree.Snapshot(e.currentID)
}

// LoadSnapshot replaces the engine's tree with the snapshot contents
// and restores the current position.
func (e *Engine) LoadSnapshot(snap tree.Snapshot) error {
	restored, currentID, err := tree.Restore(snap)
	if err != nil {
		return err
	}
	e.tree = restored
	e.currentID = ""
	e.highlight = newHighlightState()
	if currentID != "" {
		e.moveCurrent(currentID)
	}
	e.refresh()
	e.events.emitTreeUpdated()
	if currentID != "" {
		e.events.emitPositionChanged(currentID)
	}
	return nil
}
