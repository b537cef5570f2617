package compass

import "compass/internal/layout"

// MinimapSize is the fixed square viewport the whole tree is scaled into.
const MinimapSize = 150.0

// minimapFill leaves a margin inside the minimap viewport.
const minimapFill = 0.9

// MinimapNode is one projected node rectangle.
type MinimapNode struct {
	ID      string
	Rect    layout.Rect
	Current bool
}

// MinimapView is the scaled-down projection of the tree: node rects,
// edge endpoint pairs, and the main view's scroll rectangle, all in
// minimap coordinates.
type MinimapView struct {
	Scale    float64
	Nodes    []MinimapNode
	Edges    [][2]layout.Point
	Viewport layout.Rect
}

// projectMinimap scales every visible node and edge of the current
// layout into the fixed minimap square. The scale fits the padded
// bounds into the viewport with a margin; positions are taken relative
// to the bounds origin so the tree always starts at the top-left.
func projectMinimap(bounds layout.Rect, nodes []NodeView, edges []Edge, viewport layout.Rect) MinimapView {
	view := MinimapView{}
	if bounds.W <= 0 || bounds.H <= 0 {
		return view
	}
	scale := minFloat(MinimapSize/bounds.W, MinimapSize/bounds.H) * minimapFill
	view.Scale = scale

	project := func(p layout.Point) layout.Point {
		return layout.Point{X: (p.X - bounds.X) * scale, Y: (p.Y - bounds.Y) * scale}
	}

	for _, n := range nodes {
		if !n.Visible {
			continue
		}
		origin := project(layout.Point{X: n.Rect.X, Y: n.Rect.Y})
		view.Nodes = append(view.Nodes, MinimapNode{
			ID:      n.ID,
			Rect:    layout.Rect{X: origin.X, Y: origin.Y, W: n.Rect.W * scale, H: n.Rect.H * scale},
			Current: n.Current,
		})
	}
	for _, e := range edges {
		if !e.Visible {
			continue
		}
		view.Edges = append(view.Edges, [2]layout.Point{project(e.Curve.Start), project(e.Curve.End)})
	}
	vpOrigin := project(layout.Point{X: viewport.X, Y: viewport.Y})
	view.Viewport = layout.Rect{X: vpOrigin.X, Y: vpOrigin.Y, W: viewport.W * scale, H: viewport.H * scale}
	return view
}

// ClickTarget maps a click at minimap coordinates back into main
// canvas coordinates. The zero view maps everything to the origin.
func (v MinimapView) ClickTarget(mx, my float64) layout.Point {
	if v.Scale == 0 {
		return layout.Point{}
	}
	return layout.Point{X: mx / v.Scale, Y: my / v.Scale}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
