package compass

import (
	"compass/internal/layout"
	"compass/internal/tree"
)

// CubicCurve is a fixed vertical S-curve between two nodes: it leaves
// the parent's bottom-center straight down and enters the child's
// top-center straight up, with control points at one and two thirds of
// the vertical span.
type CubicCurve struct {
	Start    layout.Point
	Control1 layout.Point
	Control2 layout.Point
	End      layout.Point
}

// Eval returns the curve point at parameter u in [0,1].
func (c CubicCurve) Eval(u float64) layout.Point {
	v := 1 - u
	b0 := v * v * v
	b1 := 3 * v * v * u
	b2 := 3 * v * u * u
	b3 := u * u * u
	return layout.Point{
		X: b0*c.Start.X + b1*c.Control1.X + b2*c.Control2.X + b3*c.End.X,
		Y: b0*c.Start.Y + b1*c.Control1.Y + b2*c.Control2.Y + b3*c.End.Y,
	}
}

// Edge is a transient parent-to-child connector. Edges are rebuilt in
// full on every layout or visibility pass; hidden edges stay in the
// list flagged invisible so they can reappear without re-derivation.
type Edge struct {
	ParentID    string
	ChildID     string
	Curve       CubicCurve
	Visible     bool
	Highlighted bool
}

func curveBetween(parentPos, childPos layout.Point) CubicCurve {
	start := layout.NodeRect(parentPos).BottomCenter()
	end := layout.NodeRect(childPos).TopCenter()
	span := end.Y - start.Y
	return CubicCurve{
		Start:    start,
		Control1: layout.Point{X: start.X, Y: start.Y + span/3},
		Control2: layout.Point{X: end.X, Y: end.Y - span/3},
		End:      end,
	}
}

// buildEdges derives connectors for every parent/child pair that has a
// position, in node insertion order. Visibility follows the endpoints;
// highlights come from the current navigation path.
func buildEdges(t *tree.Tree, positions map[string]layout.Point, hs highlightState) []Edge {
	var edges []Edge
	for _, n := range t.Nodes() {
		if n.ParentID == "" {
			continue
		}
		parentPos, okP := positions[n.ParentID]
		childPos, okC := positions[n.ID]
		if !okP || !okC {
			continue
		}
		parent, err := t.Get(n.ParentID)
		if err != nil {
			continue
		}
		edges = append(edges, Edge{
			ParentID:    n.ParentID,
			ChildID:     n.ID,
			Curve:       curveBetween(parentPos, childPos),
			Visible:     parent.Visible && n.Visible,
			Highlighted: hs.edges[[2]string{n.ParentID, n.ID}],
		})
	}
	return edges
}
