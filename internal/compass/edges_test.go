package compass

import (
	"math"
	"testing"

	"compass/internal/layout"
	"compass/internal/tree"
)

func TestCurveBetweenEndpointsAndControls(t *testing.T) {
	parent := layout.Point{X: 0, Y: 0}
	child := layout.Point{X: 300, Y: 200}
	c := curveBetween(parent, child)

	wantStart := layout.Point{X: layout.NodeWidth / 2, Y: layout.NodeHeight}
	wantEnd := layout.Point{X: 300 + layout.NodeWidth/2, Y: 200}
	if c.Start != wantStart {
		t.Errorf("start = %v, want %v", c.Start, wantStart)
	}
	if c.End != wantEnd {
		t.Errorf("end = %v, want %v", c.End, wantEnd)
	}
	span := wantEnd.Y - wantStart.Y
	if c.Control1.X != wantStart.X || c.Control1.Y != wantStart.Y+span/3 {
		t.Errorf("control1 = %v", c.Control1)
	}
	if c.Control2.X != wantEnd.X || c.Control2.Y != wantEnd.Y-span/3 {
		t.Errorf("control2 = %v", c.Control2)
	}
}

func TestCurveEval(t *testing.T) {
	c := curveBetween(layout.Point{}, layout.Point{X: 0, Y: 200})
	if got := c.Eval(0); got != c.Start {
		t.Errorf("Eval(0) = %v, want %v", got, c.Start)
	}
	if got := c.Eval(1); got != c.End {
		t.Errorf("Eval(1) = %v, want %v", got, c.End)
	}
	mid := c.Eval(0.5)
	if math.Abs(mid.X-c.Start.X) > 1e-9 {
		t.Errorf("vertical curve midpoint drifted in x: %v", mid)
	}
	if !(mid.Y > c.Start.Y && mid.Y < c.End.Y) {
		t.Errorf("midpoint y %v outside span", mid.Y)
	}
}

func TestHiddenEdgesKeptInvisible(t *testing.T) {
	e := newTestEngine()
	root := mustAdd(t, e, "", "kickoff", tree.TypeStatement)
	a := mustAdd(t, e, root, "a", tree.TypeStatement)
	mustAdd(t, e, a, "a1", tree.TypeStatement)

	e.Collapse(a)
	edges := e.Edges()
	if len(edges) != 2 {
		t.Fatalf("edge count = %d, want 2", len(edges))
	}
	byChild := make(map[string]Edge)
	for _, ed := range edges {
		byChild[ed.ChildID] = ed
	}
	if !byChild[a].Visible {
		t.Error("root-a edge hidden, both endpoints visible")
	}
	for child, ed := range byChild {
		if child != a && ed.Visible {
			t.Errorf("edge to %s visible under collapsed parent", child)
		}
	}
}

func TestPathEdgesHighlighted(t *testing.T) {
	e := newTestEngine()
	root := mustAdd(t, e, "", "kickoff", tree.TypeStatement)
	a := mustAdd(t, e, root, "a", tree.TypeStatement)
	b := mustAdd(t, e, root, "b", tree.TypeStatement)
	e.SetCurrent(a)

	for _, ed := range e.Edges() {
		wantHi := ed.ChildID == a
		if ed.Highlighted != wantHi {
			t.Errorf("edge to %s highlighted = %v, want %v", ed.ChildID, ed.Highlighted, wantHi)
		}
	}
	_ = b
}
