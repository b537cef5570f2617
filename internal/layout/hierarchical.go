package layout

import "compass/internal/tree"

// footprint is the space a subtree claims during the hierarchical
// pass: wide enough for all descendants side by side, tall enough for
// the deepest chain.
type footprint struct {
	w float64
	h float64
}

// hierarchicalPositions runs the two-pass top-down layout: a
// post-order pass sizes every subtree's footprint, then a pre-order
// pass centers each node horizontally within its slot, one row per
// depth level. Children stay in attachment order.
func hierarchicalPositions(t *tree.Tree, root *tree.Node) map[string]Point {
	prints := make(map[string]footprint, t.Len())
	measure(t, root, prints)

	pos := make(map[string]Point, t.Len())
	place(t, root, -prints[root.ID].w/2, 0, prints, pos)
	return pos
}

func measure(t *tree.Tree, n *tree.Node, prints map[string]footprint) footprint {
	kids := t.Children(n.ID)
	if len(kids) == 0 {
		fp := footprint{w: NodeWidth, h: NodeHeight}
		prints[n.ID] = fp
		return fp
	}

	var kidsW, maxKidH float64
	for _, k := range kids {
		fp := measure(t, k, prints)
		kidsW += fp.w
		if fp.h > maxKidH {
			maxKidH = fp.h
		}
	}
	kidsW += float64(len(kids)-1) * nodeSpacingX

	fp := footprint{
		w: max64(NodeWidth, kidsW),
		h: NodeHeight + levelSpacingY + maxKidH,
	}
	prints[n.ID] = fp
	return fp
}

func place(t *tree.Tree, n *tree.Node, left float64, level int, prints map[string]footprint, pos map[string]Point) {
	fp := prints[n.ID]
	pos[n.ID] = Point{
		X: left + fp.w/2 - NodeWidth/2,
		Y: float64(level) * levelSpacingY,
	}

	childLeft := left
	// Children wider than their parent keep their own slot; a parent
	// wider than its children gets the extra space split evenly.
	kids := t.Children(n.ID)
	var kidsW float64
	for _, k := range kids {
		kidsW += prints[k.ID].w
	}
	kidsW += float64(len(kids)-1) * nodeSpacingX
	if kidsW < fp.w {
		childLeft += (fp.w - kidsW) / 2
	}

	for _, k := range kids {
		place(t, k, childLeft, level+1, prints, pos)
		childLeft += prints[k.ID].w + nodeSpacingX
	}
}

func max64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
