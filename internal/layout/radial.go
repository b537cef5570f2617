package layout

import (
	"math"

	"compass/internal/tree"
)

// baseRadius is the outermost ring's distance from the center.
const baseRadius = 150.0

// radialPositions places the root at the origin and every descendant
// on a ring whose radius grows nonlinearly with depth, so outer rings
// get proportionally more space. A node's angle depends only on its
// index among its siblings; it is not offset by the parent's own
// angle, so branches under different parents can share ring positions.
func radialPositions(t *tree.Tree, root *tree.Node) map[string]Point {
	maxDepth := 0
	for _, n := range t.Nodes() {
		if d, err := t.Depth(n.ID); err == nil && d > maxDepth {
			maxDepth = d
		}
	}

	pos := make(map[string]Point, t.Len())
	pos[root.ID] = Point{}
	placeRing(t, root, 1, maxDepth, pos)
	return pos
}

func placeRing(t *tree.Tree, parent *tree.Node, depth, maxDepth int, pos map[string]Point) {
	kids := t.Children(parent.ID)
	if len(kids) == 0 {
		return
	}
	radius := ringRadius(depth, maxDepth)
	for i, k := range kids {
		angle := float64(i) * (2 * math.Pi / float64(len(kids)))
		pos[k.ID] = Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
		placeRing(t, k, depth+1, maxDepth, pos)
	}
}

func ringRadius(depth, maxDepth int) float64 {
	if maxDepth == 0 {
		return baseRadius
	}
	return baseRadius * math.Pow(float64(depth)/float64(maxDepth), 0.8)
}
