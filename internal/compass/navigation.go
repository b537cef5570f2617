package compass

import "compass/internal/tree"

// RGB is a 24-bit color used for path highlight tints.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// highlightState is the derived navigation overlay: recomputed from
// scratch on every set_current, never persisted.
type highlightState struct {
	// tints maps path node ids (root through the current node's
	// parent) to their gradient color.
	tints map[string]RGB
	// edges marks parent:child pairs along the path as highlighted.
	edges map[[2]string]bool
	// badges numbers the current node's direct children 1..N.
	badges map[string]int
}

func newHighlightState() highlightState {
	return highlightState{
		tints:  make(map[string]RGB),
		edges:  make(map[[2]string]bool),
		badges: make(map[string]int),
	}
}

// pathTint interpolates from a pale start tint toward the current-node
// tint. progress runs 0..1 along the root-to-current path.
func pathTint(progress float64) RGB {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return RGB{
		R: uint8(220 + 35*progress),
		G: uint8(240 - 40*progress),
		B: 255,
	}
}

// computeHighlights builds the overlay for the given current node:
// gradient tints on every path node except the current one, highlight
// flags on the path edges, and badges on the current node's children.
func computeHighlights(t *tree.Tree, currentID string) highlightState {
	hs := newHighlightState()
	if currentID == "" {
		return hs
	}
	path, err := t.PathFromRoot(currentID)
	if err != nil {
		return hs
	}

	for i, id := range path {
		if id == currentID {
			continue
		}
		progress := 0.0
		if len(path) > 1 {
			progress = float64(i) / float64(len(path)-1)
		}
		hs.tints[id] = pathTint(progress)
	}
	for i := 0; i+1 < len(path); i++ {
		hs.edges[[2]string{path[i], path[i+1]}] = true
	}
	for i, child := range t.Children(currentID) {
		hs.badges[child.ID] = i + 1
	}
	return hs
}

// expandAncestors runs expand on every ancestor of id from the root
// down, so the node is visible after a navigation jump.
func expandAncestors(t *tree.Tree, id string) {
	path, err := t.PathFromRoot(id)
	if err != nil {
		return
	}
	for _, ancestorID := range path[:len(path)-1] {
		expandNode(t, ancestorID)
	}
	if n, err := t.Get(id); err == nil {
		n.Visible = true
	}
}
