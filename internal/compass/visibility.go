package compass

import "compass/internal/tree"

// Visibility operations work directly on node flags. They degrade to
// no-ops when the id is unknown; nothing here returns an error.

// collapseNode hides the subtree below id. Subtrees under an already
// collapsed child are not re-traversed; their nodes are hidden already
// and keep their own collapsed state.
func collapseNode(t *tree.Tree, id string) {
	n, err := t.Get(id)
	if err != nil {
		return
	}
	n.Collapsed = true
	hideChildren(t, n)
}

func hideChildren(t *tree.Tree, n *tree.Node) {
	for _, child := range t.Children(n.ID) {
		child.Visible = false
		if !child.Collapsed {
			hideChildren(t, child)
		}
	}
}

// expandNode reveals the children of id. Deeper descendants reappear
// only while no collapsed node sits between them and id.
func expandNode(t *tree.Tree, id string) {
	n, err := t.Get(id)
	if err != nil {
		return
	}
	n.Collapsed = false
	showChildren(t, n)
}

func showChildren(t *tree.Tree, n *tree.Node) {
	for _, child := range t.Children(n.ID) {
		child.Visible = true
		if !child.Collapsed {
			showChildren(t, child)
		}
	}
}

// showOnlyBranch hides the whole tree, then reveals rootID and its
// descendants down to levels hops below it. levels = 0 shows the
// branch root alone. Collapsed flags are left untouched.
func showOnlyBranch(t *tree.Tree, rootID string, levels int) {
	n, err := t.Get(rootID)
	if err != nil {
		return
	}
	for _, node := range t.Nodes() {
		node.Visible = false
	}
	n.Visible = true
	showToLevel(t, n, 0, levels)
}

func showToLevel(t *tree.Tree, n *tree.Node, level, maxLevel int) {
	if level >= maxLevel {
		return
	}
	for _, child := range t.Children(n.ID) {
		child.Visible = true
		showToLevel(t, child, level+1, maxLevel)
	}
}
