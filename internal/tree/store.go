package tree

// Tree is an arena of conversation nodes. Nodes are owned by the tree;
// callers receive pointers and may read or adjust presentation fields,
// but structural fields (ID, ParentID, Seq, Children) are managed here.
//
// Tree is not safe for concurrent use. The engine serializes access.
type Tree struct {
	nodes map[string]*Node
	order []string // insertion order, parallel to Seq
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

// Len reports the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.order)
}

// Has reports whether a node with the given id exists.
func (t *Tree) Has(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// Get returns the node with the given id, or a not-found error.
func (t *Tree) Get(id string) (*Node, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, errNotFound(id)
	}
	return n, nil
}

// Add inserts a node into the tree. The insert is atomic: every
// invariant is checked before any state changes, so a failed Add
// leaves the tree untouched. On success the node is assigned the next
// sequence number, linked under its parent, and made visible.
func (t *Tree) Add(id, parentID string, typ NodeType, speaker, content string) (*Node, error) {
	if id == "" {
		return nil, errEmptyID()
	}
	if id == parentID {
		return nil, errSelfParent(id)
	}
	if _, exists := t.nodes[id]; exists {
		return nil, errDuplicateID(id)
	}
	if parentID != "" {
		if _, ok := t.nodes[parentID]; !ok {
			return nil, errDanglingParent(id, parentID)
		}
	}

	n := &Node{
		ID:       id,
		ParentID: parentID,
		Type:     typ,
		Speaker:  speaker,
		Content:  content,
		Seq:      len(t.order) + 1,
		Visible:  true,
	}
	t.nodes[id] = n
	t.order = append(t.order, id)
	if parentID != "" {
		parent := t.nodes[parentID]
		parent.Children = append(parent.Children, id)
	}
	return n, nil
}

// Nodes returns all nodes in insertion order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.nodes[id])
	}
	return out
}

// Root returns the first node inserted without a parent, or nil if the
// tree is empty. Trees built through the engine have exactly one root.
func (t *Tree) Root() *Node {
	for _, id := range t.order {
		if n := t.nodes[id]; n.IsRoot() {
			return n
		}
	}
	return nil
}

// Children returns the child nodes of id in attachment order.
func (t *Tree) Children(id string) []*Node {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	out := make([]*Node, 0, len(n.Children))
	for _, cid := range n.Children {
		out = append(out, t.nodes[cid])
	}
	return out
}

// PathFromRoot returns the node ids from the root down to id, inclusive.
func (t *Tree) PathFromRoot(id string) ([]string, error) {
	if _, ok := t.nodes[id]; !ok {
		return nil, errNotFound(id)
	}
	var rev []string
	for cur := id; cur != ""; {
		n := t.nodes[cur]
		rev = append(rev, cur)
		cur = n.ParentID
	}
	// reverse in place
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}

// Depth returns the number of edges between id and its root.
func (t *Tree) Depth(id string) (int, error) {
	path, err := t.PathFromRoot(id)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// Clear removes every node from the tree.
func (t *Tree) Clear() {
	t.nodes = make(map[string]*Node)
	t.order = nil
}
