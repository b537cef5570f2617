// Package tree holds the conversation tree: an arena of nodes keyed by id,
// with stable insertion order and parent/child links. It is the single
// source of truth that the layout and navigation layers read from.
package tree

// NodeType classifies an utterance or branch in the conversation.
type NodeType string

const (
	TypeStatement NodeType = "statement"
	TypeQuestion  NodeType = "question"
	TypeObjection NodeType = "objection"
	TypeDecision  NodeType = "decision"
	TypeCurrent   NodeType = "current"
	TypeSuggested NodeType = "suggested"
	TypeActual    NodeType = "actual"
)

// Node is one utterance in the conversation tree. Children preserves
// the order in which children were attached.
type Node struct {
	ID       string
	ParentID string // empty for a root
	Type     NodeType
	Speaker  string
	Content  string
	Seq      int // 1-based insertion sequence, assigned by the store

	Children []string

	// Presentation state owned by the visibility controller.
	Collapsed bool
	Visible   bool
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.ParentID == ""
}
