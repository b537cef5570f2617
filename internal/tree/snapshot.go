package tree

import (
	"encoding/json"
	"sort"

	"compass/internal/errors"
)

// SnapshotNode is the persisted form of a single node.
type SnapshotNode struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Type     string `json:"type"`
	Speaker  string `json:"speaker,omitempty"`
	Content  string `json:"content"`
	Seq      int    `json:"sequence_number"`
}

// Snapshot is a point-in-time copy of a tree plus the active position.
// Nodes are ordered by sequence number so a restore can replay them as
// plain inserts: every parent precedes its children.
type Snapshot struct {
	Nodes         []SnapshotNode `json:"nodes"`
	CurrentNodeID string         `json:"current_node_id,omitempty"`
}

// Snapshot captures the tree contents and the given current node id.
func (t *Tree) Snapshot(currentID string) Snapshot {
	snap := Snapshot{CurrentNodeID: currentID}
	for _, n := range t.Nodes() {
		snap.Nodes = append(snap.Nodes, SnapshotNode{
			ID:       n.ID,
			ParentID: n.ParentID,
			Type:     string(n.Type),
			Speaker:  n.Speaker,
			Content:  n.Content,
			Seq:      n.Seq,
		})
	}
	return snap
}

// Encode renders the snapshot as indented JSON with nodes in sequence order.
func (s Snapshot) Encode() ([]byte, error) {
	sort.SliceStable(s.Nodes, func(i, j int) bool { return s.Nodes[i].Seq < s.Nodes[j].Seq })
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.New(errors.CodeParseFailed, "encode snapshot", err)
	}
	return data, nil
}

// DecodeSnapshot parses snapshot JSON.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, errors.New(errors.CodeParseFailed, "decode snapshot", err)
	}
	return s, nil
}

// Restore builds a fresh tree by replaying the snapshot's inserts in
// sequence order. It returns the tree and the snapshot's current node
// id. A snapshot whose nodes violate the tree invariants fails with
// the same structural errors as live inserts.
func Restore(s Snapshot) (*Tree, string, error) {
	nodes := make([]SnapshotNode, len(s.Nodes))
	copy(nodes, s.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Seq < nodes[j].Seq })

	t := New()
	for _, sn := range nodes {
		if _, err := t.Add(sn.ID, sn.ParentID, NodeType(sn.Type), sn.Speaker, sn.Content); err != nil {
			return nil, "", err
		}
	}
	if s.CurrentNodeID != "" && !t.Has(s.CurrentNodeID) {
		return nil, "", errNotFound(s.CurrentNodeID)
	}
	return t, s.CurrentNodeID, nil
}
