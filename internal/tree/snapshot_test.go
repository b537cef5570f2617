package tree

import (
	"testing"

	"compass/internal/errors"
)

func TestSnapshotRoundTrip(t *testing.T) {
	tr := buildSample(t)
	data, err := tr.Snapshot("a1").Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	restored, currentID, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if currentID != "a1" {
		t.Errorf("current id = %q, want a1", currentID)
	}
	if restored.Len() != tr.Len() {
		t.Fatalf("restored %d nodes, want %d", restored.Len(), tr.Len())
	}
	for _, orig := range tr.Nodes() {
		got, err := restored.Get(orig.ID)
		if err != nil {
			t.Fatalf("restored missing %s: %v", orig.ID, err)
		}
		if got.ParentID != orig.ParentID || got.Seq != orig.Seq ||
			got.Type != orig.Type || got.Speaker != orig.Speaker || got.Content != orig.Content {
			t.Errorf("restored %s = %+v, want %+v", orig.ID, got, orig)
		}
	}
}

func TestRestoreSortsBySequence(t *testing.T) {
	// Children listed before their parent must still restore, because
	// replay follows sequence numbers, not slice order.
	snap := Snapshot{
		Nodes: []SnapshotNode{
			{ID: "child", ParentID: "root", Type: "question", Seq: 2},
			{ID: "root", Type: "statement", Seq: 1},
		},
	}
	tr, _, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if tr.Len() != 2 {
		t.Fatalf("restored %d nodes, want 2", tr.Len())
	}
}

func TestRestoreRejectsBrokenSnapshot(t *testing.T) {
	cases := []struct {
		name string
		snap Snapshot
		code errors.Code
	}{
		{
			"dangling parent",
			Snapshot{Nodes: []SnapshotNode{{ID: "a", ParentID: "ghost", Seq: 1}}},
			errors.CodeDanglingParent,
		},
		{
			"duplicate id",
			Snapshot{Nodes: []SnapshotNode{{ID: "a", Seq: 1}, {ID: "a", Seq: 2}}},
			errors.CodeDuplicateID,
		},
		{
			"unknown current node",
			Snapshot{Nodes: []SnapshotNode{{ID: "a", Seq: 1}}, CurrentNodeID: "ghost"},
			errors.CodeNotFound,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Restore(tc.snap); !errors.IsCode(err, tc.code) {
				t.Errorf("Restore error = %v, want code %v", err, tc.code)
			}
		})
	}
}

func TestDecodeSnapshotBadJSON(t *testing.T) {
	if _, err := DecodeSnapshot([]byte("{not json")); !errors.IsCode(err, errors.CodeParseFailed) {
		t.Errorf("DecodeSnapshot error = %v, want parse failure", err)
	}
}
