package session

import (
	"context"
	"path/filepath"
	"testing"

	"compass/internal/errors"
	"compass/internal/tree"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleSnapshot() tree.Snapshot {
	return tree.Snapshot{
		Nodes: []tree.SnapshotNode{
			{ID: "root", Type: "statement", Speaker: "alice", Content: "kickoff", Seq: 1},
			{ID: "q1", ParentID: "root", Type: "question", Speaker: "bob", Content: "why now", Seq: 2},
			{ID: "d1", ParentID: "q1", Type: "decision", Speaker: "alice", Content: "ship in May", Seq: 3},
		},
		CurrentNodeID: "d1",
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "standup", sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx, "standup")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := sampleSnapshot()
	if got.CurrentNodeID != want.CurrentNodeID {
		t.Errorf("current = %q, want %q", got.CurrentNodeID, want.CurrentNodeID)
	}
	if len(got.Nodes) != len(want.Nodes) {
		t.Fatalf("loaded %d nodes, want %d", len(got.Nodes), len(want.Nodes))
	}
	for i, n := range got.Nodes {
		if n != want.Nodes[i] {
			t.Errorf("node %d = %+v, want %+v", i, n, want.Nodes[i])
		}
	}

	// The loaded snapshot must replay into an identical tree.
	restored, currentID, err := tree.Restore(got)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Len() != 3 || currentID != "d1" {
		t.Errorf("restore produced %d nodes, current %q", restored.Len(), currentID)
	}
}

func TestSaveOverwritesSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "standup", sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	smaller := tree.Snapshot{
		Nodes:         []tree.SnapshotNode{{ID: "only", Type: "statement", Seq: 1}},
		CurrentNodeID: "only",
	}
	if err := s.Save(ctx, "standup", smaller); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := s.Load(ctx, "standup")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "only" {
		t.Errorf("loaded %+v, want the overwritten single node", got.Nodes)
	}
}

func TestLoadMissingSession(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Load(context.Background(), "nope"); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("Load(nope) error = %v, want not found", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "standup", sampleSnapshot()); err != nil {
		t.Fatalf("Save standup: %v", err)
	}
	if err := s.Save(ctx, "retro", tree.Snapshot{}); err != nil {
		t.Fatalf("Save retro: %v", err)
	}

	infos, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("List = %d sessions, want 2", len(infos))
	}
	counts := make(map[string]int)
	for _, info := range infos {
		counts[info.Name] = info.NodeCount
	}
	if counts["standup"] != 3 || counts["retro"] != 0 {
		t.Errorf("node counts = %v", counts)
	}

	if err := s.Delete(ctx, "standup"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Load(ctx, "standup"); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("Load after delete = %v, want not found", err)
	}
	if err := s.Delete(ctx, "standup"); !errors.IsCode(err, errors.CodeNotFound) {
		t.Errorf("second Delete = %v, want not found", err)
	}
}

func TestSaveEmptyNameRejected(t *testing.T) {
	s := openTestStore(t)
	if err := s.Save(context.Background(), "", sampleSnapshot()); !errors.IsCode(err, errors.CodeSessionStore) {
		t.Errorf("Save with empty name = %v, want session store error", err)
	}
}

func TestJSONExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meeting.json")
	if err := ExportJSON(path, sampleSnapshot()); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got.CurrentNodeID != "d1" || len(got.Nodes) != 3 {
		t.Errorf("imported %+v", got)
	}
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON on missing file succeeded")
	}
}
