package session

import (
	"os"

	"compass/internal/errors"
	"compass/internal/tree"
)

// ExportJSON writes a snapshot to path as indented JSON.
func ExportJSON(path string, snap tree.Snapshot) error {
	data, err := snap.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New(errors.CodeSessionStore, "write snapshot file", err)
	}
	return nil
}

// ImportJSON reads a snapshot previously written by ExportJSON.
func ImportJSON(path string) (tree.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tree.Snapshot{}, errors.New(errors.CodeSessionStore, "read snapshot file", err)
	}
	return tree.DecodeSnapshot(data)
}
