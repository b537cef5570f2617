package tree

import (
	"fmt"

	"compass/internal/errors"
)

func errDuplicateID(id string) error {
	return errors.New(errors.CodeDuplicateID, fmt.Sprintf("node %q already exists", id), nil)
}

func errDanglingParent(id, parentID string) error {
	return errors.New(errors.CodeDanglingParent, fmt.Sprintf("node %q references missing parent %q", id, parentID), nil)
}

func errSelfParent(id string) error {
	return errors.New(errors.CodeSelfParent, fmt.Sprintf("node %q cannot be its own parent", id), nil)
}

func errNotFound(id string) error {
	return errors.New(errors.CodeNotFound, fmt.Sprintf("node %q not found", id), nil)
}

func errEmptyID() error {
	return errors.New(errors.CodeParseFailed, "node id must not be empty", nil)
}
