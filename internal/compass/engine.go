package compass

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"compass/internal/debug"
	"compass/internal/errors"
	"compass/internal/layout"
	"compass/internal/tree"
)

// Engine owns one conversation tree and the derived state around it:
// layout positions, visibility, the current node, highlights and
// edges. It is not safe for concurrent use; every operation runs to
// completion on the caller's goroutine.
//
// Handlers registered on Events may call back into the engine, but a
// mutation made from inside a handler triggers a fresh pass rather
// than joining the one that fired it.
type Engine struct {
	tree   *tree.Tree
	layout *layout.Engine
	events Events

	currentID string
	highlight highlightState

	result layout.Result
	edges  []Edge

	newID func() string
}

// New returns an engine with an empty tree.
func New(strategy layout.Strategy, forceRefine bool) *Engine {
	return &Engine{
		tree:      tree.New(),
		layout:    layout.NewEngine(strategy, forceRefine),
		highlight: newHighlightState(),
		newID:     uuid.NewString,
	}
}

// Events exposes the observer registry for collaborators.
func (e *Engine) Events() *Events {
	return &e.events
}

// CurrentID returns the current node id, or "" when unset.
func (e *Engine) CurrentID() string {
	return e.currentID
}

// Len reports the number of nodes in the tree.
func (e *Engine) Len() int {
	return e.tree.Len()
}

// Strategy reports the active layout strategy.
func (e *Engine) Strategy() layout.Strategy {
	return e.layout.Strategy()
}

// ForceRefine reports whether the overlap-reduction pass is enabled.
func (e *Engine) ForceRefine() bool {
	return e.layout.Refine()
}

// AddUtterance inserts a finalized utterance. On an empty tree the
// utterance becomes the root. Otherwise an empty parentID attaches it
// under the current node, falling back to the root when no current
// node is set. The new node becomes the current position.
func (e *Engine) AddUtterance(parentID, speaker, content string, typ tree.NodeType) (string, error) {
	if e.tree.Len() > 0 && parentID == "" {
		parentID = e.currentID
		if parentID == "" {
			parentID = e.tree.Root().ID
		}
	}

	id := e.newID()
	if _, err := e.tree.Add(id, parentID, typ, speaker, content); err != nil {
		return "", err
	}
	debug.Logf("compass: added %s node %s under %q", typ, id, parentID)

	e.moveCurrent(id)
	e.refresh()
	e.events.emitTreeUpdated()
	e.events.emitPositionChanged(id)
	return id, nil
}

// AddSuggestion attaches a suggested branch under parentID (or the
// current node when empty). Suggestions never move the current
// position; they are candidate directions, not spoken utterances.
func (e *Engine) AddSuggestion(parentID, content string) (string, error) {
	if parentID == "" {
		parentID = e.currentID
	}
	if parentID == "" {
		return "", errors.New(errors.CodeNotFound, "no node to attach suggestion to", nil)
	}

	id := e.newID()
	if _, err := e.tree.Add(id, parentID, tree.TypeSuggested, "", content); err != nil {
		return "", err
	}
	debug.Logf("compass: added suggestion %s under %s", id, parentID)

	// Badges renumber because the current node gained a child.
	e.highlight = computeHighlights(e.tree, e.currentID)
	e.refresh()
	e.events.emitTreeUpdated()
	return id, nil
}

// ApplyLayout switches the layout strategy and recomputes positions.
func (e *Engine) ApplyLayout(strategy layout.Strategy) {
	e.layout.SetStrategy(strategy)
	e.refresh()
	e.events.emitTreeUpdated()
}

// SetForceRefine toggles the overlap-reduction pass and re-lays out.
func (e *Engine) SetForceRefine(on bool) {
	e.layout.SetRefine(on)
	e.refresh()
	e.events.emitTreeUpdated()
}

// SetCurrent moves the current position to id. Unknown ids leave all
// state unchanged. Ancestors of the new current node are auto-expanded
// so the node is visible, the path from the root gains gradient
// highlights, and the node's children get navigation badges 1..N.
func (e *Engine) SetCurrent(id string) {
	if !e.tree.Has(id) {
		debug.Logf("compass: set current ignored unknown node %q", id)
		return
	}
	e.moveCurrent(id)
	e.refresh()
	e.events.emitPositionChanged(id)
	e.events.emitTreeUpdated()
}

// Focus moves the current position to id and asks the renderer to
// center on it. Focus has no return value, so an unknown id is
// reported through the error event instead.
func (e *Engine) Focus(id string) {
	if !e.tree.Has(id) {
		e.events.emitError(errNotFound(id))
		return
	}
	e.SetCurrent(id)
	e.events.emitRecenter(id)
}

// NodeClicked reports a click on a node: collaborators are notified,
// then the clicked node becomes current. A click on a node that no
// longer exists surfaces through the error event.
func (e *Engine) NodeClicked(id string) {
	if !e.tree.Has(id) {
		e.events.emitError(errNotFound(id))
		return
	}
	e.events.emitNodeClicked(id)
	e.SetCurrent(id)
}

func errNotFound(id string) error {
	return errors.New(errors.CodeNotFound, fmt.Sprintf("node %q not found", id), nil)
}

// ResolveNumber returns the n-th (1-based) child of the current node.
func (e *Engine) ResolveNumber(n int) (string, error) {
	if e.currentID == "" {
		return "", errors.New(errors.CodeNotFound, "no current node", nil)
	}
	kids := e.tree.Children(e.currentID)
	if n < 1 || n > len(kids) {
		return "", errors.New(errors.CodeNotFound,
			fmt.Sprintf("current node has no child %d", n), nil)
	}
	return kids[n-1].ID, nil
}

// keywordTypes maps spoken keywords to node types for keyword jumps.
var keywordTypes = map[string]tree.NodeType{
	"question":   tree.TypeQuestion,
	"decision":   tree.TypeDecision,
	"objection":  tree.TypeObjection,
	"statement":  tree.TypeStatement,
	"suggestion": tree.TypeSuggested,
}

// ResolveKeyword returns the first node in insertion order whose type
// matches the keyword or whose content contains it case-insensitively.
func (e *Engine) ResolveKeyword(word string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(word))
	if needle == "" {
		return "", errors.New(errors.CodeNotFound, "empty keyword", nil)
	}
	wantType, hasType := keywordTypes[needle]
	for _, n := range e.tree.Nodes() {
		if hasType && n.Type == wantType {
			return n.ID, nil
		}
		if strings.Contains(strings.ToLower(n.Content), needle) {
			return n.ID, nil
		}
	}
	return "", errors.New(errors.CodeNotFound,
		fmt.Sprintf("no node matches keyword %q", word), nil)
}

// Collapse hides the subtree below id.
func (e *Engine) Collapse(id string) {
	collapseNode(e.tree, id)
	e.refresh()
	e.events.emitTreeUpdated()
}

// Expand reveals the children of id, stopping at collapsed descendants.
func (e *Engine) Expand(id string) {
	expandNode(e.tree, id)
	e.refresh()
	e.events.emitTreeUpdated()
}

// ShowBranch hides everything except id and its descendants down to
// levels hops.
func (e *Engine) ShowBranch(id string, levels int) {
	showOnlyBranch(e.tree, id, levels)
	e.refresh()
	e.events.emitTreeUpdated()
}

// Clear discards the whole conversation.
func (e *Engine) Clear() {
	e.tree.Clear()
	e.currentID = ""
	e.highlight = newHighlightState()
	e.refresh()
	e.events.emitTreeUpdated()
}

// moveCurrent updates the position and its derived overlay without
// triggering a layout pass or events.
func (e *Engine) moveCurrent(id string) {
	e.currentID = id
	expandAncestors(e.tree, id)
	e.highlight = computeHighlights(e.tree, id)
}

// refresh recomputes positions and edges. A degenerate tree keeps the
// previous layout untouched; an empty tree clears it.
func (e *Engine) refresh() {
	res, ok := e.layout.Apply(e.tree)
	if ok {
		e.result = res
	} else if e.tree.Len() == 0 {
		e.result = layout.Result{}
	}
	e.edges = buildEdges(e.tree, e.result.Positions, e.highlight)
}
