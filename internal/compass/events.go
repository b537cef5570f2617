// Package compass ties the conversation tree, layout, visibility and
// navigation together behind one engine. Collaborators subscribe to
// typed events instead of polling, and render through a small view
// contract that carries no tree internals.
package compass

// Events is a typed observer registry. Handlers run synchronously on
// the calling goroutine, in subscription order. The engine never holds
// internal state across an emit, so handlers may call back into it.
type Events struct {
	nodeClicked     []func(id string)
	positionChanged []func(id string)
	recenter        []func(id string)
	treeUpdated     []func()
	errors          []func(err error)
}

// OnNodeClicked registers a handler for node click notifications.
func (e *Events) OnNodeClicked(fn func(id string)) {
	e.nodeClicked = append(e.nodeClicked, fn)
}

// OnCurrentPositionChanged registers a handler fired whenever the
// current node changes.
func (e *Events) OnCurrentPositionChanged(fn func(id string)) {
	e.positionChanged = append(e.positionChanged, fn)
}

// OnRecenter registers a handler asking the renderer to center on a node.
func (e *Events) OnRecenter(fn func(id string)) {
	e.recenter = append(e.recenter, fn)
}

// OnTreeUpdated registers a handler fired after any structural or
// layout change.
func (e *Events) OnTreeUpdated(fn func()) {
	e.treeUpdated = append(e.treeUpdated, fn)
}

// OnError registers a handler for errors surfaced by engine operations
// that have no direct caller to return to.
func (e *Events) OnError(fn func(err error)) {
	e.errors = append(e.errors, fn)
}

func (e *Events) emitNodeClicked(id string) {
	for _, fn := range e.nodeClicked {
		fn(id)
	}
}

func (e *Events) emitPositionChanged(id string) {
	for _, fn := range e.positionChanged {
		fn(id)
	}
}

func (e *Events) emitRecenter(id string) {
	for _, fn := range e.recenter {
		fn(id)
	}
}

func (e *Events) emitTreeUpdated() {
	for _, fn := range e.treeUpdated {
		fn()
	}
}

func (e *Events) emitError(err error) {
	for _, fn := range e.errors {
		fn(err)
	}
}
