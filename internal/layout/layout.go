package layout

import (
	"fmt"
	"math/rand"
	"strings"

	"compass/internal/errors"
	"compass/internal/tree"
)

// Strategy names a layout algorithm.
type Strategy string

const (
	Hierarchical Strategy = "hierarchical"
	Radial       Strategy = "radial"
)

// Spacing constants for the hierarchical strategy.
const (
	nodeSpacingX  = 180.0
	levelSpacingY = 120.0
)

// boundsMargin pads the computed bounding box on every side.
const boundsMargin = 50.0

// ParseStrategy maps a config or flag value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case Hierarchical:
		return Hierarchical, nil
	case Radial:
		return Radial, nil
	}
	return "", errors.New(errors.CodeParseFailed, fmt.Sprintf("unknown layout strategy %q", s), nil)
}

// Result is the output of one layout pass: a position for every node
// plus the padded bounding box of the whole arrangement.
type Result struct {
	Positions map[string]Point
	Bounds    Rect
}

// Engine runs layout passes. It owns a deterministic random source
// used only to break exact position ties during force refinement, so
// repeated passes over the same tree produce the same positions.
type Engine struct {
	strategy Strategy
	refine   bool
	rng      *rand.Rand
}

// NewEngine returns an engine using the given strategy, with the
// force-directed refinement pass enabled or not.
func NewEngine(strategy Strategy, refine bool) *Engine {
	return &Engine{
		strategy: strategy,
		refine:   refine,
		rng:      rand.New(rand.NewSource(1)),
	}
}

// Strategy reports the active layout strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// SetStrategy switches the layout algorithm for subsequent passes.
func (e *Engine) SetStrategy(s Strategy) {
	e.strategy = s
}

// Refine reports whether force refinement is enabled.
func (e *Engine) Refine() bool {
	return e.refine
}

// SetRefine toggles the force-directed refinement pass.
func (e *Engine) SetRefine(on bool) {
	e.refine = on
}

// Apply lays out every node in the tree. The second return value is
// false when the tree is empty or has no unique root; in that case the
// result is empty and nothing was computed. Apply never mutates the
// tree, so two consecutive passes with no intervening mutation yield
// identical positions.
func (e *Engine) Apply(t *tree.Tree) (Result, bool) {
	root, ok := uniqueRoot(t)
	if !ok {
		return Result{}, false
	}

	// Reseed per pass so refinement tie-breaking is repeatable.
	e.rng = rand.New(rand.NewSource(1))

	var pos map[string]Point
	switch e.strategy {
	case Radial:
		pos = radialPositions(t, root)
	default:
		pos = hierarchicalPositions(t, root)
	}
	if e.refine {
		refinePositions(pos, e.rng)
	}
	return Result{Positions: pos, Bounds: boundsOf(pos)}, true
}

func uniqueRoot(t *tree.Tree) (*tree.Node, bool) {
	var root *tree.Node
	for _, n := range t.Nodes() {
		if !n.IsRoot() {
			continue
		}
		if root != nil {
			return nil, false
		}
		root = n
	}
	if root == nil {
		return nil, false
	}
	return root, true
}

func boundsOf(pos map[string]Point) Rect {
	first := true
	var b Rect
	for _, p := range pos {
		r := NodeRect(p)
		if first {
			b = r
			first = false
			continue
		}
		b = b.Union(r)
	}
	return b.Pad(boundsMargin)
}
