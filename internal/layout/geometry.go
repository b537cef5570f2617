// Package layout assigns 2D positions to conversation tree nodes.
// A layout pass is a pure function of the tree and the chosen strategy;
// it never mutates the tree and never fails, degenerating to a no-op
// when the tree has no unique root.
package layout

import "math"

// Node box dimensions, shared by every strategy and by the projectors
// that turn positions into rectangles.
const (
	NodeWidth  = 200.0
	NodeHeight = 80.0
)

// Point is a position in main canvas coordinates. Node positions refer
// to the top-left corner of the node's box.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NodeRect returns the box occupied by a node whose top-left is at p.
func NodeRect(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: NodeWidth, H: NodeHeight}
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// BottomCenter returns the midpoint of the rectangle's bottom edge.
func (r Rect) BottomCenter() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H}
}

// TopCenter returns the midpoint of the rectangle's top edge.
func (r Rect) TopCenter() Point {
	return Point{X: r.X + r.W/2, Y: r.Y}
}

// Pad returns the rectangle grown by m on every side.
func (r Rect) Pad(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.X+r.W, other.X+other.W)
	maxY := math.Max(r.Y+r.H, other.Y+other.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
