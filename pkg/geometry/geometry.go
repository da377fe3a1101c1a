// Package geometry provides the pure coordinate and path math for wiremap.
//
// The package has two halves: rectangle/anchor arithmetic (Point, Rect) and
// SVG path string generation (BezierPath, SmoothStepPath, ArrowPath). All
// functions are stateless and deterministic; node-to-coordinate resolution
// happens in the calling layer.
package geometry

import "strconv"

// Point is a position in container-relative user units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned bounding rectangle in container-relative
// coordinates. All coordinates are in user units (typically pixels in SVG).
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Center returns the midpoint of the rect.
func (r Rect) Center() Point { return Point{r.CenterX(), r.CenterY()} }

// LeftCenter returns the anchor on the middle of the left edge.
func (r Rect) LeftCenter() Point { return Point{r.Left, r.CenterY()} }

// RightCenter returns the anchor on the middle of the right edge.
func (r Rect) RightCenter() Point { return Point{r.Right, r.CenterY()} }

// TopCenter returns the anchor on the middle of the top edge.
func (r Rect) TopCenter() Point { return Point{r.CenterX(), r.Top} }

// BottomCenter returns the anchor on the middle of the bottom edge.
func (r Rect) BottomCenter() Point { return Point{r.CenterX(), r.Bottom} }

// Contains reports whether p lies inside the rect (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// fmtNum renders a coordinate with the minimal decimal representation:
// 50 renders as "50", 12.5 stays "12.5". SVG path consumers compare these
// strings, so trailing zeros matter.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
