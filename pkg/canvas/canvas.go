// Package canvas tracks node bounding rectangles and resolves connection
// endpoints to concrete coordinates.
//
// A Canvas is the Go-native stand-in for DOM geometry queries: the layout
// engine (or a host application) registers each node's container-relative
// rectangle, and rendering consumers ask for anchor points and path strings.
// Registrations are transient; nodes may disappear between reads, and every
// lookup returns ok=false rather than an error when geometry is missing.
// "Nothing to render yet" is not a failure.
package canvas

import (
	"sync"

	"github.com/wiremaphq/wiremap/pkg/geometry"
)

// Canvas is a registry of node rectangles for one widget instance. The zero
// value is not usable; create instances with New.
type Canvas struct {
	mu    sync.RWMutex
	rects map[string]geometry.Rect

	curve  geometry.Curve
	radius float64
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithCurve selects the curve kind used by ConnectionPath and PreviewPath.
// The default is the bezier curve.
func WithCurve(c geometry.Curve) Option {
	return func(cv *Canvas) { cv.curve = c }
}

// WithStepRadius sets the corner radius for the smooth-step curve.
func WithStepRadius(r float64) Option {
	return func(cv *Canvas) { cv.radius = r }
}

// New creates an empty canvas.
func New(opts ...Option) *Canvas {
	cv := &Canvas{
		rects:  make(map[string]geometry.Rect),
		curve:  geometry.CurveBezier,
		radius: geometry.DefaultStepRadius,
	}
	for _, opt := range opts {
		opt(cv)
	}
	return cv
}

// SetNodeRect registers or updates the bounding rectangle for a node.
func (cv *Canvas) SetNodeRect(id string, r geometry.Rect) {
	cv.mu.Lock()
	cv.rects[id] = r
	cv.mu.Unlock()
}

// RemoveNode drops a node's registration. Removing an unknown node is a
// no-op.
func (cv *Canvas) RemoveNode(id string) {
	cv.mu.Lock()
	delete(cv.rects, id)
	cv.mu.Unlock()
}

// NodeRect returns the registered rectangle for a node. ok is false when the
// node is not (or no longer) registered.
func (cv *Canvas) NodeRect(id string) (geometry.Rect, bool) {
	cv.mu.RLock()
	defer cv.mu.RUnlock()
	r, ok := cv.rects[id]
	return r, ok
}

// Reset drops every registration, e.g. before re-applying a fresh layout.
func (cv *Canvas) Reset() {
	cv.mu.Lock()
	cv.rects = make(map[string]geometry.Rect)
	cv.mu.Unlock()
}

// ConnectionPoints resolves the anchors for a committed connection: the
// right-center of the source rect and the left-center of the target rect.
// ok is false when either node is unregistered.
func (cv *Canvas) ConnectionPoints(source, target string) (from, to geometry.Point, ok bool) {
	cv.mu.RLock()
	defer cv.mu.RUnlock()

	src, okS := cv.rects[source]
	dst, okT := cv.rects[target]
	if !okS || !okT {
		return geometry.Point{}, geometry.Point{}, false
	}
	return src.RightCenter(), dst.LeftCenter(), true
}

// PreviewPoints resolves the anchors for a live drag preview: the
// right-center of the drag-origin rect and the pointer position as-is.
// ok is false when the origin node is unregistered.
func (cv *Canvas) PreviewPoints(source string, pointer geometry.Point) (from, to geometry.Point, ok bool) {
	cv.mu.RLock()
	defer cv.mu.RUnlock()

	src, okS := cv.rects[source]
	if !okS {
		return geometry.Point{}, geometry.Point{}, false
	}
	return src.RightCenter(), pointer, true
}

// ConnectionPath returns the SVG path string for a committed connection
// using the configured curve. ok is false when anchors are unavailable.
func (cv *Canvas) ConnectionPath(source, target string) (string, bool) {
	from, to, ok := cv.ConnectionPoints(source, target)
	if !ok {
		return "", false
	}
	return geometry.Path(cv.curve, from, to, cv.radius), true
}

// PreviewPath returns the SVG path string for a live drag preview from the
// origin node to the pointer. ok is false when the origin is unavailable.
func (cv *Canvas) PreviewPath(source string, pointer geometry.Point) (string, bool) {
	from, to, ok := cv.PreviewPoints(source, pointer)
	if !ok {
		return "", false
	}
	return geometry.Path(cv.curve, from, to, cv.radius), true
}
