// Package wire renders a mapping document as a self-contained SVG: the two
// attribute columns as node boxes, committed connections as curved wires
// with arrowheads, and optionally the live drag preview.
//
// Rendering is pure: the document, layout, and options fully determine the
// output bytes. Connections whose endpoints have no computed rect are
// silently skipped, matching the "nothing to render yet" contract of the
// geometry layer.
package wire

import (
	"bytes"
	"fmt"

	"github.com/wiremaphq/wiremap/pkg/canvas"
	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/layout"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// DefaultArrowSize is the arrowhead length in user units.
const DefaultArrowSize = 8.0

// Option configures the SVG renderer.
type Option func(*renderer)

type renderer struct {
	style     Style
	curve     geometry.Curve
	radius    float64
	arrowSize float64

	preview        *previewState
	columnHeadings bool
}

type previewState struct {
	source  string
	pointer geometry.Point
}

// WithStyle selects the visual style. The default is Simple.
func WithStyle(s Style) Option { return func(r *renderer) { r.style = s } }

// WithCurve selects the wire curve kind. The default is the bezier curve.
func WithCurve(c geometry.Curve) Option { return func(r *renderer) { r.curve = c } }

// WithStepRadius sets the smooth-step corner radius.
func WithStepRadius(radius float64) Option { return func(r *renderer) { r.radius = radius } }

// WithArrowSize sets the arrowhead length; zero disables arrowheads.
func WithArrowSize(size float64) Option { return func(r *renderer) { r.arrowSize = size } }

// WithPreview draws the in-progress drag gesture from source to the pointer
// position, on top of the committed wires.
func WithPreview(source string, pointer geometry.Point) Option {
	return func(r *renderer) { r.preview = &previewState{source: source, pointer: pointer} }
}

// WithColumnHeadings draws the column labels above each column.
func WithColumnHeadings() Option { return func(r *renderer) { r.columnHeadings = true } }

// RenderSVG renders the document with the given layout into SVG bytes.
func RenderSVG(doc *document.Document, l layout.Layout, opts ...Option) []byte {
	r := renderer{
		style:     Simple{},
		curve:     geometry.CurveBezier,
		radius:    geometry.DefaultStepRadius,
		arrowSize: DefaultArrowSize,
	}
	for _, opt := range opts {
		opt(&r)
	}

	cv := canvas.New(canvas.WithCurve(r.curve), canvas.WithStepRadius(r.radius))
	l.Apply(cv)

	store := doc.Store()
	nodes := buildNodes(doc, l, store)
	wires := r.buildWires(store, cv)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, l.Width, l.Height)

	if r.columnHeadings {
		renderHeadings(&buf, doc, l)
	}

	for _, n := range nodes {
		r.style.RenderNode(&buf, n)
	}
	for _, w := range wires {
		r.style.RenderWire(&buf, w)
	}
	for _, n := range nodes {
		r.style.RenderLabel(&buf, n)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func buildNodes(doc *document.Document, l layout.Layout, store *mapping.Store) []Node {
	nodes := make([]Node, 0, len(doc.Sources.Attributes)+len(doc.Targets.Attributes))

	appendColumn := func(col document.Column, role mapping.Role) {
		for _, a := range col.Attributes {
			rect, ok := l.Rect(a.ID)
			if !ok {
				continue
			}
			nodes = append(nodes, Node{
				ID:        a.ID,
				Label:     a.DisplayLabel(),
				Role:      role,
				Rect:      rect,
				Connected: store.HasConnection(a.ID, role),
			})
		}
	}

	appendColumn(doc.Sources, mapping.RoleSource)
	appendColumn(doc.Targets, mapping.RoleTarget)
	return nodes
}

func (r *renderer) buildWires(store *mapping.Store, cv *canvas.Canvas) []Wire {
	conns := store.Connections()
	wires := make([]Wire, 0, len(conns)+1)

	for _, c := range conns {
		path, ok := cv.ConnectionPath(c.Source, c.Target)
		if !ok {
			continue
		}
		w := Wire{ID: c.ID, Path: path}
		if r.arrowSize > 0 {
			if _, to, ok := cv.ConnectionPoints(c.Source, c.Target); ok {
				w.Arrow = geometry.ArrowPath(to.X, to.Y, r.arrowSize, 0)
			}
		}
		wires = append(wires, w)
	}

	if r.preview != nil {
		if path, ok := cv.PreviewPath(r.preview.source, r.preview.pointer); ok {
			wires = append(wires, Wire{ID: "preview", Path: path, Preview: true})
		}
	}

	return wires
}

func renderHeadings(buf *bytes.Buffer, doc *document.Document, l layout.Layout) {
	heading := func(col document.Column) {
		if col.Label == "" || len(col.Attributes) == 0 {
			return
		}
		rect, ok := l.Rect(col.Attributes[0].ID)
		if !ok {
			return
		}
		fmt.Fprintf(buf,
			`  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="system-ui, sans-serif" font-size="12" font-weight="bold" fill="#6b7280">%s</text>`+"\n",
			rect.CenterX(), rect.Top-8, escapeText(col.Label))
	}
	heading(doc.Sources)
	heading(doc.Targets)
}
