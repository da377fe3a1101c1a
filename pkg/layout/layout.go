// Package layout computes container-relative rectangles for a mapping
// document's attributes.
//
// This is the Go-native replacement for DOM bounding-box queries: sources
// form the left column, targets the right column, stacked top to bottom in
// declaration order. The computation is closed-form and deterministic, so
// the same document and options always produce the same geometry.
package layout

import (
	"github.com/wiremaphq/wiremap/pkg/canvas"
	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/geometry"
)

// Default dimensions in user units (pixels in the SVG output).
const (
	DefaultNodeWidth  = 160.0
	DefaultNodeHeight = 40.0
	DefaultColumnGap  = 220.0
	DefaultRowGap     = 16.0
	DefaultPadding    = 24.0
)

// Options controls node dimensions and spacing.
type Options struct {
	NodeWidth  float64 `json:"node_width,omitempty"`
	NodeHeight float64 `json:"node_height,omitempty"`
	ColumnGap  float64 `json:"column_gap,omitempty"`  // horizontal space between the columns
	RowGap     float64 `json:"row_gap,omitempty"`     // vertical space between nodes
	Padding    float64 `json:"padding,omitempty"`     // space around the whole canvas
}

// SetDefaults fills zero fields with the package defaults.
func (o *Options) SetDefaults() {
	if o.NodeWidth == 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodeHeight == 0 {
		o.NodeHeight = DefaultNodeHeight
	}
	if o.ColumnGap == 0 {
		o.ColumnGap = DefaultColumnGap
	}
	if o.RowGap == 0 {
		o.RowGap = DefaultRowGap
	}
	if o.Padding == 0 {
		o.Padding = DefaultPadding
	}
}

// Layout is the computed geometry for a document: one rect per attribute ID
// plus the overall canvas size.
type Layout struct {
	Width  float64                  `json:"width"`
	Height float64                  `json:"height"`
	Rects  map[string]geometry.Rect `json:"rects"`
}

// Rect returns the rectangle for an attribute ID.
func (l Layout) Rect(id string) (geometry.Rect, bool) {
	r, ok := l.Rects[id]
	return r, ok
}

// Apply registers every computed rect on the canvas, replacing any previous
// registrations.
func (l Layout) Apply(cv *canvas.Canvas) {
	cv.Reset()
	for id, r := range l.Rects {
		cv.SetNodeRect(id, r)
	}
}

// Compute lays out the document's two columns. Sources occupy the left
// column, targets the right; rows stack in declaration order.
func Compute(doc *document.Document, opts Options) Layout {
	opts.SetDefaults()

	l := Layout{
		Rects: make(map[string]geometry.Rect, len(doc.Sources.Attributes)+len(doc.Targets.Attributes)),
	}

	leftX := opts.Padding
	rightX := opts.Padding + opts.NodeWidth + opts.ColumnGap

	placeColumn(l.Rects, doc.Sources.Attributes, leftX, opts)
	placeColumn(l.Rects, doc.Targets.Attributes, rightX, opts)

	rows := len(doc.Sources.Attributes)
	if n := len(doc.Targets.Attributes); n > rows {
		rows = n
	}

	l.Width = rightX + opts.NodeWidth + opts.Padding
	l.Height = 2 * opts.Padding
	if rows > 0 {
		l.Height += float64(rows)*opts.NodeHeight + float64(rows-1)*opts.RowGap
	}
	return l
}

func placeColumn(rects map[string]geometry.Rect, attrs []document.Attribute, x float64, opts Options) {
	y := opts.Padding
	for _, a := range attrs {
		rects[a.ID] = geometry.Rect{
			Left:   x,
			Right:  x + opts.NodeWidth,
			Top:    y,
			Bottom: y + opts.NodeHeight,
		}
		y += opts.NodeHeight + opts.RowGap
	}
}
