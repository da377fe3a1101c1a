package wire

import (
	"bytes"
	"fmt"

	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// Style defines the visual appearance for widget rendering.
// Implementations control how node boxes, labels, and wires are drawn.
type Style interface {
	// Name returns the style identifier used in options and cache keys.
	Name() string
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the canvas background, if any.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderNode writes the SVG for a single node box.
	RenderNode(buf *bytes.Buffer, n Node)
	// RenderLabel writes the SVG for a node's label text.
	RenderLabel(buf *bytes.Buffer, n Node)
	// RenderWire writes the SVG for one connection path and its arrowhead.
	RenderWire(buf *bytes.Buffer, w Wire)
}

// Node contains all data needed to render a single attribute box.
type Node struct {
	ID    string
	Label string
	Role  mapping.Role
	Rect  geometry.Rect
	// Connected is true when the node participates in at least one
	// committed connection.
	Connected bool
}

// Wire contains the path data for one rendered connection.
type Wire struct {
	ID      string // connection ID, or "preview" for the drag preview
	Path    string // curve path between the anchors
	Arrow   string // closed arrowhead path, empty when arrows are disabled
	Preview bool   // live drag preview rather than a committed connection
}

// Style names.
const (
	StyleSimple    = "simple"
	StyleBlueprint = "blueprint"
)

// ValidStyles is the set of supported style names.
var ValidStyles = map[string]bool{
	StyleSimple:    true,
	StyleBlueprint: true,
}

// StyleByName returns the style implementation for a name.
func StyleByName(name string) (Style, bool) {
	switch name {
	case StyleSimple, "":
		return Simple{}, true
	case StyleBlueprint:
		return Blueprint{}, true
	}
	return nil, false
}

// =============================================================================
// Simple - plain boxes on a white canvas
// =============================================================================

// Simple renders plain grey boxes with dark wires.
type Simple struct{}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", width, height)
}

func (Simple) RenderNode(buf *bytes.Buffer, n Node) {
	stroke := "#9ca3af"
	if n.Connected {
		stroke = "#2563eb"
	}
	fmt.Fprintf(buf,
		`  <rect id="node-%s" class="node node-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="#f9fafb" stroke="%s" stroke-width="1.5"/>`+"\n",
		n.ID, n.Role, n.Rect.Left, n.Rect.Top, n.Rect.Width(), n.Rect.Height(), stroke)
}

func (Simple) RenderLabel(buf *bytes.Buffer, n Node) {
	anchor := "end"
	x := n.Rect.Right - 12
	if n.Role == mapping.RoleTarget {
		anchor = "start"
		x = n.Rect.Left + 12
	}
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="central" font-family="system-ui, sans-serif" font-size="14" fill="#111827">%s</text>`+"\n",
		x, n.Rect.CenterY(), anchor, escapeText(n.Label))
}

func (Simple) RenderWire(buf *bytes.Buffer, w Wire) {
	stroke := "#2563eb"
	dash := ""
	if w.Preview {
		stroke = "#9ca3af"
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(buf, `  <path id="wire-%s" class="wire" d="%s" fill="none" stroke="%s" stroke-width="2"%s/>`+"\n",
		w.ID, w.Path, stroke, dash)
	if w.Arrow != "" {
		fmt.Fprintf(buf, `  <path class="wire-arrow" d="%s" fill="%s"/>`+"\n", w.Arrow, stroke)
	}
}

// =============================================================================
// Blueprint - light-on-dark technical drawing look
// =============================================================================

// Blueprint renders white line work on a blueprint-blue canvas with a subtle
// grid pattern.
type Blueprint struct{}

func (Blueprint) Name() string { return StyleBlueprint }

func (Blueprint) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="blueprint-grid" width="20" height="20" patternUnits="userSpaceOnUse">
      <path d="M 20 0 L 0 0 0 20" fill="none" stroke="#2e4a7a" stroke-width="0.5"/>
    </pattern>
  </defs>
`)
}

func (Blueprint) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="#1d3461"/>`+"\n", width, height)
	fmt.Fprintf(buf, `  <rect width="%.1f" height="%.1f" fill="url(#blueprint-grid)"/>`+"\n", width, height)
}

func (Blueprint) RenderNode(buf *bytes.Buffer, n Node) {
	stroke := "#7e9bd1"
	if n.Connected {
		stroke = "#ffffff"
	}
	fmt.Fprintf(buf,
		`  <rect id="node-%s" class="node node-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		n.ID, n.Role, n.Rect.Left, n.Rect.Top, n.Rect.Width(), n.Rect.Height(), stroke)
}

func (Blueprint) RenderLabel(buf *bytes.Buffer, n Node) {
	anchor := "end"
	x := n.Rect.Right - 12
	if n.Role == mapping.RoleTarget {
		anchor = "start"
		x = n.Rect.Left + 12
	}
	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="central" font-family="ui-monospace, monospace" font-size="13" fill="#dbe4f3">%s</text>`+"\n",
		x, n.Rect.CenterY(), anchor, escapeText(n.Label))
}

func (Blueprint) RenderWire(buf *bytes.Buffer, w Wire) {
	stroke := "#ffffff"
	dash := ""
	if w.Preview {
		dash = ` stroke-dasharray="4 4"`
	}
	fmt.Fprintf(buf, `  <path id="wire-%s" class="wire" d="%s" fill="none" stroke="%s" stroke-width="1.5"%s/>`+"\n",
		w.ID, w.Path, stroke, dash)
	if w.Arrow != "" {
		fmt.Fprintf(buf, `  <path class="wire-arrow" d="%s" fill="%s"/>`+"\n", w.Arrow, stroke)
	}
}

// escapeText escapes the XML special characters that can appear in labels.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
