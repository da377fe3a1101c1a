// Package render provides diagram rendering for mapping documents.
//
// # Overview
//
// This package groups the renderers that transform a mapping document and
// its computed layout into visual outputs:
//
//   - Wire diagrams (in [wire] subpackage)
//   - Graphviz exports (in [dot] subpackage)
//
// # Wire Diagrams
//
// The [wire] subpackage renders the two-column connection view: source
// attributes on the left, targets on the right, committed connections drawn
// as curved wires with arrowheads, plus an optional live drag preview wire.
// Styles control the visual treatment:
//
//	svg := wire.RenderSVG(doc, l, wire.WithStyle(wire.Blueprint{}))
//
// # Graphviz Exports
//
// The [dot] subpackage exports documents as DOT source and renders it to
// SVG or PNG through the embedded Graphviz engine. This path is useful for
// embedding mappings in tooling that already consumes Graphviz output.
//
//	src := dot.ToDOT(doc)
//	png, err := dot.RenderPNG(src)
//
// [wire]: github.com/wiremaphq/wiremap/pkg/render/wire
// [dot]: github.com/wiremaphq/wiremap/pkg/render/dot
package render
