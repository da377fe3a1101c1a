// Package dot exports mapping documents as Graphviz DOT and renders them via
// the embedded Graphviz engine.
//
// The DOT output is a left-to-right bipartite digraph: sources and targets
// each form a same-rank group, and every committed link becomes an edge.
// This is an interchange surface for external graph tooling; the widget's
// own SVG comes from [render/wire].
//
// [render/wire]: github.com/wiremaphq/wiremap/pkg/render/wire
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/wiremaphq/wiremap/pkg/document"
)

// ToDOT converts a document to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(doc *document.Document) string {
	var buf bytes.Buffer
	buf.WriteString("digraph wiremap {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=2.0;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	writeColumn(&buf, "sources", doc.Sources)
	writeColumn(&buf, "targets", doc.Targets)

	buf.WriteString("\n")
	for _, l := range doc.Links {
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.Source, l.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeColumn(buf *bytes.Buffer, name string, col document.Column) {
	fmt.Fprintf(buf, "  subgraph cluster_%s {\n", name)
	buf.WriteString("    style=invis;\n")
	buf.WriteString("    rank=same;\n")
	for _, a := range col.Attributes {
		fmt.Fprintf(buf, "    %q [label=%q];\n", a.ID, a.DisplayLabel())
	}
	buf.WriteString("  }\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG, nil)
}

func render(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's svg element to a zero-origin viewBox
// with explicit pixel dimensions, which embeds more predictably in HTML.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
