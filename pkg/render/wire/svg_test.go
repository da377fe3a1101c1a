package wire

import (
	"strings"
	"testing"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/layout"
)

func testFixture() (*document.Document, layout.Layout) {
	d := document.New("render test")
	d.Sources = document.Column{
		Label:      "Input",
		Attributes: []document.Attribute{{ID: "sku"}, {ID: "price", Label: "Unit price"}},
	}
	d.Targets = document.Column{
		Label:      "Output",
		Attributes: []document.Attribute{{ID: "code"}, {ID: "amount"}},
	}
	d.Links = []document.Link{{Source: "sku", Target: "code"}}
	return d, layout.Compute(d, layout.Options{})
}

func TestRenderSVG_Basic(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("missing svg root element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("missing closing tag")
	}

	for _, id := range []string{"node-sku", "node-price", "node-code", "node-amount"} {
		if !strings.Contains(svg, id) {
			t.Errorf("output missing %s", id)
		}
	}
	if !strings.Contains(svg, `id="wire-sku->code"`) {
		t.Error("output missing committed wire")
	}
	if !strings.Contains(svg, "wire-arrow") {
		t.Error("output missing arrowhead")
	}
	if !strings.Contains(svg, "Unit price") {
		t.Error("output missing display label")
	}
	if strings.Contains(svg, "preview") {
		t.Error("no preview requested, none should render")
	}
}

func TestRenderSVG_WirePathMatchesGeometry(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l))

	src := l.Rects["sku"]
	dst := l.Rects["code"]
	want := geometry.BezierPath(src.Right, src.CenterY(), dst.Left, dst.CenterY())
	if !strings.Contains(svg, want) {
		t.Errorf("output missing bezier path %q", want)
	}
}

func TestRenderSVG_SmoothStepCurve(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l, WithCurve(geometry.CurveSmoothStep), WithStepRadius(6)))

	src := l.Rects["sku"]
	dst := l.Rects["code"]
	want := geometry.SmoothStepPath(src.Right, src.CenterY(), dst.Left, dst.CenterY(), 6)
	if !strings.Contains(svg, want) {
		t.Errorf("output missing smooth-step path %q", want)
	}
}

func TestRenderSVG_Preview(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l, WithPreview("price", geometry.Point{X: 300, Y: 150})))

	if !strings.Contains(svg, `id="wire-preview"`) {
		t.Error("output missing preview wire")
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("preview wire should be dashed")
	}
}

func TestRenderSVG_PreviewFromUnknownNodeSkipped(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l, WithPreview("ghost", geometry.Point{X: 10, Y: 10})))

	if strings.Contains(svg, "preview") {
		t.Error("preview from an unregistered node should render nothing")
	}
}

func TestRenderSVG_SkipsUnresolvableConnections(t *testing.T) {
	doc, l := testFixture()
	// Drop the target rect to simulate an unmounted node.
	delete(l.Rects, "code")

	svg := string(RenderSVG(doc, l))
	if strings.Contains(svg, "wire-sku-&gt;code") || strings.Contains(svg, `id="wire-sku->code"`) {
		t.Error("connection without geometry should be skipped")
	}
}

func TestRenderSVG_Blueprint(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l, WithStyle(Blueprint{}), WithColumnHeadings()))

	if !strings.Contains(svg, "blueprint-grid") {
		t.Error("blueprint style should emit its grid pattern")
	}
	if !strings.Contains(svg, "Input") || !strings.Contains(svg, "Output") {
		t.Error("column headings missing")
	}
}

func TestRenderSVG_NoArrows(t *testing.T) {
	doc, l := testFixture()
	svg := string(RenderSVG(doc, l, WithArrowSize(0)))

	if strings.Contains(svg, "wire-arrow") {
		t.Error("arrowheads should be disabled at size 0")
	}
}

func TestStyleByName(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"simple", StyleSimple, true},
		{"", StyleSimple, true},
		{"blueprint", StyleBlueprint, true},
		{"crayon", "", false},
	}

	for _, tt := range tests {
		s, ok := StyleByName(tt.name)
		if ok != tt.ok {
			t.Errorf("StyleByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && s.Name() != tt.want {
			t.Errorf("StyleByName(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
		}
	}
}

func TestEscapeText(t *testing.T) {
	if got := escapeText("a < b & c > d"); got != "a &lt; b &amp; c &gt; d" {
		t.Errorf("escapeText = %q", got)
	}
}
