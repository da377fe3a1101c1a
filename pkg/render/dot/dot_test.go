package dot

import (
	"strings"
	"testing"

	"github.com/wiremaphq/wiremap/pkg/document"
)

func testDocument() *document.Document {
	d := document.New("dot test")
	d.Sources.Attributes = []document.Attribute{{ID: "a", Label: "Column A"}, {ID: "b"}}
	d.Targets.Attributes = []document.Attribute{{ID: "x"}, {ID: "y"}}
	d.Links = []document.Link{{Source: "a", Target: "x"}, {Source: "b", Target: "x"}}
	return d
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testDocument())

	if !strings.Contains(dot, "digraph wiremap") {
		t.Error("output missing digraph declaration")
	}
	if !strings.Contains(dot, "rankdir=LR") {
		t.Error("output missing left-to-right layout")
	}
	if !strings.Contains(dot, `"a" [label="Column A"]`) {
		t.Error("output missing labeled node a")
	}
	if !strings.Contains(dot, `"a" -> "x"`) {
		t.Error("output missing link a -> x")
	}
	if !strings.Contains(dot, `"b" -> "x"`) {
		t.Error("output missing fan-in link b -> x")
	}
	if !strings.Contains(dot, "cluster_sources") || !strings.Contains(dot, "cluster_targets") {
		t.Error("output missing column clusters")
	}
}

func TestToDOT_NoLinks(t *testing.T) {
	d := testDocument()
	d.Links = nil

	dot := ToDOT(d)
	if strings.Contains(dot, "->") {
		t.Error("output should contain no edges")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="12.00 4.00 120.75 80.25" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 120.75 80.25"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="121" height="80"`) {
		t.Errorf("pixel dimensions not applied: %s", out)
	}
}

func TestNormalizeViewBox_NoMatch(t *testing.T) {
	in := []byte("<svg>")
	if got := string(normalizeViewBox(in)); got != "<svg>" {
		t.Errorf("input without viewBox should pass through, got %s", got)
	}
}
