package layout

import (
	"testing"

	"github.com/wiremaphq/wiremap/pkg/canvas"
	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/geometry"
)

func testDocument() *document.Document {
	d := document.New("layout test")
	d.Sources.Attributes = []document.Attribute{{ID: "a"}, {ID: "b"}}
	d.Targets.Attributes = []document.Attribute{{ID: "x"}, {ID: "y"}, {ID: "z"}}
	return d
}

func TestCompute(t *testing.T) {
	opts := Options{NodeWidth: 100, NodeHeight: 40, ColumnGap: 200, RowGap: 10, Padding: 20}
	l := Compute(testDocument(), opts)

	if len(l.Rects) != 5 {
		t.Fatalf("rect count = %d, want 5", len(l.Rects))
	}

	// First source sits at the top-left padding corner.
	if got, want := l.Rects["a"], (geometry.Rect{Left: 20, Right: 120, Top: 20, Bottom: 60}); got != want {
		t.Errorf("rect a = %+v, want %+v", got, want)
	}
	// Second row is one node height plus the row gap lower.
	if got, want := l.Rects["b"], (geometry.Rect{Left: 20, Right: 120, Top: 70, Bottom: 110}); got != want {
		t.Errorf("rect b = %+v, want %+v", got, want)
	}
	// Targets start one column over.
	if got, want := l.Rects["x"], (geometry.Rect{Left: 320, Right: 420, Top: 20, Bottom: 60}); got != want {
		t.Errorf("rect x = %+v, want %+v", got, want)
	}

	// Canvas spans both columns plus padding; height follows the taller column.
	if got, want := l.Width, 440.0; got != want {
		t.Errorf("width = %v, want %v", got, want)
	}
	if got, want := l.Height, 180.0; got != want {
		t.Errorf("height = %v, want %v", got, want)
	}
}

func TestComputeDeterministic(t *testing.T) {
	doc := testDocument()
	a := Compute(doc, Options{})
	b := Compute(doc, Options{})

	if a.Width != b.Width || a.Height != b.Height || len(a.Rects) != len(b.Rects) {
		t.Fatal("layout should be deterministic")
	}
	for id, r := range a.Rects {
		if b.Rects[id] != r {
			t.Errorf("rect %s differs between runs", id)
		}
	}
}

func TestComputeEmptyDocument(t *testing.T) {
	l := Compute(document.New("empty"), Options{})

	if len(l.Rects) != 0 {
		t.Errorf("rects = %d, want 0", len(l.Rects))
	}
	if l.Height != 2*DefaultPadding {
		t.Errorf("height = %v, want bare padding %v", l.Height, 2*DefaultPadding)
	}
}

func TestApply(t *testing.T) {
	l := Compute(testDocument(), Options{})

	cv := canvas.New()
	cv.SetNodeRect("stale", geometry.Rect{Right: 1, Bottom: 1})
	l.Apply(cv)

	if _, ok := cv.NodeRect("stale"); ok {
		t.Error("Apply should clear stale registrations")
	}
	for id := range l.Rects {
		if _, ok := cv.NodeRect(id); !ok {
			t.Errorf("node %s not registered on canvas", id)
		}
	}

	// Anchors line up for a committed connection.
	if _, _, ok := cv.ConnectionPoints("a", "x"); !ok {
		t.Error("connection anchors should resolve after Apply")
	}
}
