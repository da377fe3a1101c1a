package document

import (
	"path/filepath"
	"testing"

	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

func testDocument() *Document {
	d := New("orders import")
	d.Sources = Column{
		Label: "Spreadsheet",
		Attributes: []Attribute{
			{ID: "sku"},
			{ID: "price", Label: "Unit price"},
			{ID: "qty"},
		},
	}
	d.Targets = Column{
		Label: "Orders",
		Attributes: []Attribute{
			{ID: "product_code"},
			{ID: "unit_price"},
			{ID: "quantity"},
		},
	}
	d.Links = []Link{
		{Source: "sku", Target: "product_code"},
		{Source: "price", Target: "unit_price"},
	}
	return d
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Document)
		wantCode errors.Code
	}{
		{"valid", func(d *Document) {}, ""},
		{"empty name", func(d *Document) { d.Name = "" }, errors.ErrCodeInvalidDocument},
		{"empty attribute id", func(d *Document) { d.Sources.Attributes[0].ID = "" }, errors.ErrCodeInvalidDocument},
		{"duplicate source attribute", func(d *Document) { d.Sources.Attributes[1].ID = "sku" }, errors.ErrCodeInvalidDocument},
		{"duplicate target attribute", func(d *Document) { d.Targets.Attributes[2].ID = "product_code" }, errors.ErrCodeInvalidDocument},
		{"same id in both columns", func(d *Document) { d.Targets.Attributes[0].ID = "sku" }, errors.ErrCodeInvalidDocument},
		{"link to unknown source", func(d *Document) { d.Links[0].Source = "ghost" }, errors.ErrCodeInvalidDocument},
		{"link to unknown target", func(d *Document) { d.Links[0].Target = "ghost" }, errors.ErrCodeInvalidDocument},
		{"two links per source", func(d *Document) {
			d.Links = append(d.Links, Link{Source: "sku", Target: "quantity"})
		}, errors.ErrCodeInvalidDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDocument()
			tt.mutate(d)
			err := d.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if errors.GetCode(err) != tt.wantCode {
				t.Errorf("Validate code = %v (%v), want %v", errors.GetCode(err), err, tt.wantCode)
			}
		})
	}
}

func TestStoreRoundTrip(t *testing.T) {
	d := testDocument()

	s := d.Store()
	if s.Len() != 2 {
		t.Fatalf("store len = %d, want 2", s.Len())
	}
	if !s.HasConnection("sku", mapping.RoleSource) {
		t.Error("store missing sku link")
	}

	// Simulate an editing session: drag qty onto quantity.
	s.StartConnection("qty")
	s.EndConnection("quantity")
	d.SetLinks(s.Connections())

	if len(d.Links) != 3 {
		t.Fatalf("links after edit = %d, want 3", len(d.Links))
	}
	if d.Links[2] != (Link{Source: "qty", Target: "quantity"}) {
		t.Errorf("new link = %+v", d.Links[2])
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("edited document should validate: %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	d := testDocument()
	path := filepath.Join(t.TempDir(), "orders.json")

	if err := WriteFile(d, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got.ID != d.ID || got.Name != d.Name {
		t.Errorf("identity changed in round trip: %s/%s vs %s/%s", got.ID, got.Name, d.ID, d.Name)
	}
	if len(got.Links) != len(d.Links) {
		t.Errorf("links = %d, want %d", len(got.Links), len(d.Links))
	}
	if got.Sources.Attributes[1].Label != "Unit price" {
		t.Errorf("attribute label lost: %+v", got.Sources.Attributes[1])
	}
}

func TestReadRejectsInvalid(t *testing.T) {
	// Well-formed JSON, broken invariant: link to an undeclared attribute.
	raw := []byte(`{
	  "id": "x", "name": "broken",
	  "sources": {"attributes": [{"id": "a"}]},
	  "targets": {"attributes": [{"id": "b"}]},
	  "links": [{"source": "a", "target": "ghost"}]
	}`)

	if _, err := Unmarshal(raw); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("Unmarshal error = %v, want INVALID_DOCUMENT", err)
	}

	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("malformed JSON should error")
	}
}

func TestClone(t *testing.T) {
	d := testDocument()
	c := d.Clone()

	c.Links[0].Target = "quantity"
	c.Sources.Attributes[0].ID = "changed"

	if d.Links[0].Target != "product_code" {
		t.Error("clone shares link storage with original")
	}
	if d.Sources.Attributes[0].ID != "sku" {
		t.Error("clone shares attribute storage with original")
	}
}

func TestDisplayLabel(t *testing.T) {
	if got := (Attribute{ID: "sku"}).DisplayLabel(); got != "sku" {
		t.Errorf("DisplayLabel = %q, want id fallback", got)
	}
	if got := (Attribute{ID: "sku", Label: "SKU"}).DisplayLabel(); got != "SKU" {
		t.Errorf("DisplayLabel = %q, want label", got)
	}
}
