// Package document defines the serializable mapping document: two attribute
// columns (sources and targets) plus the committed source → target links.
//
// Documents are the persisted state of a wiremap widget. The format is
// human-readable JSON designed for round-trip fidelity: load → edit → save →
// re-load produces identical results. The same types carry bson tags for the
// MongoDB store backend.
package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// Attribute is one connectable node in a column.
type Attribute struct {
	ID    string `json:"id" bson:"id"`
	Label string `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
}

// DisplayLabel returns the label if set, otherwise the ID.
func (a Attribute) DisplayLabel() string {
	if a.Label != "" {
		return a.Label
	}
	return a.ID
}

// Column is an ordered list of attributes under a heading.
type Column struct {
	Label      string      `json:"label,omitempty" bson:"label,omitempty"`
	Attributes []Attribute `json:"attributes" bson:"attributes"`
}

// Get returns the attribute with the given ID.
func (c Column) Get(id string) (Attribute, bool) {
	for _, a := range c.Attributes {
		if a.ID == id {
			return a, true
		}
	}
	return Attribute{}, false
}

// Has reports whether the column declares an attribute with the given ID.
func (c Column) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Link is one committed source → target pair.
type Link struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
}

// Document is the canonical serialization format for a mapping widget.
type Document struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Sources   Column    `json:"sources" bson:"sources"`
	Targets   Column    `json:"targets" bson:"targets"`
	Links     []Link    `json:"links" bson:"links"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewID returns a fresh document identifier.
func NewID() string {
	return uuid.NewString()
}

// New creates an empty named document with a fresh ID and timestamps.
func New(name string) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the modification timestamp.
func (d *Document) Touch() {
	d.UpdatedAt = time.Now().UTC()
}

// Validate checks the document's structural invariants:
//   - non-empty, well-formed attribute IDs, unique within each column
//   - links reference declared attributes
//   - at most one link per source (the mapping store invariant)
func (d *Document) Validate() error {
	if err := errors.ValidateDocumentName(d.Name); err != nil {
		return err
	}

	if err := validateColumn(d.Sources, "sources"); err != nil {
		return err
	}
	if err := validateColumn(d.Targets, "targets"); err != nil {
		return err
	}

	// Attribute IDs share one namespace: geometry registration is keyed by
	// bare ID, so a duplicate across columns would alias two nodes.
	for _, a := range d.Targets.Attributes {
		if d.Sources.Has(a.ID) {
			return errors.New(errors.ErrCodeInvalidDocument, "attribute %q declared in both columns", a.ID)
		}
	}

	seen := make(map[string]bool, len(d.Links))
	for _, l := range d.Links {
		if !d.Sources.Has(l.Source) {
			return errors.New(errors.ErrCodeInvalidDocument, "link references undeclared source %q", l.Source)
		}
		if !d.Targets.Has(l.Target) {
			return errors.New(errors.ErrCodeInvalidDocument, "link references undeclared target %q", l.Target)
		}
		if seen[l.Source] {
			return errors.New(errors.ErrCodeInvalidDocument, "source %q has more than one link", l.Source)
		}
		seen[l.Source] = true
	}

	return nil
}

func validateColumn(c Column, name string) error {
	seen := make(map[string]bool, len(c.Attributes))
	for _, a := range c.Attributes {
		if err := errors.ValidateNodeID(a.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s column", name)
		}
		if seen[a.ID] {
			return errors.New(errors.ErrCodeInvalidDocument, "%s column declares %q twice", name, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Store builds a mapping store seeded with the document's links. The store
// is keyed by the document ID for observability attribution.
func (d *Document) Store() *mapping.Store {
	s := mapping.New(d.ID)
	for _, l := range d.Links {
		s.AddConnection(l.Source, l.Target)
	}
	return s
}

// SetLinks replaces the document's links from a derived connection list,
// typically store.Connections() after an editing session.
func (d *Document) SetLinks(conns []mapping.Connection) {
	links := make([]Link, len(conns))
	for i, c := range conns {
		links[i] = Link{Source: c.Source, Target: c.Target}
	}
	d.Links = links
	d.Touch()
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Sources.Attributes = append([]Attribute(nil), d.Sources.Attributes...)
	out.Targets.Attributes = append([]Attribute(nil), d.Targets.Attributes...)
	out.Links = append([]Link(nil), d.Links...)
	return &out
}
