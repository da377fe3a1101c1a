package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wiremaphq/wiremap/pkg/document"
)

func editDocument(t *testing.T) *document.Document {
	t.Helper()
	doc := document.New("orders")
	doc.Sources.Attributes = []document.Attribute{{ID: "sku"}, {ID: "price"}}
	doc.Targets.Attributes = []document.Attribute{{ID: "product_code"}, {ID: "unit_price"}}
	if err := doc.Validate(); err != nil {
		t.Fatalf("test document invalid: %v", err)
	}
	return doc
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) editModel {
	t.Helper()
	next, _ := m.Update(msg)
	em, ok := next.(editModel)
	if !ok {
		t.Fatalf("Update returned %T, want editModel", next)
	}
	return em
}

func TestEditKeyboardWire(t *testing.T) {
	m := newEditModel(editDocument(t))

	// Enter on the first source starts a wire and moves focus to targets.
	m = update(t, m, key("enter"))
	if !m.sess.IsDragging() || m.sess.DragSource() != "sku" {
		t.Fatalf("drag state after enter: dragging=%v source=%q", m.sess.IsDragging(), m.sess.DragSource())
	}
	if m.focus != columnTargets {
		t.Fatal("focus did not move to targets")
	}

	// Enter on the second target commits the connection.
	m = update(t, m, key("j"))
	m = update(t, m, key("enter"))
	if m.sess.IsDragging() {
		t.Fatal("still dragging after commit")
	}
	if target, ok := m.sess.Target("sku"); !ok || target != "unit_price" {
		t.Fatalf("Target(sku) = %q, %v", target, ok)
	}
	if !m.dirty {
		t.Fatal("commit did not mark the model dirty")
	}
}

func TestEditEscapeCancelsWire(t *testing.T) {
	m := newEditModel(editDocument(t))

	m = update(t, m, key("enter"))
	m = update(t, m, key("esc"))
	if m.sess.IsDragging() {
		t.Fatal("esc did not cancel the wire")
	}
	if m.sess.Len() != 0 {
		t.Fatal("cancel committed a connection")
	}
}

func TestEditDisconnect(t *testing.T) {
	doc := editDocument(t)
	doc.Links = []document.Link{{Source: "sku", Target: "product_code"}}

	m := newEditModel(doc)
	m = update(t, m, key("d"))
	if m.sess.Len() != 0 {
		t.Fatal("d did not disconnect the cursor's source")
	}
	if !m.dirty {
		t.Fatal("disconnect did not mark the model dirty")
	}
}

func TestEditMouseWire(t *testing.T) {
	m := newEditModel(editDocument(t))

	press := tea.MouseMsg{
		X: 2, Y: editHeaderLines,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	}
	m = update(t, m, press)
	if !m.sess.IsDragging() || m.sess.DragSource() != "sku" {
		t.Fatalf("press did not start a wire: dragging=%v", m.sess.IsDragging())
	}

	release := tea.MouseMsg{
		X: editColWidth + editColGap + 1, Y: editHeaderLines + 1,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease,
	}
	m = update(t, m, release)
	if target, ok := m.sess.Target("sku"); !ok || target != "unit_price" {
		t.Fatalf("Target(sku) = %q, %v", target, ok)
	}

	// Release outside either column cancels.
	m = update(t, m, press)
	miss := tea.MouseMsg{
		X: editColWidth + 1, Y: 0,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease,
	}
	m = update(t, m, miss)
	if m.sess.IsDragging() {
		t.Fatal("release outside targets did not cancel")
	}
}

func TestEditViewShowsConnections(t *testing.T) {
	doc := editDocument(t)
	doc.Links = []document.Link{{Source: "sku", Target: "product_code"}}

	view := newEditModel(doc).View()
	if !strings.Contains(view, "sku") || !strings.Contains(view, "product_code") {
		t.Fatalf("view missing attributes:\n%s", view)
	}
	if !strings.Contains(view, iconArrow) {
		t.Fatal("view missing wire arrow for committed connection")
	}
}
