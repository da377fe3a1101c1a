package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// editCommand creates the edit command for interactive connection editing.
func (c *CLI) editCommand() *cobra.Command {
	var noSave bool

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit connections interactively in the terminal",
		Long: `Edit a mapping document's connections interactively.

Pick a source attribute and drag a wire to a target: press enter (or click)
on a source to start, then enter (or release) on a target to connect.
Escape cancels an in-flight wire. Changes are written back to the file on
quit unless --no-save is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ReadFile(args[0])
			if err != nil {
				return err
			}

			model := newEditModel(doc)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			final, err := p.Run()
			if err != nil {
				return err
			}

			m, ok := final.(editModel)
			if !ok || !m.dirty {
				printInfo("No changes")
				return nil
			}
			if noSave {
				printWarning("Changes discarded (--no-save)")
				return nil
			}

			doc.SetLinks(m.sess.Connections())
			if err := document.WriteFile(doc, args[0]); err != nil {
				return err
			}
			printSuccess("Saved %d connection(s)", len(doc.Links))
			printFile(args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSave, "no-save", false, "discard changes on quit")

	return cmd
}

// =============================================================================
// Editor Model
// =============================================================================

// Editor column geometry in terminal cells.
const (
	editColWidth    = 24
	editColGap      = 8
	editHeaderLines = 3
)

// Editor styles.
var (
	editCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editDragStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	editWireStyle     = lipgloss.NewStyle().Foreground(colorBlue)
	editUnwiredStyle  = lipgloss.NewStyle().Foreground(colorDim)
	editStatusStyle   = lipgloss.NewStyle().Foreground(colorGray)
	editHeadingsStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

// editColumn identifies which column has keyboard focus.
type editColumn int

const (
	columnSources editColumn = iota
	columnTargets
)

// editModel is the bubbletea model for the connection editor.
type editModel struct {
	doc  *document.Document
	sess *mapping.Store

	focus     editColumn
	srcCursor int
	tgtCursor int
	dirty     bool
	status    string
}

func newEditModel(doc *document.Document) editModel {
	return editModel{
		doc:    doc,
		sess:   doc.Store(),
		status: "enter: start/finish wire · esc: cancel · d: disconnect · q: quit",
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m editModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.sess.IsDragging() {
			m.sess.CancelConnection()
			m.status = "wire cancelled"
			return m, nil
		}
		return m, tea.Quit

	case "tab", "left", "right", "h", "l":
		if m.focus == columnSources {
			m.focus = columnTargets
		} else {
			m.focus = columnSources
		}

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "enter", " ":
		return m.activate()

	case "d", "backspace":
		if m.focus == columnSources {
			if id, ok := m.sourceAt(m.srcCursor); ok && m.sess.HasConnection(id, mapping.RoleSource) {
				m.sess.RemoveConnection(id)
				m.dirty = true
				m.status = fmt.Sprintf("disconnected %s", id)
			}
		}
	}
	return m, nil
}

func (m editModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if id, ok := m.sourceAtCell(msg.X, msg.Y); ok {
			m.focus = columnSources
			m.srcCursor = m.sourceIndex(id)
			m.sess.StartConnection(id)
			m.status = fmt.Sprintf("wiring %s …", id)
		}

	case tea.MouseActionRelease:
		if !m.sess.IsDragging() {
			return m, nil
		}
		if id, ok := m.targetAtCell(msg.X, msg.Y); ok {
			source := m.sess.DragSource()
			m.sess.EndConnection(id)
			m.dirty = true
			m.status = fmt.Sprintf("connected %s %s %s", source, iconArrow, id)
		} else {
			m.sess.CancelConnection()
			m.status = "wire cancelled"
		}
	}
	return m, nil
}

// activate handles enter/space on the focused column: start a wire on a
// source, finish it on a target.
func (m editModel) activate() (tea.Model, tea.Cmd) {
	if m.focus == columnSources {
		if id, ok := m.sourceAt(m.srcCursor); ok {
			m.sess.StartConnection(id)
			m.focus = columnTargets
			m.status = fmt.Sprintf("wiring %s … pick a target", id)
		}
		return m, nil
	}

	id, ok := m.targetAt(m.tgtCursor)
	if !ok {
		return m, nil
	}
	if !m.sess.IsDragging() {
		m.status = "start a wire on a source first"
		return m, nil
	}
	source := m.sess.DragSource()
	m.sess.EndConnection(id)
	m.dirty = true
	m.status = fmt.Sprintf("connected %s %s %s", source, iconArrow, id)
	return m, nil
}

func (m *editModel) moveCursor(delta int) {
	if m.focus == columnSources {
		m.srcCursor = clamp(m.srcCursor+delta, 0, len(m.doc.Sources.Attributes)-1)
	} else {
		m.tgtCursor = clamp(m.tgtCursor+delta, 0, len(m.doc.Targets.Attributes)-1)
	}
}

func (m editModel) sourceAt(i int) (string, bool) {
	if i < 0 || i >= len(m.doc.Sources.Attributes) {
		return "", false
	}
	return m.doc.Sources.Attributes[i].ID, true
}

func (m editModel) targetAt(i int) (string, bool) {
	if i < 0 || i >= len(m.doc.Targets.Attributes) {
		return "", false
	}
	return m.doc.Targets.Attributes[i].ID, true
}

func (m editModel) sourceIndex(id string) int {
	for i, a := range m.doc.Sources.Attributes {
		if a.ID == id {
			return i
		}
	}
	return 0
}

// sourceAtCell resolves a terminal cell to a source attribute.
func (m editModel) sourceAtCell(x, y int) (string, bool) {
	if x >= editColWidth {
		return "", false
	}
	return m.sourceAt(y - editHeaderLines)
}

// targetAtCell resolves a terminal cell to a target attribute.
func (m editModel) targetAtCell(x, y int) (string, bool) {
	if x < editColWidth+editColGap {
		return "", false
	}
	return m.targetAt(y - editHeaderLines)
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.doc.Name))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(editHeadingsStyle.Render(pad(columnLabel(m.doc.Sources, "Sources"), editColWidth)))
	b.WriteString(strings.Repeat(" ", editColGap))
	b.WriteString(editHeadingsStyle.Render(columnLabel(m.doc.Targets, "Targets")))
	b.WriteString("\n\n")

	rows := max(len(m.doc.Sources.Attributes), len(m.doc.Targets.Attributes))
	for i := 0; i < rows; i++ {
		b.WriteString(m.renderSourceCell(i))
		b.WriteString(m.renderWireCell(i))
		b.WriteString(m.renderTargetCell(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.sess.IsDragging() {
		b.WriteString(editDragStyle.Render(fmt.Sprintf("wiring %s …", m.sess.DragSource())))
		b.WriteString("  ")
	}
	b.WriteString(editStatusStyle.Render(m.status))
	return b.String()
}

func (m editModel) renderSourceCell(i int) string {
	if i >= len(m.doc.Sources.Attributes) {
		return strings.Repeat(" ", editColWidth)
	}
	attr := m.doc.Sources.Attributes[i]
	label := pad(attr.DisplayLabel(), editColWidth)

	switch {
	case m.sess.IsDragging() && m.sess.DragSource() == attr.ID:
		return editDragStyle.Render(label)
	case m.focus == columnSources && i == m.srcCursor:
		return editCursorStyle.Render(label)
	default:
		return editNormalStyle.Render(label)
	}
}

func (m editModel) renderWireCell(i int) string {
	id, ok := m.sourceAt(i)
	wire := strings.Repeat(" ", editColGap)
	if ok {
		if _, connected := m.sess.Target(id); connected {
			wire = " ──" + iconArrow + strings.Repeat(" ", editColGap-4)
			return editWireStyle.Render(wire)
		}
	}
	return editUnwiredStyle.Render(wire)
}

func (m editModel) renderTargetCell(i int) string {
	if i >= len(m.doc.Targets.Attributes) {
		return ""
	}
	attr := m.doc.Targets.Attributes[i]
	label := attr.DisplayLabel()

	switch {
	case m.focus == columnTargets && i == m.tgtCursor:
		return editCursorStyle.Render(label)
	case m.sess.HasConnection(attr.ID, mapping.RoleTarget):
		return editWireStyle.Render(label)
	default:
		return editNormalStyle.Render(label)
	}
}

func columnLabel(col document.Column, fallback string) string {
	if col.Label != "" {
		return col.Label
	}
	return fallback
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width-1] + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
