// Package mapping implements the connection store at the core of wiremap.
//
// A Store is the single source of truth for one widget instance: the
// committed source → target mapping and the in-progress drag gesture. Each
// source maps to at most one target; multiple sources may map to the same
// target. The drag state machine has two states, Idle and Dragging:
// StartConnection moves Idle → Dragging, EndConnection (commit) and
// CancelConnection (no commit) move Dragging → Idle.
//
// All mutations are synchronous and immediately visible to derived reads.
// The Connection list is a pure projection recomputed on every call, never
// cached. Stores are safe for concurrent use; instances are independent, so
// gestures on different widgets never interact.
package mapping

import (
	"sync"

	"github.com/wiremaphq/wiremap/pkg/observability"
)

// Role identifies which endpoint of a connection a node plays.
type Role string

// Endpoint roles.
const (
	RoleSource Role = "source"
	RoleTarget Role = "target"
)

// ConnectionID returns the derived identifier for a source → target pair.
func ConnectionID(source, target string) string {
	return source + "->" + target
}

// Connection is a derived, read-only view of one mapping entry. It is
// generated fresh from the mapping on every read and never stored.
type Connection struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// entry is one committed mapping pair. Entries keep insertion order so the
// derived connection list is stable across reads.
type entry struct {
	source string
	target string
}

// Store holds the committed mapping and the active drag gesture for a single
// widget instance.
type Store struct {
	mu       sync.RWMutex
	widgetID string

	entries []entry
	index   map[string]int // source → position in entries

	dragging   bool
	dragSource string // non-empty only while dragging
}

// New creates an empty store for the given widget instance. The widget ID is
// only used to attribute observability events; it may be empty.
func New(widgetID string) *Store {
	return &Store{
		widgetID: widgetID,
		index:    make(map[string]int),
	}
}

// WidgetID returns the widget instance identifier this store belongs to.
func (s *Store) WidgetID() string {
	return s.widgetID
}

// AddConnection inserts or overwrites the mapping entry for source.
// Overwrite is silent, last-write-wins per source; a re-added source keeps
// its original insertion position.
func (s *Store) AddConnection(source, target string) {
	s.mu.Lock()
	s.addLocked(source, target)
	s.mu.Unlock()

	observability.Store().OnConnectionAdded(s.widgetID, source, target)
}

func (s *Store) addLocked(source, target string) {
	if i, ok := s.index[source]; ok {
		s.entries[i].target = target
		return
	}
	s.index[source] = len(s.entries)
	s.entries = append(s.entries, entry{source: source, target: target})
}

// RemoveConnection deletes the entry for source if present; removing an
// unknown source is a no-op.
func (s *Store) RemoveConnection(source string) {
	s.mu.Lock()
	i, ok := s.index[source]
	if ok {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		delete(s.index, source)
		for j := i; j < len(s.entries); j++ {
			s.index[s.entries[j].source] = j
		}
	}
	s.mu.Unlock()

	if ok {
		observability.Store().OnConnectionRemoved(s.widgetID, source)
	}
}

// HasConnection reports whether id participates in the mapping in the given
// role: key membership for RoleSource, value membership for RoleTarget.
func (s *Store) HasConnection(id string, role Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch role {
	case RoleSource:
		_, ok := s.index[id]
		return ok
	case RoleTarget:
		for _, e := range s.entries {
			if e.target == id {
				return true
			}
		}
	}
	return false
}

// Target returns the committed target for source, if any.
func (s *Store) Target(source string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[source]
	if !ok {
		return "", false
	}
	return s.entries[i].target, true
}

// StartConnection enters the Dragging state with the given source. The
// source is not validated here; callers gate on HasConnection when sources
// with an existing connection must not start a new drag.
//
// Starting a drag while one is already active is explicit gesture
// interruption: the prior gesture is abandoned without a commit (observable
// via the DragInterrupted hook) and the drag source is replaced.
func (s *Store) StartConnection(sourceID string) {
	s.mu.Lock()
	interrupted := ""
	if s.dragging {
		interrupted = s.dragSource
	}
	s.dragging = true
	s.dragSource = sourceID
	s.mu.Unlock()

	if interrupted != "" {
		observability.Store().OnDragInterrupted(s.widgetID, interrupted)
	}
	observability.Store().OnDragStarted(s.widgetID, sourceID)
}

// EndConnection commits the active drag to targetID and returns to Idle.
// When no drag is active the mapping is untouched; the drag state is cleared
// either way.
func (s *Store) EndConnection(targetID string) {
	s.mu.Lock()
	source := ""
	if s.dragging {
		source = s.dragSource
		s.addLocked(source, targetID)
	}
	s.dragging = false
	s.dragSource = ""
	s.mu.Unlock()

	if source != "" {
		observability.Store().OnConnectionAdded(s.widgetID, source, targetID)
		observability.Store().OnDragCommitted(s.widgetID, source, targetID)
	}
}

// CancelConnection unconditionally clears the drag state without committing.
func (s *Store) CancelConnection() {
	s.mu.Lock()
	source := s.dragSource
	wasDragging := s.dragging
	s.dragging = false
	s.dragSource = ""
	s.mu.Unlock()

	if wasDragging {
		observability.Store().OnDragCanceled(s.widgetID, source)
	}
}

// IsDragging reports whether a drag gesture is active.
func (s *Store) IsDragging() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dragging
}

// DragSource returns the drag-origin source while a gesture is active, or
// "" when idle.
func (s *Store) DragSource() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dragSource
}

// Connections returns the current list of connection views in mapping
// insertion order. The list is recomputed from the mapping on every call.
func (s *Store) Connections() []Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Connection, len(s.entries))
	for i, e := range s.entries {
		out[i] = Connection{
			ID:     ConnectionID(e.source, e.target),
			Source: e.source,
			Target: e.target,
		}
	}
	return out
}

// Len returns the number of committed connections.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes every committed connection and resets the drag state.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.index = make(map[string]int)
	s.dragging = false
	s.dragSource = ""
	s.mu.Unlock()
}
