package server

import (
	"sync"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// sessionRegistry holds one live mapping store per document so drag state
// survives across requests from the same editor.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*mapping.Store
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]*mapping.Store)}
}

// get returns the session store for a document, seeding it from the
// document's links on first use.
func (r *sessionRegistry) get(doc *document.Document) *mapping.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.sessions[doc.ID]; ok {
		return st
	}
	st := doc.Store()
	r.sessions[doc.ID] = st
	return st
}

// replace rebuilds the session from the document, discarding any drag state.
// Called when a document is replaced wholesale via PUT.
func (r *sessionRegistry) replace(doc *document.Document) *mapping.Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := doc.Store()
	r.sessions[doc.ID] = st
	return st
}

// drop removes the session for a deleted document.
func (r *sessionRegistry) drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
