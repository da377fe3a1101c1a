package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
	"github.com/wiremaphq/wiremap/pkg/geometry"
	"github.com/wiremaphq/wiremap/pkg/mapping"
	"github.com/wiremaphq/wiremap/pkg/pipeline"
	"github.com/wiremaphq/wiremap/pkg/render/wire"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----- Documents -----

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document"))
		return
	}
	if doc.ID == "" {
		doc.ID = document.NewID()
	}
	doc.Touch()
	if err := doc.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), &doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, &doc)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []*document.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.store.Load(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	var doc document.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode document"))
		return
	}
	doc.ID = id
	doc.Touch()
	if err := doc.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), &doc); err != nil {
		writeError(w, err)
		return
	}
	s.sessions.replace(&doc)
	writeJSON(w, http.StatusOK, &doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	s.sessions.drop(id)
	w.WriteHeader(http.StatusNoContent)
}

// ----- Connections -----

type connectionRequest struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
}

type dragStateResponse struct {
	Dragging bool   `json:"dragging"`
	Source   string `json:"source,omitempty"`
}

func (s *Server) handleAddConnection(w http.ResponseWriter, r *http.Request) {
	doc, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode connection"))
		return
	}
	if err := validateEndpoint(doc.Sources, req.Source, "source"); err != nil {
		writeError(w, err)
		return
	}
	if err := validateEndpoint(doc.Targets, req.Target, "target"); err != nil {
		writeError(w, err)
		return
	}

	sess.AddConnection(req.Source, req.Target)
	if err := s.persist(r, doc, sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Connections())
}

func (s *Server) handleRemoveConnection(w http.ResponseWriter, r *http.Request) {
	doc, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	sess.RemoveConnection(chi.URLParam(r, "source"))
	if err := s.persist(r, doc, sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Connections())
}

// ----- Drag gestures -----

func (s *Server) handleDragState(w http.ResponseWriter, r *http.Request) {
	_, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dragStateResponse{
		Dragging: sess.IsDragging(),
		Source:   sess.DragSource(),
	})
}

func (s *Server) handleDragStart(w http.ResponseWriter, r *http.Request) {
	doc, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode drag start"))
		return
	}
	if err := validateEndpoint(doc.Sources, req.Source, "source"); err != nil {
		writeError(w, err)
		return
	}

	sess.StartConnection(req.Source)
	writeJSON(w, http.StatusOK, dragStateResponse{Dragging: true, Source: req.Source})
}

func (s *Server) handleDragEnd(w http.ResponseWriter, r *http.Request) {
	doc, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req connectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode drag end"))
		return
	}
	if err := validateEndpoint(doc.Targets, req.Target, "target"); err != nil {
		writeError(w, err)
		return
	}

	sess.EndConnection(req.Target)
	if err := s.persist(r, doc, sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Connections())
}

func (s *Server) handleDragCancel(w http.ResponseWriter, r *http.Request) {
	_, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sess.CancelConnection()
	writeJSON(w, http.StatusOK, dragStateResponse{Dragging: false})
}

// ----- Previews -----

func (s *Server) handlePreviewSVG(w http.ResponseWriter, r *http.Request) {
	doc, sess, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Document: doc,
		Style:    r.URL.Query().Get("style"),
		Curve:    r.URL.Query().Get("curve"),
	}
	if err := opts.ValidateForRender(); err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document: doc,
		Style:    opts.Style,
		Curve:    opts.Curve,
		Formats:  []string{pipeline.FormatSVG},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	svg := result.Artifacts[pipeline.FormatSVG]

	// A live drag with pointer coordinates renders directly so the preview
	// wire can follow the cursor. Cached artifacts never include it.
	if px, py, ok := pointerParams(r); ok && sess.IsDragging() {
		style, _ := wire.StyleByName(opts.Style)
		svg = wire.RenderSVG(doc, result.Layout,
			wire.WithStyle(style),
			wire.WithCurve(geometry.Curve(opts.Curve)),
			wire.WithPreview(sess.DragSource(), geometry.Point{X: px, Y: py}),
		)
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (s *Server) handlePreviewPNG(w http.ResponseWriter, r *http.Request) {
	doc, _, err := s.session(r)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Document: doc,
		Formats:  []string{pipeline.FormatPNG},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatPNG])
}

// ----- Helpers -----

// session loads the document for the request and its live mapping session.
func (s *Server) session(r *http.Request) (*document.Document, *mapping.Store, error) {
	doc, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, nil, err
	}
	return doc, s.sessions.get(doc), nil
}

// persist folds the session's connections back into the document and saves it.
func (s *Server) persist(r *http.Request, doc *document.Document, sess *mapping.Store) error {
	doc.SetLinks(sess.Connections())
	return s.store.Save(r.Context(), doc)
}

func validateEndpoint(col document.Column, id, role string) error {
	if err := errors.ValidateNodeID(id); err != nil {
		return err
	}
	if !col.Has(id) {
		return errors.New(errors.ErrCodeNodeNotFound, "unknown %s attribute: %q", role, id)
	}
	return nil
}

func pointerParams(r *http.Request) (float64, float64, bool) {
	q := r.URL.Query()
	if q.Get("px") == "" || q.Get("py") == "" {
		return 0, 0, false
	}
	px, errX := strconv.ParseFloat(q.Get("px"), 64)
	py, errY := strconv.ParseFloat(q.Get("py"), 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return px, py, true
}
