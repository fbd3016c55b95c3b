package api

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/portfolio/internal/content"
	"github.com/garnizeh/portfolio/pkg/store"
)

type ContentHandler struct {
	store     store.Store
	validator *content.Validator
}

// NewContentHandler wires the content routes to the document store. The
// validator holds the per-collection request-shape schemas.
func NewContentHandler(st store.Store, v *content.Validator) *ContentHandler {
	return &ContentHandler{store: st, validator: v}
}

func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.listDocs(w, r, content.CollectionProject)
}

// GetProject looks a single project up by its slug.
func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	slug := mux.Vars(r)["slug"]
	docs, err := h.store.Find(r.Context(), content.CollectionProject, store.Filter{"slug": slug})
	if err != nil {
		http.Error(w, "failed to fetch project", http.StatusInternalServerError)
		return
	}
	if len(docs) == 0 {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	writeJSON(w, content.Normalize(docs[0]), http.StatusOK)
}

func (h *ContentHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	h.createDoc(w, r, content.CollectionProject)
}

// UpdateProject replaces the full project shape of the document matching the
// slug; optional fields omitted from the request are cleared. Only fields
// the request shape doesn't cover (id, created_at) survive.
func (h *ContentHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w) {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), content.CollectionProject, raw); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fields, err := content.Replacement(content.CollectionProject, raw)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	slug := mux.Vars(r)["slug"]
	found, err := h.store.FindOneAndUpdate(r.Context(), content.CollectionProject, store.Filter{"slug": slug}, fields)
	if err != nil {
		http.Error(w, "failed to update project", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]bool{"ok": true}, http.StatusOK)
}

// DeleteProject removes the project matching the slug. Deleting a slug that
// doesn't exist reports {"deleted":0}, not an error.
func (h *ContentHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if !h.storeReady(w) {
		return
	}

	slug := mux.Vars(r)["slug"]
	deleted, err := h.store.DeleteOne(r.Context(), content.CollectionProject, store.Filter{"slug": slug})
	if err != nil {
		http.Error(w, "failed to delete project", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int64{"deleted": deleted}, http.StatusOK)
}

func (h *ContentHandler) ListTech(w http.ResponseWriter, r *http.Request) {
	h.listDocs(w, r, content.CollectionTech)
}

func (h *ContentHandler) CreateTech(w http.ResponseWriter, r *http.Request) {
	h.createDoc(w, r, content.CollectionTech)
}

// ListPosts returns the latest three posts, most recent first.
func (h *ContentHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeJSON(w, []map[string]any{}, http.StatusOK)
		return
	}

	docs, err := h.store.Find(r.Context(), content.CollectionPost, nil)
	if err != nil {
		http.Error(w, "failed to list posts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, content.NormalizeAll(content.LatestPosts(docs, 3)), http.StatusOK)
}

func (h *ContentHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	h.createDoc(w, r, content.CollectionPost)
}

func (h *ContentHandler) ListExperience(w http.ResponseWriter, r *http.Request) {
	h.listDocs(w, r, content.CollectionExperience)
}

func (h *ContentHandler) ListEducation(w http.ResponseWriter, r *http.Request) {
	h.listDocs(w, r, content.CollectionEducation)
}

func (h *ContentHandler) listDocs(w http.ResponseWriter, r *http.Request, collection string) {
	if h.store == nil {
		writeJSON(w, []map[string]any{}, http.StatusOK)
		return
	}

	docs, err := h.store.Find(r.Context(), collection, nil)
	if err != nil {
		http.Error(w, "failed to list documents", http.StatusInternalServerError)
		return
	}

	writeJSON(w, content.NormalizeAll(docs), http.StatusOK)
}

func (h *ContentHandler) createDoc(w http.ResponseWriter, r *http.Request, collection string) {
	if !h.storeReady(w) {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), collection, raw); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc, err := content.Decode(collection, raw)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.store.Insert(r.Context(), collection, doc)
	if err != nil {
		http.Error(w, "failed to store document", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"id": id}, http.StatusOK)
}

func (h *ContentHandler) storeReady(w http.ResponseWriter) bool {
	if h.store == nil {
		http.Error(w, "Database not available", http.StatusInternalServerError)
		return false
	}
	return true
}
