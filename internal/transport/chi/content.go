package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eunyuson/graceroom/internal/domain/item"
)

// putContentRequest is the JSON body of POST /content/{source}.
type putContentRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Question string `json:"question"`
	Preview  string `json:"preview"`
}

// putContent handles POST /content/{source}: create or replace an item.
func (s *Server) putContent(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}

	var req putContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	it, created, err := s.content.Put(r.Context(), source, req.ID, req.Title, req.Question, req.Preview)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, itemToDTO(it))
}

// getContent handles GET /content/{source}/{id}.
func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	it, views, err := s.content.Get(r.Context(), source, id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, itemToDTOWithViews(it, views))
}

// listContent handles GET /content/{source}.
func (s *Server) listContent(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}

	items, err := s.content.List(r.Context(), source)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	dtos := make([]itemDTO, len(items))
	for i, it := range items {
		dtos[i] = itemToDTO(it)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": dtos})
}

// deleteContent handles DELETE /content/{source}/{id}.
func (s *Server) deleteContent(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	if err := s.content.Delete(r.Context(), source, id); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sourceParam parses the {source} URL parameter, writing a 400 on failure.
func (s *Server) sourceParam(w http.ResponseWriter, r *http.Request) (item.Source, bool) {
	src, err := item.ParseSource(chi.URLParam(r, "source"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeUnknownSource, err.Error())
		return "", false
	}
	return src, true
}
