package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// writeMemoRequest is the JSON body of POST /memos/{source}/{id}.
type writeMemoRequest struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// writeMemo handles POST /memos/{source}/{id}.
func (s *Server) writeMemo(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "id")

	var req writeMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	m, err := s.memos.Write(r.Context(), source, itemID, req.Author, req.Body)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, memoToDTO(m))
}

// listMemos handles GET /memos/{source}/{id}.
func (s *Server) listMemos(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "id")

	memos, err := s.memos.List(r.Context(), source, itemID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	dtos := make([]memoDTO, len(memos))
	for i, m := range memos {
		dtos[i] = memoToDTO(m)
	}
	writeJSON(w, http.StatusOK, map[string]any{"memos": dtos})
}

// deleteMemo handles DELETE /memos/{source}/{id}/{memoID}.
func (s *Server) deleteMemo(w http.ResponseWriter, r *http.Request) {
	source, ok := s.sourceParam(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "id")
	memoID := chi.URLParam(r, "memoID")

	if err := s.memos.Remove(r.Context(), source, itemID, memoID); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
