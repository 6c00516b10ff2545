package chi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// signGuestbookRequest is the JSON body of POST /guestbook.
type signGuestbookRequest struct {
	Author  string `json:"author"`
	Message string `json:"message"`
}

// signGuestbook handles POST /guestbook.
func (s *Server) signGuestbook(w http.ResponseWriter, r *http.Request) {
	var req signGuestbookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	e, err := s.guestbook.Sign(r.Context(), req.Author, req.Message)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryToDTO(e))
}

// listGuestbook handles GET /guestbook.
func (s *Server) listGuestbook(w http.ResponseWriter, r *http.Request) {
	entries, err := s.guestbook.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	dtos := make([]entryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = entryToDTO(e)
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": dtos})
}

// deleteGuestbook handles DELETE /guestbook/{id}.
func (s *Server) deleteGuestbook(w http.ResponseWriter, r *http.Request) {
	if err := s.guestbook.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
