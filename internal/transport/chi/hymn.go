package chi

import "net/http"

// listHymns handles GET /hymns?category=...&prefix=...
func (s *Server) listHymns(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	prefix := r.URL.Query().Get("prefix")

	hymns := s.hymns.Browse(category, prefix)
	writeJSON(w, http.StatusOK, map[string]any{"hymns": hymns})
}

// listHymnCategories handles GET /hymns/categories.
func (s *Server) listHymnCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": s.hymns.Categories()})
}
