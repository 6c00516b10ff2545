package chi

import (
	"net/http"
	"strconv"

	"github.com/eunyuson/graceroom/internal/domain/item"
	"github.com/eunyuson/graceroom/internal/domain/related"
)

// getRelated handles GET /related.
// Query params: q (required), threshold (optional, default from config),
// exclude_source + exclude_id (optional, both or neither).
func (s *Server) getRelated(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter q is required")
		return
	}

	threshold := s.defaultCutoff
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "threshold must be a number")
			return
		}
		threshold = parsed
	}

	var exclude related.Exclude
	excludeSource := r.URL.Query().Get("exclude_source")
	excludeID := r.URL.Query().Get("exclude_id")
	if (excludeSource == "") != (excludeID == "") {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			"exclude_source and exclude_id must be supplied together")
		return
	}
	if excludeID != "" {
		src, err := item.ParseSource(excludeSource)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeUnknownSource, err.Error())
			return
		}
		exclude = related.Exclude{Source: src, ID: excludeID}
	}

	groups, err := s.related.Related(r.Context(), q, threshold, exclude)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":     q,
		"threshold": threshold,
		"groups":    groupsToDTO(groups),
	})
}
