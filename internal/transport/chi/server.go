// Package chi exposes the REST API over the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eunyuson/graceroom/internal/domain"
	contentuc "github.com/eunyuson/graceroom/internal/usecase/content"
	guestbookuc "github.com/eunyuson/graceroom/internal/usecase/guestbook"
	healthuc "github.com/eunyuson/graceroom/internal/usecase/health"
	hymnuc "github.com/eunyuson/graceroom/internal/usecase/hymn"
	memouc "github.com/eunyuson/graceroom/internal/usecase/memo"
	relateduc "github.com/eunyuson/graceroom/internal/usecase/related"
)

// Error response codes.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeNotFound         = "not_found"
	codeUnknownSource    = "unknown_source"
	codeInternalError    = "internal_error"
)

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server wires the usecase services to HTTP handlers.
type Server struct {
	content       *contentuc.Service
	related       *relateduc.Service
	guestbook     *guestbookuc.Service
	memos         *memouc.Service
	hymns         *hymnuc.Service
	health        *healthuc.Service
	defaultCutoff float64
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. defaultCutoff is the related-query
// threshold applied when a request does not supply one.
func NewServer(
	content *contentuc.Service,
	related *relateduc.Service,
	guestbook *guestbookuc.Service,
	memos *memouc.Service,
	hymns *hymnuc.Service,
	health *healthuc.Service,
	defaultCutoff float64,
	logger *zap.Logger,
) *Server {
	s := &Server{
		content:       content,
		related:       related,
		guestbook:     guestbook,
		memos:         memos,
		hymns:         hymns,
		health:        health,
		defaultCutoff: defaultCutoff,
		logger:        logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrItemNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrEntryNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrMemoNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrUnknownSource, http.StatusBadRequest, codeUnknownSource),
		sentinelHandler(domain.ErrInvalidInput, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.getHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/related", s.getRelated)

	r.Route("/content/{source}", func(r chi.Router) {
		r.Get("/", s.listContent)
		r.Post("/", s.putContent)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getContent)
			r.Delete("/", s.deleteContent)
		})
	})

	r.Route("/guestbook", func(r chi.Router) {
		r.Get("/", s.listGuestbook)
		r.Post("/", s.signGuestbook)
		r.Delete("/{id}", s.deleteGuestbook)
	})

	r.Route("/memos/{source}/{id}", func(r chi.Router) {
		r.Get("/", s.listMemos)
		r.Post("/", s.writeMemo)
		r.Delete("/{memoID}", s.deleteMemo)
	})

	r.Get("/hymns", s.listHymns)
	r.Get("/hymns/categories", s.listHymnCategories)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrItemNotFound,
		domain.ErrEntryNotFound,
		domain.ErrMemoNotFound,
		domain.ErrNotFound,
		domain.ErrUnknownSource,
		domain.ErrInvalidInput,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler creates a handler for a simple sentinel → status mapping.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// handleDomainError maps a domain error to an HTTP response.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
