package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	authorsservice "editorial/contexts/editorial/authors-service"
	authorserrors "editorial/contexts/editorial/authors-service/domain/errors"
	authorshttp "editorial/contexts/editorial/authors-service/transport/http"
	publicationsservice "editorial/contexts/editorial/publications-service"
	publicationserrors "editorial/contexts/editorial/publications-service/domain/errors"
	publicationshttp "editorial/contexts/editorial/publications-service/transport/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "editorial/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	publications publicationsservice.Module
	authors      authorsservice.Module
}

func New(
	publications publicationsservice.Module,
	authors authorsservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		publications: publications,
		authors:      authors,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler exposes the routed mux, wrapped with request metrics.
func (s *Server) Handler() http.Handler {
	return instrument(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	s.mux.Handle("GET /metrics", promhttp.Handler())

	s.mux.HandleFunc("POST /publications", s.handleCreatePublication)
	s.mux.HandleFunc("GET /publications", s.handleListPublications)
	s.mux.HandleFunc("GET /publications/{publication_id}", s.handleGetPublication)
	s.mux.HandleFunc("PATCH /publications/{publication_id}/status", s.handleChangePublicationStatus)
	s.mux.HandleFunc("GET /publications/{publication_id}/history", s.handleGetPublicationHistory)
	s.mux.HandleFunc("GET /publications/author/{author_id}", s.handleListPublicationsByAuthor)

	s.mux.HandleFunc("POST /authors", s.handleCreateAuthor)
	s.mux.HandleFunc("GET /authors", s.handleListAuthors)
	s.mux.HandleFunc("GET /authors/{author_id}", s.handleGetAuthor)
	s.mux.HandleFunc("PUT /authors/{author_id}", s.handleUpdateAuthor)
	s.mux.HandleFunc("DELETE /authors/{author_id}", s.handleDeleteAuthor)
	s.mux.HandleFunc("GET /authors/{author_id}/exists", s.handleAuthorExists)
}

func (s *Server) handleCreatePublication(w http.ResponseWriter, r *http.Request) {
	var req publicationshttp.CreatePublicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePublicationsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.publications.Handler.CreatePublicationHandler(r.Context(), req)
	if err != nil {
		writePublicationsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPublication(w http.ResponseWriter, r *http.Request) {
	resp, err := s.publications.Handler.GetPublicationHandler(r.Context(), r.PathValue("publication_id"))
	if err != nil {
		writePublicationsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPublications(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePaging(w, r)
	if !ok {
		return
	}
	resp, err := s.publications.Handler.ListPublicationsHandler(r.Context(), "", page, size)
	if err != nil {
		writePublicationsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListPublicationsByAuthor(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parsePaging(w, r)
	if !ok {
		return
	}
	authorID := r.PathValue("author_id")
	resp, err := s.publications.Handler.ListPublicationsHandler(r.Context(), authorID, page, size)
	if err != nil {
		writePublicationsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangePublicationStatus(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get("status")
	if strings.TrimSpace(target) == "" {
		writePublicationsError(w, http.StatusBadRequest, "missing_status", "status query parameter is required")
		return
	}

	req := publicationshttp.ChangeStatusRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writePublicationsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
			return
		}
	}

	resp, err := s.publications.Handler.ChangeStatusHandler(r.Context(), r.PathValue("publication_id"), target, req)
	if err != nil {
		writePublicationsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPublicationHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.publications.Handler.GetHistoryHandler(r.Context(), r.PathValue("publication_id"))
	if err != nil {
		writePublicationsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req authorshttp.CreateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthorsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.authors.Handler.CreateAuthorHandler(r.Context(), req)
	if err != nil {
		writeAuthorsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAuthors(w http.ResponseWriter, r *http.Request) {
	page, size, ok := parseAuthorsPaging(w, r)
	if !ok {
		return
	}
	resp, err := s.authors.Handler.ListAuthorsHandler(r.Context(), page, size)
	if err != nil {
		writeAuthorsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAuthor(w http.ResponseWriter, r *http.Request) {
	resp, err := s.authors.Handler.GetAuthorHandler(r.Context(), r.PathValue("author_id"))
	if err != nil {
		writeAuthorsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateAuthor(w http.ResponseWriter, r *http.Request) {
	var req authorshttp.UpdateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthorsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.authors.Handler.UpdateAuthorHandler(r.Context(), r.PathValue("author_id"), req)
	if err != nil {
		writeAuthorsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAuthor(w http.ResponseWriter, r *http.Request) {
	if err := s.authors.Handler.DeleteAuthorHandler(r.Context(), r.PathValue("author_id")); err != nil {
		writeAuthorsDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAuthorExists(w http.ResponseWriter, r *http.Request) {
	exists, err := s.authors.Handler.AuthorExistsHandler(r.Context(), r.PathValue("author_id"))
	if err != nil {
		writeAuthorsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exists)
}

func parsePaging(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	query := r.URL.Query()
	page := 0
	size := 0

	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writePublicationsError(w, http.StatusBadRequest, "invalid_page", "page must be an integer")
			return 0, 0, false
		}
		page = value
	}
	if raw := query.Get("size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writePublicationsError(w, http.StatusBadRequest, "invalid_size", "size must be an integer")
			return 0, 0, false
		}
		size = value
	}
	return page, size, true
}

func parseAuthorsPaging(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	query := r.URL.Query()
	page := 0
	size := 0

	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeAuthorsError(w, http.StatusBadRequest, "invalid_page", "page must be an integer")
			return 0, 0, false
		}
		page = value
	}
	if raw := query.Get("size"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			writeAuthorsError(w, http.StatusBadRequest, "invalid_size", "size must be an integer")
			return 0, 0, false
		}
		size = value
	}
	return page, size, true
}

func writePublicationsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, publicationserrors.ErrPublicationNotFound):
		writePublicationsError(w, http.StatusNotFound, "publication_not_found", err.Error())
	case errors.Is(err, publicationserrors.ErrAuthorNotFound):
		writePublicationsError(w, http.StatusNotFound, "author_not_found", err.Error())
	case errors.Is(err, publicationserrors.ErrAuthorServiceUnavailable):
		writePublicationsError(w, http.StatusServiceUnavailable, "author_registry_unavailable", "author registry is unavailable")
	case errors.Is(err, publicationserrors.ErrInvalidTransition):
		writePublicationsError(w, http.StatusBadRequest, "invalid_status_transition", err.Error())
	case errors.Is(err, publicationserrors.ErrEmptyContent),
		errors.Is(err, publicationserrors.ErrMissingEditor),
		errors.Is(err, publicationserrors.ErrMissingRejectionReason),
		errors.Is(err, publicationserrors.ErrMissingReviewComments):
		writePublicationsError(w, http.StatusBadRequest, "transition_requirement_failed", err.Error())
	case errors.Is(err, publicationserrors.ErrInvalidPublicationInput):
		writePublicationsError(w, http.StatusBadRequest, "invalid_publication_input", err.Error())
	default:
		writePublicationsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthorsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorserrors.ErrAuthorNotFound):
		writeAuthorsError(w, http.StatusNotFound, "author_not_found", err.Error())
	case errors.Is(err, authorserrors.ErrDuplicateEmail):
		writeAuthorsError(w, http.StatusConflict, "duplicate_email", err.Error())
	case errors.Is(err, authorserrors.ErrInvalidAuthorInput):
		writeAuthorsError(w, http.StatusBadRequest, "invalid_author_input", err.Error())
	default:
		writeAuthorsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePublicationsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, publicationshttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeAuthorsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authorshttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
