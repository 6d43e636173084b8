package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/floorwise/searchiq/internal/domain"
	cataloguc "github.com/floorwise/searchiq/internal/usecase/catalog"
	healthuc "github.com/floorwise/searchiq/internal/usecase/health"
	searchuc "github.com/floorwise/searchiq/internal/usecase/search"
)

const maxBatchSize = 1000

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search and catalog services over HTTP.
type Server struct {
	catalog       *cataloguc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog: catalog,
		search:  search,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrSpamQuery, http.StatusUnprocessableEntity, codeSpamRejected),
		sentinelHandler(domain.ErrSourceUnavailable, http.StatusBadGateway, codeSourceUnavailable),
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chirouter.Router) {
	r.Route("/api/v1", func(r chirouter.Router) {
		r.Post("/normalize", s.handleNormalize)
		r.Post("/normalize/batch", s.handleNormalizeBatch)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/search", s.handleSearch)
		r.Post("/variations", s.handleVariations)
		r.Post("/related", s.handleRelated)
		r.Route("/collections", func(r chirouter.Router) {
			r.Get("/", s.handleListCollections)
			r.Post("/resolve", s.handleResolveCollection)
			r.Post("/sync", s.handleSyncCollections)
			r.Put("/{handle}", s.handleCreateCollection)
			r.Get("/{handle}", s.handleGetCollection)
			r.Delete("/{handle}", s.handleDeleteCollection)
		})
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// handleNormalize handles POST /api/v1/normalize.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.catalog.Normalize(req.Query, req.Locale))
}

// handleNormalizeBatch handles POST /api/v1/normalize/batch.
func (s *Server) handleNormalizeBatch(w http.ResponseWriter, r *http.Request) {
	var req batchNormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Queries) > maxBatchSize {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Batch size exceeds limit")
		return
	}

	writeJSON(w, http.StatusOK, s.catalog.NormalizeBatch(req.Queries, req.Locale))
}

// handleAnalyze handles POST /api/v1/analyze.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.search.Analyze(req.Query))
}

// handleSearch handles POST /api/v1/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	facets := make([]searchuc.Facet, len(req.Facets))
	for i, f := range req.Facets {
		facets[i] = searchuc.Facet{Namespace: f.Namespace, Value: f.Value}
	}

	result, err := s.search.Search(r.Context(), searchuc.Request{
		Query:  req.Query,
		Locale: req.Locale,
		Limit:  req.Limit,
		Facets: facets,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleVariations handles POST /api/v1/variations.
func (s *Server) handleVariations(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, variationsResponse{
		Query:      req.Query,
		Variations: s.search.Variations(req.Query),
	})
}

// handleRelated handles POST /api/v1/related.
func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	var req relatedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, relatedResponse{Queries: s.search.Related(req.Product)})
}

// handleResolveCollection handles POST /api/v1/collections/resolve.
func (s *Server) handleResolveCollection(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	normalized, match, err := s.catalog.Resolve(r.Context(), req.Query, req.Locale)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	resp := resolveResponse{Normalized: normalized}
	if match != nil {
		resp.Match = &matchPayload{
			Collection: collectionToPayload(match.Collection),
			MatchType:  match.MatchType,
			Confidence: match.Confidence,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleSyncCollections handles POST /api/v1/collections/sync.
func (s *Server) handleSyncCollections(w http.ResponseWriter, r *http.Request) {
	synced, err := s.catalog.Sync(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, syncResponse{Synced: synced})
}

// handleCreateCollection handles PUT /api/v1/collections/{handle}.
// Registration is create-only: a handle that already exists conflicts.
func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	handle := chirouter.URLParam(r, "handle")

	var req createCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Collection title is required")
		return
	}

	col, err := s.catalog.Register(r.Context(), handle, req.Title)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, collectionToPayload(col))
}

// handleListCollections handles GET /api/v1/collections.
func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.catalog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]collectionPayload, len(cols))
	for i, c := range cols {
		items[i] = collectionToPayload(c)
	}

	writeJSON(w, http.StatusOK, collectionListResponse{Collections: items})
}

// handleGetCollection handles GET /api/v1/collections/{handle}.
func (s *Server) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	col, err := s.catalog.Get(r.Context(), chirouter.URLParam(r, "handle"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, collectionToPayload(col))
}

// handleDeleteCollection handles DELETE /api/v1/collections/{handle}.
func (s *Server) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), chirouter.URLParam(r, "handle")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
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
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidQuery,
		domain.ErrSpamQuery,
		domain.ErrSourceUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

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
