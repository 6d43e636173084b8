package chi

import (
	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
)

// Error response codes returned to API clients.
const (
	codeBadRequest        = "bad_request"
	codeValidationFailed  = "validation_failed"
	codeNotFound          = "not_found"
	codeAlreadyExists     = "already_exists"
	codeSpamRejected      = "spam_rejected"
	codeSourceUnavailable = "source_unavailable"
	codeInternalError     = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type normalizeRequest struct {
	Query  string `json:"query"`
	Locale string `json:"locale"`
}

type batchNormalizeRequest struct {
	Queries []string `json:"queries"`
	Locale  string   `json:"locale"`
}

type analyzeRequest struct {
	Query string `json:"query"`
}

type facetParam struct {
	Namespace string `json:"namespace"`
	Value     string `json:"value"`
}

type searchRequest struct {
	Query  string       `json:"query"`
	Locale string       `json:"locale"`
	Limit  int          `json:"limit"`
	Facets []facetParam `json:"facets"`
}

type relatedRequest struct {
	Product searchiq.Product `json:"product"`
}

type relatedResponse struct {
	Queries []string `json:"queries"`
}

type variationsResponse struct {
	Query      string   `json:"query"`
	Variations []string `json:"variations"`
}

type resolveResponse struct {
	Normalized searchiq.NormalizedQuery `json:"normalized"`
	Match      *matchPayload            `json:"match,omitempty"`
}

type matchPayload struct {
	Collection collectionPayload  `json:"collection"`
	MatchType  searchiq.MatchType `json:"match_type"`
	Confidence float64            `json:"confidence"`
}

type createCollectionRequest struct {
	Title string `json:"title"`
}

type syncResponse struct {
	Synced int `json:"synced"`
}

type collectionPayload struct {
	Handle    string `json:"handle"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"created_at"`
	Revision  int    `json:"revision"`
}

type collectionListResponse struct {
	Collections []collectionPayload `json:"collections"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func collectionToPayload(c domain.Collection) collectionPayload {
	return collectionPayload{
		Handle:    c.Handle(),
		Title:     c.Title(),
		CreatedAt: c.CreatedAt(),
		Revision:  c.Revision(),
	}
}
