package sdk

import "github.com/floorwise/searchiq"

// SearchRequest is an intelligent search request.
type SearchRequest struct {
	Query  string  `json:"query"`
	Locale string  `json:"locale,omitempty"`
	Limit  int     `json:"limit,omitempty"`
	Facets []Facet `json:"facets,omitempty"`
}

// Facet restricts search results to products carrying a namespaced tag.
type Facet struct {
	Namespace string `json:"namespace"`
	Value     string `json:"value"`
}

// SearchResult is a ranked search response.
type SearchResult struct {
	Query       searchiq.QueryAnalysis   `json:"query"`
	Products    []searchiq.ScoredProduct `json:"products"`
	Suggestions []searchiq.Suggestion    `json:"suggestions"`
	Variations  []string                 `json:"variations"`
}

// Collection is a stored storefront collection.
type Collection struct {
	Handle    string `json:"handle"`
	Title     string `json:"title"`
	CreatedAt int64  `json:"created_at"`
	Revision  int    `json:"revision"`
}

// CollectionMatch is a collection resolved for a query.
type CollectionMatch struct {
	Collection Collection         `json:"collection"`
	MatchType  searchiq.MatchType `json:"match_type"`
	Confidence float64            `json:"confidence"`
}

// ResolveResult pairs a normalization result with the matched collection,
// if any.
type ResolveResult struct {
	Normalized searchiq.NormalizedQuery `json:"normalized"`
	Match      *CollectionMatch         `json:"match,omitempty"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded", "error"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}

type variationsResponse struct {
	Query      string   `json:"query"`
	Variations []string `json:"variations"`
}

type relatedResponse struct {
	Queries []string `json:"queries"`
}

type syncResponse struct {
	Synced int `json:"synced"`
}

type collectionListResponse struct {
	Collections []Collection `json:"collections"`
}
